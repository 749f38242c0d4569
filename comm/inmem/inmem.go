package inmem

import (
	"context"

	"github.com/google/uuid"
	"github.com/immutablex/imx-link/comm"
)

// Channel is an in-process duplex channel to an embedded wallet handler.
// Responses are routed through a correlator keyed by generated request ids,
// the same way the remote transports do.
type Channel struct {
	handler    comm.Handler
	correlator *comm.Correlator
}

func NewChannel(handler comm.Handler) *Channel {
	return &Channel{
		handler:    handler,
		correlator: comm.NewCorrelator(),
	}
}

func (c *Channel) Request(ctx context.Context, req *comm.Request) (*comm.Response, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	respChn := c.correlator.Register(req.RequestID, req.Type.Response())
	go func() {
		resp := c.handler.Handle(ctx, req)
		if resp == nil {
			return
		}

		c.correlator.Deliver(resp)
	}()

	select {
	case resp := <-respChn:
		return resp, nil
	case <-ctx.Done():
		c.correlator.Deregister(req.RequestID)
		return nil, ctx.Err()
	}
}

func (c *Channel) Close() error {
	return nil
}
