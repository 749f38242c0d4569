package comm

import (
	"sync"

	"github.com/rs/zerolog/log"
)

type pendingRequest struct {
	respType ResponseType
	respChn  chan *Response
}

// Correlator matches wallet responses to in-flight requests by request id.
//
// Each request registers exactly one pending entry; the entry is consumed by
// the first matching response and removed. Responses without a matching id,
// or with an unexpected type for that id, are discarded and leave every
// pending request untouched.
type Correlator struct {
	pending       map[string]pendingRequest
	pendingLocker *sync.Mutex
}

func NewCorrelator() *Correlator {
	return &Correlator{
		pending:       make(map[string]pendingRequest),
		pendingLocker: &sync.Mutex{},
	}
}

// Register adds a pending entry for a request id and returns the channel the
// matching response will be delivered on.
func (c *Correlator) Register(requestID string, respType ResponseType) chan *Response {
	c.pendingLocker.Lock()
	defer c.pendingLocker.Unlock()

	respChn := make(chan *Response, 1)
	c.pending[requestID] = pendingRequest{
		respType: respType,
		respChn:  respChn,
	}
	return respChn
}

// Deregister removes a pending entry without delivering a response. Called
// when the waiting side gives up, so an abandoned entry does not leak.
func (c *Correlator) Deregister(requestID string) {
	c.pendingLocker.Lock()
	defer c.pendingLocker.Unlock()

	delete(c.pending, requestID)
}

// Deliver routes a response to its pending request. Returns false if the
// response matched nothing and was discarded.
func (c *Correlator) Deliver(resp *Response) bool {
	c.pendingLocker.Lock()
	defer c.pendingLocker.Unlock()

	p, ok := c.pending[resp.RequestID]
	if !ok {
		log.Debug().Msgf("Discarding response %s with unknown request id %s", resp.Type, resp.RequestID)
		return false
	}
	if p.respType != resp.Type {
		log.Debug().Msgf("Discarding response %s for request id %s, expected %s", resp.Type, resp.RequestID, p.respType)
		return false
	}

	delete(c.pending, resp.RequestID)
	p.respChn <- resp
	return true
}
