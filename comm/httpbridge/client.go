package httpbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/immutablex/imx-link/comm"
)

const RequestPath = "/v1/requests"

// Client talks to a signing wallet daemon over HTTP. The envelope protocol
// is the same as the in-process channel; the response is checked against the
// request id and the paired response type before it is accepted. No
// transport timeout is set, cancellation comes from ctx.
type Client struct {
	url        string
	HTTPClient *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:        url,
		HTTPClient: &http.Client{},
	}
}

func (c *Client) Request(ctx context.Context, req *comm.Request) (*comm.Response, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+RequestPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", httpResp.StatusCode)
	}

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	resp := new(comm.Response)
	if err := json.Unmarshal(respBody, resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	if resp.RequestID != req.RequestID {
		return nil, fmt.Errorf("response request id %s does not match request %s", resp.RequestID, req.RequestID)
	}
	if resp.Type != req.Type.Response() {
		return nil, fmt.Errorf("unexpected response type %s for request %s", resp.Type, req.Type)
	}

	return resp, nil
}

func (c *Client) Close() error {
	c.HTTPClient.CloseIdleConnections()
	return nil
}
