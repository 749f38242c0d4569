package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/immutablex/imx-link/config"
	"github.com/jellydator/ttlcache/v3"
)

const (
	ethAddressHeader   = "x-imx-eth-address"
	ethSignatureHeader = "x-imx-eth-signature"
)

// APIError is returned for any non-2xx response. A 404 is a normal signal
// on lookup endpoints and is detected with IsNotFound; everything else
// propagates unchanged.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, %s", e.StatusCode, e.Body)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client consumes the network's public API. All signable responses are
// echoed verbatim into completion requests; the client never recomputes
// fields the network signs over.
type Client struct {
	baseURL    string
	HTTPClient *http.Client

	tokenCache *ttlcache.Cache[string, *TokenDetails]
}

func NewClient(cfg config.APIConfiguration) *Client {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, *TokenDetails](TOKEN_DETAILS_TTL),
	)
	go cache.Start()

	return &Client{
		baseURL: cfg.BaseURL,
		HTTPClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		tokenCache: cache,
	}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.send(ctx, http.MethodPost, path, body, out, nil)
}

// postSigned submits a completion request authenticated with the caller's
// L1 address and signature headers.
func (c *Client) postSigned(ctx context.Context, path string, ethAddress string, ethSignature string, body interface{}, out interface{}) error {
	headers := map[string]string{
		ethAddressHeader:   ethAddress,
		ethSignatureHeader: ethSignature,
	}
	return c.send(ctx, http.MethodPost, path, body, out, headers)
}

func (c *Client) deleteSigned(ctx context.Context, path string, ethAddress string, ethSignature string, body interface{}, out interface{}) error {
	headers := map[string]string{
		ethAddressHeader:   ethAddress,
		ethSignatureHeader: ethSignature,
	}
	return c.send(ctx, http.MethodDelete, path, body, out, headers)
}

func (c *Client) send(ctx context.Context, method string, path string, body interface{}, out interface{}, headers map[string]string) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}
