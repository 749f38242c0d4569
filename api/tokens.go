package api

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	TOKEN_DETAILS_TTL = time.Minute * 10
)

type TokenDetails struct {
	TokenAddress string `json:"token_address"`
	Symbol       string `json:"symbol"`
	Decimals     string `json:"decimals"`
	Quantum      string `json:"quantum"`
}

func (d *TokenDetails) DecimalsInt() (int32, error) {
	decimals, err := strconv.ParseInt(d.Decimals, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid decimals %q for token %s", d.Decimals, d.TokenAddress)
	}

	return int32(decimals), nil
}

// GetToken fetches token metadata. Metadata is immutable on the network, so
// responses sit in a TTL cache; signable fields are never cached.
func (c *Client) GetToken(ctx context.Context, tokenAddress string) (*TokenDetails, error) {
	if cached := c.tokenCache.Get(tokenAddress); cached != nil {
		return cached.Value(), nil
	}

	resp := new(TokenDetails)
	err := c.get(ctx, fmt.Sprintf("/v1/tokens/%s", tokenAddress), resp)
	if err != nil {
		return nil, err
	}

	c.tokenCache.Set(tokenAddress, resp, ttlcache.DefaultTTL)
	return resp, nil
}
