package api

import (
	"context"
	"fmt"
)

type MintableTokenDetails struct {
	TokenID       string `json:"token_id"`
	ClientTokenID string `json:"client_token_id"`
	Blueprint     string `json:"blueprint"`
}

// GetMintableToken looks up a token registered with the off-chain minting
// system. A 404 means the token is a plain, already minted ERC721.
func (c *Client) GetMintableToken(ctx context.Context, tokenAddress string, tokenID string) (*MintableTokenDetails, error) {
	resp := new(MintableTokenDetails)
	err := c.get(ctx, fmt.Sprintf("/v1/mintable-token/%s/%s", tokenAddress, tokenID), resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
