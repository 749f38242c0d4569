package api

import (
	"context"
)

type GetSignableDepositRequest struct {
	User   string        `json:"user"`
	Token  SignableToken `json:"token"`
	Amount string        `json:"amount"`
}

type GetSignableDepositResponse struct {
	StarkKey string `json:"stark_key"`
	VaultID  int64  `json:"vault_id"`
	Amount   string `json:"amount"`
}

// GetSignableDeposit resolves the vault the deposit lands in. The on-chain
// call is built only from this response.
func (c *Client) GetSignableDeposit(ctx context.Context, req *GetSignableDepositRequest) (*GetSignableDepositResponse, error) {
	resp := new(GetSignableDepositResponse)
	err := c.post(ctx, "/v1/signable-deposit-details", req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
