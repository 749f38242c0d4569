package api

import (
	"context"
)

type GetSignableWithdrawalRequest struct {
	User   string        `json:"user"`
	Token  SignableToken `json:"token"`
	Amount string        `json:"amount"`
}

type GetSignableWithdrawalResponse struct {
	SignableMessage string `json:"signable_message"`
	PayloadHash     string `json:"payload_hash"`
	StarkKey        string `json:"stark_key"`
	VaultID         int64  `json:"vault_id"`
	AssetID         string `json:"asset_id"`
	Amount          string `json:"amount"`
	Nonce           int64  `json:"nonce"`
}

func (c *Client) GetSignableWithdrawal(ctx context.Context, req *GetSignableWithdrawalRequest) (*GetSignableWithdrawalResponse, error) {
	resp := new(GetSignableWithdrawalResponse)
	err := c.post(ctx, "/v2/signable-withdrawal-details", req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// CreateWithdrawalRequest echoes the numeric fields of the signable
// response verbatim; the network recomputes the payload hash from them and
// rejects any mismatch.
type CreateWithdrawalRequest struct {
	StarkKey       string `json:"stark_key"`
	Amount         string `json:"amount"`
	AssetID        string `json:"asset_id"`
	VaultID        int64  `json:"vault_id"`
	Nonce          int64  `json:"nonce"`
	StarkSignature string `json:"stark_signature"`
}

type CreateWithdrawalResponse struct {
	WithdrawalID int64  `json:"withdrawal_id"`
	Status       string `json:"status"`
	Time         int64  `json:"time"`
}

func (c *Client) CreateWithdrawal(ctx context.Context, ethAddress string, ethSignature string, req *CreateWithdrawalRequest) (*CreateWithdrawalResponse, error) {
	resp := new(CreateWithdrawalResponse)
	err := c.postSigned(ctx, "/v2/withdrawals", ethAddress, ethSignature, req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
