package api

import (
	"context"
	"fmt"
)

type GetSignableTransferV1Request struct {
	Sender   string        `json:"sender"`
	Token    SignableToken `json:"token"`
	Amount   string        `json:"amount"`
	Receiver string        `json:"receiver"`
}

type GetSignableTransferV1Response struct {
	SignableMessage     string `json:"signable_message"`
	PayloadHash         string `json:"payload_hash"`
	SenderStarkKey      string `json:"sender_stark_key"`
	SenderVaultID       int64  `json:"sender_vault_id"`
	ReceiverStarkKey    string `json:"receiver_stark_key"`
	ReceiverVaultID     int64  `json:"receiver_vault_id"`
	AssetID             string `json:"asset_id"`
	Amount              string `json:"amount"`
	Nonce               int64  `json:"nonce"`
	ExpirationTimestamp int64  `json:"expiration_timestamp"`
}

func (c *Client) GetSignableTransferV1(ctx context.Context, req *GetSignableTransferV1Request) (*GetSignableTransferV1Response, error) {
	resp := new(GetSignableTransferV1Response)
	err := c.post(ctx, "/v1/signable-transfer-details", req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type CreateTransferV1Request struct {
	SenderStarkKey      string `json:"sender_stark_key"`
	SenderVaultID       int64  `json:"sender_vault_id"`
	ReceiverStarkKey    string `json:"receiver_stark_key"`
	ReceiverVaultID     int64  `json:"receiver_vault_id"`
	AssetID             string `json:"asset_id"`
	Amount              string `json:"amount"`
	Nonce               int64  `json:"nonce"`
	ExpirationTimestamp int64  `json:"expiration_timestamp"`
	StarkSignature      string `json:"stark_signature"`
}

type CreateTransferV1Response struct {
	TransferID int64  `json:"transfer_id"`
	Status     string `json:"status"`
	Time       int64  `json:"time"`
}

func (c *Client) CreateTransferV1(ctx context.Context, ethAddress string, ethSignature string, req *CreateTransferV1Request) (*CreateTransferV1Response, error) {
	resp := new(CreateTransferV1Response)
	err := c.postSigned(ctx, "/v1/transfers", ethAddress, ethSignature, req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type SignableTransferDetails struct {
	Amount   string        `json:"amount"`
	Token    SignableToken `json:"token"`
	Receiver string        `json:"receiver"`
}

type GetSignableTransferRequest struct {
	SenderEtherKey   string                    `json:"sender_ether_key"`
	SignableRequests []SignableTransferDetails `json:"signable_requests"`
}

type SignableTransferResponseDetails struct {
	PayloadHash         string `json:"payload_hash"`
	SenderVaultID       int64  `json:"sender_vault_id"`
	ReceiverStarkKey    string `json:"receiver_stark_key"`
	ReceiverVaultID     int64  `json:"receiver_vault_id"`
	AssetID             string `json:"asset_id"`
	Amount              string `json:"amount"`
	Nonce               int64  `json:"nonce"`
	ExpirationTimestamp int64  `json:"expiration_timestamp"`
}

type GetSignableTransferResponse struct {
	SenderStarkKey    string                            `json:"sender_stark_key"`
	SignableMessage   string                            `json:"signable_message"`
	SignableResponses []SignableTransferResponseDetails `json:"signable_responses"`
}

// GetSignableTransfer prepares a batch of transfers: one signable message
// covers the whole batch while each item carries its own payload hash.
func (c *Client) GetSignableTransfer(ctx context.Context, req *GetSignableTransferRequest) (*GetSignableTransferResponse, error) {
	resp := new(GetSignableTransferResponse)
	err := c.post(ctx, "/v2/signable-transfer-details", req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type TransferRequest struct {
	SenderVaultID       int64  `json:"sender_vault_id"`
	ReceiverStarkKey    string `json:"receiver_stark_key"`
	ReceiverVaultID     int64  `json:"receiver_vault_id"`
	AssetID             string `json:"asset_id"`
	Amount              string `json:"amount"`
	Nonce               int64  `json:"nonce"`
	ExpirationTimestamp int64  `json:"expiration_timestamp"`
	StarkSignature      string `json:"stark_signature"`
}

type CreateTransferRequest struct {
	SenderStarkKey string            `json:"sender_stark_key"`
	Requests       []TransferRequest `json:"requests"`
}

type CreateTransferResponse struct {
	TransferIDs []int64 `json:"transfer_ids"`
}

func (c *Client) CreateTransfer(ctx context.Context, ethAddress string, ethSignature string, req *CreateTransferRequest) (*CreateTransferResponse, error) {
	resp := new(CreateTransferResponse)
	err := c.postSigned(ctx, "/v2/transfers", ethAddress, ethSignature, req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// GetExchangeSignableTransfer prepares a transfer executed on behalf of an
// on-ramp exchange transaction.
func (c *Client) GetExchangeSignableTransfer(ctx context.Context, exchangeID string, req *GetSignableTransferV1Request) (*GetSignableTransferV1Response, error) {
	resp := new(GetSignableTransferV1Response)
	err := c.post(ctx, fmt.Sprintf("/v2/exchanges/%s/signable-transfer-details", exchangeID), req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) CreateExchangeTransfer(ctx context.Context, exchangeID string, ethAddress string, ethSignature string, req *CreateTransferV1Request) (*CreateTransferV1Response, error) {
	resp := new(CreateTransferV1Response)
	err := c.postSigned(ctx, fmt.Sprintf("/v2/exchanges/%s/transfers", exchangeID), ethAddress, ethSignature, req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
