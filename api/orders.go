package api

import (
	"context"
	"fmt"
)

type GetSignableOrderRequest struct {
	User                string        `json:"user"`
	AmountBuy           string        `json:"amount_buy"`
	AmountSell          string        `json:"amount_sell"`
	TokenBuy            SignableToken `json:"token_buy"`
	TokenSell           SignableToken `json:"token_sell"`
	Fees                []FeeEntry    `json:"fees,omitempty"`
	ExpirationTimestamp int64         `json:"expiration_timestamp,omitempty"`
}

type GetSignableOrderResponse struct {
	SignableMessage     string `json:"signable_message"`
	PayloadHash         string `json:"payload_hash"`
	StarkKey            string `json:"stark_key"`
	AmountBuy           string `json:"amount_buy"`
	AmountSell          string `json:"amount_sell"`
	AssetIDBuy          string `json:"asset_id_buy"`
	AssetIDSell         string `json:"asset_id_sell"`
	VaultIDBuy          int64  `json:"vault_id_buy"`
	VaultIDSell         int64  `json:"vault_id_sell"`
	Nonce               int64  `json:"nonce"`
	ExpirationTimestamp int64  `json:"expiration_timestamp"`
}

func (c *Client) GetSignableOrder(ctx context.Context, req *GetSignableOrderRequest) (*GetSignableOrderResponse, error) {
	resp := new(GetSignableOrderResponse)
	err := c.post(ctx, "/v3/signable-order-details", req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type CreateOrderRequest struct {
	StarkKey            string     `json:"stark_key"`
	AmountBuy           string     `json:"amount_buy"`
	AmountSell          string     `json:"amount_sell"`
	AssetIDBuy          string     `json:"asset_id_buy"`
	AssetIDSell         string     `json:"asset_id_sell"`
	VaultIDBuy          int64      `json:"vault_id_buy"`
	VaultIDSell         int64      `json:"vault_id_sell"`
	Nonce               int64      `json:"nonce"`
	ExpirationTimestamp int64      `json:"expiration_timestamp"`
	StarkSignature      string     `json:"stark_signature"`
	Fees                []FeeEntry `json:"fees,omitempty"`
}

type CreateOrderResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
	Time    int64  `json:"time"`
}

func (c *Client) CreateOrder(ctx context.Context, ethAddress string, ethSignature string, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	resp := new(CreateOrderResponse)
	err := c.postSigned(ctx, "/v3/orders", ethAddress, ethSignature, req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type GetSignableCancelOrderRequest struct {
	OrderID int64 `json:"order_id"`
}

type GetSignableCancelOrderResponse struct {
	OrderID         int64  `json:"order_id"`
	PayloadHash     string `json:"payload_hash"`
	SignableMessage string `json:"signable_message"`
}

func (c *Client) GetSignableCancelOrder(ctx context.Context, req *GetSignableCancelOrderRequest) (*GetSignableCancelOrderResponse, error) {
	resp := new(GetSignableCancelOrderResponse)
	err := c.post(ctx, "/v3/signable-cancel-order-details", req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type CancelOrderRequest struct {
	OrderID        int64  `json:"order_id"`
	StarkSignature string `json:"stark_signature"`
}

type CancelOrderResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

func (c *Client) CancelOrder(ctx context.Context, ethAddress string, ethSignature string, req *CancelOrderRequest) (*CancelOrderResponse, error) {
	resp := new(CancelOrderResponse)
	err := c.deleteSigned(ctx, fmt.Sprintf("/v3/orders/%d", req.OrderID), ethAddress, ethSignature, req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
