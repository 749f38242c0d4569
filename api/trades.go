package api

import (
	"context"
)

type GetSignableTradeRequest struct {
	User    string     `json:"user"`
	OrderID int64      `json:"order_id"`
	Fees    []FeeEntry `json:"fees,omitempty"`
}

type GetSignableTradeResponse struct {
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

func (c *Client) GetSignableTrade(ctx context.Context, req *GetSignableTradeRequest) (*GetSignableTradeResponse, error) {
	resp := new(GetSignableTradeResponse)
	err := c.post(ctx, "/v3/signable-trade-details", req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type CreateTradeRequest struct {
	OrderID             int64      `json:"order_id"`
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

type CreateTradeResponse struct {
	TradeID int64  `json:"trade_id"`
	Status  string `json:"status"`
}

func (c *Client) CreateTrade(ctx context.Context, ethAddress string, ethSignature string, req *CreateTradeRequest) (*CreateTradeResponse, error) {
	resp := new(CreateTradeResponse)
	err := c.postSigned(ctx, "/v3/trades", ethAddress, ethSignature, req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
