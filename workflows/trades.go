package workflows

import (
	"context"

	"github.com/immutablex/imx-link/api"
	"github.com/immutablex/imx-link/signers"
	"github.com/immutablex/imx-link/tokens"
)

type OrderParams struct {
	TokenSell           tokens.Token
	AmountSell          string
	TokenBuy            tokens.Token
	AmountBuy           string
	Fees                []api.FeeEntry
	ExpirationTimestamp int64
}

// CreateOrder lists an order on the L2 order book. The numeric fields of
// the signable response feed the create call verbatim since the network
// recomputes the payload hash from them.
func (w *Workflows) CreateOrder(ctx context.Context, pair signers.Pair, params *OrderParams) (*api.CreateOrderResponse, error) {
	err := w.validateChain(ctx, pair.Eth)
	if err != nil {
		return nil, err
	}

	tokenSell, err := w.signableToken(ctx, params.TokenSell)
	if err != nil {
		return nil, err
	}

	tokenBuy, err := w.signableToken(ctx, params.TokenBuy)
	if err != nil {
		return nil, err
	}

	signable, err := w.client.GetSignableOrder(ctx, &api.GetSignableOrderRequest{
		User:                pair.Eth.GetAddress().Hex(),
		AmountBuy:           params.AmountBuy,
		AmountSell:          params.AmountSell,
		TokenBuy:            tokenBuy,
		TokenSell:           tokenSell,
		Fees:                params.Fees,
		ExpirationTimestamp: params.ExpirationTimestamp,
	})
	if err != nil {
		return nil, err
	}

	ethSignature, starkSignature, err := w.signPayload(ctx, pair, signable.SignableMessage, signable.PayloadHash)
	if err != nil {
		return nil, err
	}

	return w.client.CreateOrder(ctx, pair.Eth.GetAddress().Hex(), ethSignature, &api.CreateOrderRequest{
		StarkKey:            signable.StarkKey,
		AmountBuy:           signable.AmountBuy,
		AmountSell:          signable.AmountSell,
		AssetIDBuy:          signable.AssetIDBuy,
		AssetIDSell:         signable.AssetIDSell,
		VaultIDBuy:          signable.VaultIDBuy,
		VaultIDSell:         signable.VaultIDSell,
		Nonce:               signable.Nonce,
		ExpirationTimestamp: signable.ExpirationTimestamp,
		StarkSignature:      starkSignature,
		Fees:                params.Fees,
	})
}

// CancelOrder removes an order from the book.
func (w *Workflows) CancelOrder(ctx context.Context, pair signers.Pair, orderID int64) (*api.CancelOrderResponse, error) {
	err := w.validateChain(ctx, pair.Eth)
	if err != nil {
		return nil, err
	}

	signable, err := w.client.GetSignableCancelOrder(ctx, &api.GetSignableCancelOrderRequest{
		OrderID: orderID,
	})
	if err != nil {
		return nil, err
	}

	ethSignature, starkSignature, err := w.signPayload(ctx, pair, signable.SignableMessage, signable.PayloadHash)
	if err != nil {
		return nil, err
	}

	return w.client.CancelOrder(ctx, pair.Eth.GetAddress().Hex(), ethSignature, &api.CancelOrderRequest{
		OrderID:        signable.OrderID,
		StarkSignature: starkSignature,
	})
}

// CreateTrade fills an existing order.
func (w *Workflows) CreateTrade(ctx context.Context, pair signers.Pair, orderID int64, fees []api.FeeEntry) (*api.CreateTradeResponse, error) {
	err := w.validateChain(ctx, pair.Eth)
	if err != nil {
		return nil, err
	}

	signable, err := w.client.GetSignableTrade(ctx, &api.GetSignableTradeRequest{
		User:    pair.Eth.GetAddress().Hex(),
		OrderID: orderID,
		Fees:    fees,
	})
	if err != nil {
		return nil, err
	}

	ethSignature, starkSignature, err := w.signPayload(ctx, pair, signable.SignableMessage, signable.PayloadHash)
	if err != nil {
		return nil, err
	}

	return w.client.CreateTrade(ctx, pair.Eth.GetAddress().Hex(), ethSignature, &api.CreateTradeRequest{
		OrderID:             orderID,
		StarkKey:            signable.StarkKey,
		AmountBuy:           signable.AmountBuy,
		AmountSell:          signable.AmountSell,
		AssetIDBuy:          signable.AssetIDBuy,
		AssetIDSell:         signable.AssetIDSell,
		VaultIDBuy:          signable.VaultIDBuy,
		VaultIDSell:         signable.VaultIDSell,
		Nonce:               signable.Nonce,
		ExpirationTimestamp: signable.ExpirationTimestamp,
		StarkSignature:      starkSignature,
		Fees:                fees,
	})
}
