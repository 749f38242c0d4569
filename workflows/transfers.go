package workflows

import (
	"context"

	"github.com/immutablex/imx-link/api"
	"github.com/immutablex/imx-link/signers"
	"github.com/immutablex/imx-link/tokens"
)

type TransferParams struct {
	Token    tokens.Token
	Amount   string
	Receiver string
}

// Transfer moves a token between two L2 accounts.
func (w *Workflows) Transfer(ctx context.Context, pair signers.Pair, params *TransferParams) (*api.CreateTransferV1Response, error) {
	err := w.validateChain(ctx, pair.Eth)
	if err != nil {
		return nil, err
	}

	req, err := w.signableTransferV1Request(ctx, pair, params)
	if err != nil {
		return nil, err
	}

	signable, err := w.client.GetSignableTransferV1(ctx, req)
	if err != nil {
		return nil, err
	}

	ethSignature, starkSignature, err := w.signPayload(ctx, pair, signable.SignableMessage, signable.PayloadHash)
	if err != nil {
		return nil, err
	}

	return w.client.CreateTransferV1(ctx, pair.Eth.GetAddress().Hex(), ethSignature, transferV1Request(signable, starkSignature))
}

// BatchTransfer submits N transfers in one request. A single L1 signature
// covers the batch's combined signable message while each item is signed
// individually on L2.
func (w *Workflows) BatchTransfer(ctx context.Context, pair signers.Pair, params []TransferParams) (*api.CreateTransferResponse, error) {
	err := w.validateChain(ctx, pair.Eth)
	if err != nil {
		return nil, err
	}

	signableRequests := make([]api.SignableTransferDetails, 0, len(params))
	for _, p := range params {
		token, err := w.signableToken(ctx, p.Token)
		if err != nil {
			return nil, err
		}

		amount := p.Amount
		if _, ok := p.Token.(tokens.ERC721); ok {
			amount = erc721Quantity
		}

		signableRequests = append(signableRequests, api.SignableTransferDetails{
			Amount:   amount,
			Token:    token,
			Receiver: p.Receiver,
		})
	}

	signable, err := w.client.GetSignableTransfer(ctx, &api.GetSignableTransferRequest{
		SenderEtherKey:   pair.Eth.GetAddress().Hex(),
		SignableRequests: signableRequests,
	})
	if err != nil {
		return nil, err
	}

	ethSig, err := pair.Eth.SignMessage(ctx, []byte(signable.SignableMessage))
	if err != nil {
		return nil, err
	}

	requests := make([]api.TransferRequest, 0, len(signable.SignableResponses))
	for _, details := range signable.SignableResponses {
		starkSignature, err := pair.Stark.SignMessage(ctx, details.PayloadHash)
		if err != nil {
			return nil, err
		}

		requests = append(requests, api.TransferRequest{
			SenderVaultID:       details.SenderVaultID,
			ReceiverStarkKey:    details.ReceiverStarkKey,
			ReceiverVaultID:     details.ReceiverVaultID,
			AssetID:             details.AssetID,
			Amount:              details.Amount,
			Nonce:               details.Nonce,
			ExpirationTimestamp: details.ExpirationTimestamp,
			StarkSignature:      starkSignature,
		})
	}

	return w.client.CreateTransfer(ctx, pair.Eth.GetAddress().Hex(), encodeEthSignature(ethSig), &api.CreateTransferRequest{
		SenderStarkKey: signable.SenderStarkKey,
		Requests:       requests,
	})
}

// ExchangeTransfer moves tokens purchased through an on-ramp exchange
// transaction to their destination account.
func (w *Workflows) ExchangeTransfer(ctx context.Context, pair signers.Pair, exchangeID string, params *TransferParams) (*api.CreateTransferV1Response, error) {
	err := w.validateChain(ctx, pair.Eth)
	if err != nil {
		return nil, err
	}

	req, err := w.signableTransferV1Request(ctx, pair, params)
	if err != nil {
		return nil, err
	}

	signable, err := w.client.GetExchangeSignableTransfer(ctx, exchangeID, req)
	if err != nil {
		return nil, err
	}

	ethSignature, starkSignature, err := w.signPayload(ctx, pair, signable.SignableMessage, signable.PayloadHash)
	if err != nil {
		return nil, err
	}

	return w.client.CreateExchangeTransfer(ctx, exchangeID, pair.Eth.GetAddress().Hex(), ethSignature, transferV1Request(signable, starkSignature))
}

func (w *Workflows) signableTransferV1Request(ctx context.Context, pair signers.Pair, params *TransferParams) (*api.GetSignableTransferV1Request, error) {
	token, err := w.signableToken(ctx, params.Token)
	if err != nil {
		return nil, err
	}

	amount := params.Amount
	if _, ok := params.Token.(tokens.ERC721); ok {
		amount = erc721Quantity
	}

	return &api.GetSignableTransferV1Request{
		Sender:   pair.Eth.GetAddress().Hex(),
		Token:    token,
		Amount:   amount,
		Receiver: params.Receiver,
	}, nil
}

func transferV1Request(signable *api.GetSignableTransferV1Response, starkSignature string) *api.CreateTransferV1Request {
	return &api.CreateTransferV1Request{
		SenderStarkKey:      signable.SenderStarkKey,
		SenderVaultID:       signable.SenderVaultID,
		ReceiverStarkKey:    signable.ReceiverStarkKey,
		ReceiverVaultID:     signable.ReceiverVaultID,
		AssetID:             signable.AssetID,
		Amount:              signable.Amount,
		Nonce:               signable.Nonce,
		ExpirationTimestamp: signable.ExpirationTimestamp,
		StarkSignature:      starkSignature,
	}
}
