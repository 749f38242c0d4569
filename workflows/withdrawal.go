package workflows

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/immutablex/imx-link/api"
	"github.com/immutablex/imx-link/signers"
	"github.com/immutablex/imx-link/tokens"
)

// PrepareWithdrawal moves the requested amount into the withdrawal area of
// the L2 state tree. No L1 transaction is involved; the escrowed funds are
// claimed later with CompleteWithdrawal.
func (w *Workflows) PrepareWithdrawal(ctx context.Context, pair signers.Pair, token tokens.Token, amount string) (*api.CreateWithdrawalResponse, error) {
	err := w.validateChain(ctx, pair.Eth)
	if err != nil {
		return nil, err
	}

	if _, ok := token.(tokens.ERC721); ok {
		amount = erc721Quantity
	}

	signableToken, err := w.signableToken(ctx, token)
	if err != nil {
		return nil, err
	}

	signable, err := w.client.GetSignableWithdrawal(ctx, &api.GetSignableWithdrawalRequest{
		User:   pair.Eth.GetAddress().Hex(),
		Token:  signableToken,
		Amount: amount,
	})
	if err != nil {
		return nil, err
	}

	ethSignature, starkSignature, err := w.signPayload(ctx, pair, signable.SignableMessage, signable.PayloadHash)
	if err != nil {
		return nil, err
	}

	return w.client.CreateWithdrawal(ctx, pair.Eth.GetAddress().Hex(), ethSignature, &api.CreateWithdrawalRequest{
		StarkKey:       signable.StarkKey,
		Amount:         signable.Amount,
		AssetID:        signable.AssetID,
		VaultID:        signable.VaultID,
		Nonce:          signable.Nonce,
		StarkSignature: starkSignature,
	})
}

// CompleteWithdrawal claims a prepared withdrawal on L1. The balance may
// sit under either registration generation; the legacy v3 generation
// additionally branches on on-chain registration, fusing an implicit
// registration into the withdrawal when needed. Mintable ERC721 tokens are
// minted on L1 during the claim.
func (w *Workflows) CompleteWithdrawal(ctx context.Context, signer signers.EthSigner, starkPublicKey string, token tokens.Token) (*common.Hash, error) {
	err := w.validateChain(ctx, signer)
	if err != nil {
		return nil, err
	}

	asset, err := w.encodeWithdrawalAsset(ctx, token)
	if err != nil {
		return nil, err
	}

	balances, err := w.resolveBalanceSources(starkPublicKey, signer.GetAddress(), asset)
	if err != nil {
		return nil, err
	}

	generation, err := balances.Preferred()
	if err != nil {
		return nil, err
	}

	if generation == GenerationV4 {
		return w.withdrawCall(addressKey(signer.GetAddress()), token, asset)
	}

	starkKey, err := parseUint256(starkPublicKey)
	if err != nil {
		return nil, err
	}

	registered, err := w.registration.IsRegistered(starkKey)
	if err != nil {
		return nil, err
	}
	if registered {
		return w.withdrawCall(starkKey, token, asset)
	}

	return w.registerAndWithdrawCall(ctx, signer, starkPublicKey, token, asset)
}

// withdrawCall picks the plain withdrawal entry point for the token shape.
func (w *Workflows) withdrawCall(ownerKey *big.Int, token tokens.Token, asset *withdrawalAsset) (*common.Hash, error) {
	erc721, ok := token.(tokens.ERC721)
	if !ok {
		return w.core.Withdraw(ownerKey, asset.assetType)
	}

	if asset.mintable != nil {
		return w.core.WithdrawAndMint(ownerKey, asset.assetType, mintingBlob(asset.mintable))
	}

	tokenID, err := parseUint256(erc721.TokenID)
	if err != nil {
		return nil, err
	}

	return w.core.WithdrawNft(ownerKey, asset.assetType, tokenID)
}

// registerAndWithdrawCall fuses an on-chain registration into the
// withdrawal using the operator countersignature from the API.
func (w *Workflows) registerAndWithdrawCall(ctx context.Context, signer signers.EthSigner, starkPublicKey string, token tokens.Token, asset *withdrawalAsset) (*common.Hash, error) {
	ethAddress := signer.GetAddress()
	signable, err := w.client.GetSignableRegistration(ctx, &api.GetSignableRegistrationRequest{
		EtherKey: ethAddress.Hex(),
		StarkKey: starkPublicKey,
	})
	if err != nil {
		return nil, err
	}

	operatorSignature, err := hexutil.Decode(signable.OperatorSignature)
	if err != nil {
		return nil, fmt.Errorf("invalid operator signature: %w", err)
	}

	starkKey, err := parseUint256(starkPublicKey)
	if err != nil {
		return nil, err
	}

	erc721, ok := token.(tokens.ERC721)
	if !ok {
		return w.registration.RegisterAndWithdraw(ethAddress, starkKey, operatorSignature, asset.assetType)
	}

	if asset.mintable != nil {
		return w.registration.RegisterWithdrawAndMint(ethAddress, starkKey, operatorSignature, asset.assetType, mintingBlob(asset.mintable))
	}

	tokenID, err := parseUint256(erc721.TokenID)
	if err != nil {
		return nil, err
	}

	return w.registration.RegisterAndWithdrawNft(ethAddress, starkKey, operatorSignature, asset.assetType, tokenID)
}

// mintingBlob packs the token id and blueprint into the byte format the
// contract unpacks when lazily minting during withdrawal.
func mintingBlob(mintable *api.MintableTokenDetails) []byte {
	return []byte(fmt.Sprintf("{%s}:{%s}", mintable.TokenID, mintable.Blueprint))
}
