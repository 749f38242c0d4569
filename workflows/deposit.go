package workflows

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/immutablex/imx-link/api"
	"github.com/immutablex/imx-link/signers"
	"github.com/immutablex/imx-link/tokens"
)

// erc721Quantity is fixed, NFT flows always move exactly one token.
const erc721Quantity = "1"

// Deposit escrows a token into the network. The returned hash references
// the pending L1 transaction; confirmation is the caller's concern.
func (w *Workflows) Deposit(ctx context.Context, signer signers.EthSigner, token tokens.Token, amount string) (*common.Hash, error) {
	err := w.validateChain(ctx, signer)
	if err != nil {
		return nil, err
	}

	switch t := token.(type) {
	case tokens.ETH:
		return w.depositEth(ctx, signer, amount)
	case tokens.ERC20:
		return w.depositERC20(ctx, signer, t, amount)
	case tokens.ERC721:
		return w.depositNft(ctx, signer, t)
	default:
		return nil, tokens.ErrUnknownToken(token)
	}
}

func (w *Workflows) depositEth(ctx context.Context, signer signers.EthSigner, amount string) (*common.Hash, error) {
	wei, err := tokens.ParseWei(amount)
	if err != nil {
		return nil, err
	}

	signableToken, err := tokens.Signable(tokens.ETH{}, 0)
	if err != nil {
		return nil, err
	}

	signable, err := w.client.GetSignableDeposit(ctx, &api.GetSignableDepositRequest{
		User:   signer.GetAddress().Hex(),
		Token:  signableToken,
		Amount: amount,
	})
	if err != nil {
		return nil, err
	}

	encoded, err := w.client.EncodeAsset(ctx, api.AssetTypeAsset, &api.EncodeAssetRequest{
		Token: api.EncodeAssetToken{Type: string(tokens.TypeETH)},
	})
	if err != nil {
		return nil, err
	}

	starkKey, assetType, err := depositCallArgs(signable, encoded)
	if err != nil {
		return nil, err
	}

	return w.core.DepositEth(starkKey, assetType, big.NewInt(signable.VaultID), wei)
}

func (w *Workflows) depositERC20(ctx context.Context, signer signers.EthSigner, token tokens.ERC20, amount string) (*common.Hash, error) {
	details, err := w.client.GetToken(ctx, token.Address.Hex())
	if err != nil {
		return nil, err
	}

	decimals, err := details.DecimalsInt()
	if err != nil {
		return nil, err
	}

	quantized, err := tokens.Quantize(amount, decimals)
	if err != nil {
		return nil, err
	}

	// the core contract pulls the tokens during the deposit call
	_, err = w.contracts.ERC20Contract(token.Address).Approve(w.cfg.Eth.CoreContractAddress, quantized)
	if err != nil {
		return nil, fmt.Errorf("failed to approve deposit amount: %w", err)
	}

	signableToken, err := tokens.Signable(token, decimals)
	if err != nil {
		return nil, err
	}

	signable, err := w.client.GetSignableDeposit(ctx, &api.GetSignableDepositRequest{
		User:   signer.GetAddress().Hex(),
		Token:  signableToken,
		Amount: quantized.String(),
	})
	if err != nil {
		return nil, err
	}

	encoded, err := w.client.EncodeAsset(ctx, api.AssetTypeAsset, &api.EncodeAssetRequest{
		Token: api.EncodeAssetToken{
			Type: string(tokens.TypeERC20),
			Data: &api.EncodeAssetTokenData{
				TokenAddress: token.Address.Hex(),
			},
		},
	})
	if err != nil {
		return nil, err
	}

	starkKey, assetType, err := depositCallArgs(signable, encoded)
	if err != nil {
		return nil, err
	}

	return w.core.DepositERC20(starkKey, assetType, big.NewInt(signable.VaultID), quantized)
}

func (w *Workflows) depositNft(ctx context.Context, signer signers.EthSigner, token tokens.ERC721) (*common.Hash, error) {
	erc721 := w.contracts.ERC721Contract(token.Address)
	approved, err := erc721.IsApprovedForAll(signer.GetAddress(), w.cfg.Eth.CoreContractAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to check transfer approval: %w", err)
	}
	if !approved {
		_, err = erc721.SetApprovalForAll(w.cfg.Eth.CoreContractAddress, true)
		if err != nil {
			return nil, fmt.Errorf("failed to approve transfer: %w", err)
		}
	}

	signableToken, err := tokens.Signable(token, 0)
	if err != nil {
		return nil, err
	}

	signable, err := w.client.GetSignableDeposit(ctx, &api.GetSignableDepositRequest{
		User:   signer.GetAddress().Hex(),
		Token:  signableToken,
		Amount: erc721Quantity,
	})
	if err != nil {
		return nil, err
	}

	encoded, err := w.client.EncodeAsset(ctx, api.AssetTypeAsset, &api.EncodeAssetRequest{
		Token: api.EncodeAssetToken{
			Type: string(tokens.TypeERC721),
			Data: &api.EncodeAssetTokenData{
				TokenID:      token.TokenID,
				TokenAddress: token.Address.Hex(),
			},
		},
	})
	if err != nil {
		return nil, err
	}

	starkKey, assetType, err := depositCallArgs(signable, encoded)
	if err != nil {
		return nil, err
	}

	tokenID, err := parseUint256(token.TokenID)
	if err != nil {
		return nil, err
	}

	return w.core.DepositNft(starkKey, assetType, big.NewInt(signable.VaultID), tokenID)
}

func depositCallArgs(signable *api.GetSignableDepositResponse, encoded *api.EncodeAssetResponse) (*big.Int, *big.Int, error) {
	starkKey, err := parseUint256(signable.StarkKey)
	if err != nil {
		return nil, nil, err
	}

	assetType, err := parseUint256(encoded.AssetType)
	if err != nil {
		return nil, nil, err
	}

	return starkKey, assetType, nil
}
