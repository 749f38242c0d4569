package workflows

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/immutablex/imx-link/api"
	"github.com/immutablex/imx-link/tokens"
)

// ErrNoWithdrawalBalance is returned when neither registration generation
// holds a withdrawable balance for the requested asset.
var ErrNoWithdrawalBalance = errors.New("No balance to withdraw")

// Generation identifies which registration generation an escrowed balance
// belongs to. V3 balances are keyed by Stark key, v4 by Ethereum address.
type Generation int

const (
	GenerationV3 Generation = 3
	GenerationV4 Generation = 4
)

// BalanceSources holds the withdrawable balance under each generation.
type BalanceSources struct {
	V3 *big.Int
	V4 *big.Int
}

// Preferred selects the generation to withdraw from. The legacy v3 path
// wins whenever it holds a balance so funds escrowed before the migration
// drain first.
func (b BalanceSources) Preferred() (Generation, error) {
	if b.V3 != nil && b.V3.Sign() > 0 {
		return GenerationV3, nil
	}
	if b.V4 != nil && b.V4.Sign() > 0 {
		return GenerationV4, nil
	}

	return 0, ErrNoWithdrawalBalance
}

// withdrawalAsset carries the encoded identifiers a withdrawal needs plus
// the minting details when the token only exists on L2.
type withdrawalAsset struct {
	assetID   *big.Int
	assetType *big.Int
	mintable  *api.MintableTokenDetails
}

// encodeWithdrawalAsset resolves the asset id and type for a token. For
// ERC721 it first determines whether the token id belongs to a mintable
// asset, which changes the encoding shape.
func (w *Workflows) encodeWithdrawalAsset(ctx context.Context, token tokens.Token) (*withdrawalAsset, error) {
	var req *api.EncodeAssetRequest
	assetType := api.AssetTypeAsset
	asset := new(withdrawalAsset)

	switch t := token.(type) {
	case tokens.ETH:
		req = &api.EncodeAssetRequest{
			Token: api.EncodeAssetToken{Type: string(tokens.TypeETH)},
		}
	case tokens.ERC20:
		req = &api.EncodeAssetRequest{
			Token: api.EncodeAssetToken{
				Type: string(tokens.TypeERC20),
				Data: &api.EncodeAssetTokenData{
					TokenAddress: t.Address.Hex(),
				},
			},
		}
	case tokens.ERC721:
		mintable, err := w.client.GetMintableToken(ctx, t.Address.Hex(), t.TokenID)
		if err != nil && !api.IsNotFound(err) {
			return nil, err
		}

		if mintable != nil && err == nil {
			assetType = api.AssetTypeMintableAsset
			asset.mintable = mintable
			req = &api.EncodeAssetRequest{
				Token: api.EncodeAssetToken{
					Type: string(tokens.TypeERC721),
					Data: &api.EncodeAssetTokenData{
						ID:           mintable.ClientTokenID,
						TokenAddress: t.Address.Hex(),
						Blueprint:    mintable.Blueprint,
					},
				},
			}
		} else {
			req = &api.EncodeAssetRequest{
				Token: api.EncodeAssetToken{
					Type: string(tokens.TypeERC721),
					Data: &api.EncodeAssetTokenData{
						TokenID:      t.TokenID,
						TokenAddress: t.Address.Hex(),
					},
				},
			}
		}
	default:
		return nil, tokens.ErrUnknownToken(token)
	}

	encoded, err := w.client.EncodeAsset(ctx, assetType, req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode asset: %w", err)
	}

	asset.assetID, err = parseUint256(encoded.AssetID)
	if err != nil {
		return nil, err
	}

	asset.assetType, err = parseUint256(encoded.AssetType)
	if err != nil {
		return nil, err
	}

	return asset, nil
}

// ResolveWithdrawalBalance queries the escrow balance under both
// registration generations, keyed by Stark key for v3 and by Ethereum
// address for v4.
func (w *Workflows) ResolveWithdrawalBalance(ctx context.Context, starkPublicKey string, ethAddress common.Address, token tokens.Token) (*BalanceSources, error) {
	asset, err := w.encodeWithdrawalAsset(ctx, token)
	if err != nil {
		return nil, err
	}

	return w.resolveBalanceSources(starkPublicKey, ethAddress, asset)
}

func (w *Workflows) resolveBalanceSources(starkPublicKey string, ethAddress common.Address, asset *withdrawalAsset) (*BalanceSources, error) {
	starkKey, err := parseUint256(starkPublicKey)
	if err != nil {
		return nil, err
	}

	v3, err := w.core.GetWithdrawalBalance(starkKey, asset.assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch v3 withdrawal balance: %w", err)
	}

	v4, err := w.core.GetWithdrawalBalance(addressKey(ethAddress), asset.assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch v4 withdrawal balance: %w", err)
	}

	return &BalanceSources{V3: v3, V4: v4}, nil
}
