package tokens

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/immutablex/imx-link/api"
	"github.com/shopspring/decimal"
)

const (
	EthDecimals = 18
)

type Type string

const (
	TypeETH    Type = "ETH"
	TypeERC20  Type = "ERC20"
	TypeERC721 Type = "ERC721"
)

// Token is the closed set of asset descriptions the workflows operate on.
// Dispatch sites type-switch over the three variants and fail fast on
// anything else.
type Token interface {
	Type() Type
}

type ETH struct{}

func (ETH) Type() Type { return TypeETH }

type ERC20 struct {
	Address common.Address
}

func (ERC20) Type() Type { return TypeERC20 }

type ERC721 struct {
	Address common.Address
	TokenID string
}

func (ERC721) Type() Type { return TypeERC721 }

// ErrUnknownToken is returned by every dispatch site that receives a token
// outside the three known variants.
func ErrUnknownToken(t Token) error {
	return fmt.Errorf("unknown token type %q", t.Type())
}

// Signable normalizes a token into the canonical shape signable endpoints
// accept. decimals only applies to the ERC20 variant.
func Signable(t Token, decimals int32) (api.SignableToken, error) {
	switch token := t.(type) {
	case ETH:
		return api.SignableToken{
			Type: string(TypeETH),
			Data: &api.SignableTokenData{
				Decimals: EthDecimals,
			},
		}, nil
	case ERC20:
		return api.SignableToken{
			Type: string(TypeERC20),
			Data: &api.SignableTokenData{
				Decimals:     int(decimals),
				TokenAddress: token.Address.Hex(),
			},
		}, nil
	case ERC721:
		return api.SignableToken{
			Type: string(TypeERC721),
			Data: &api.SignableTokenData{
				TokenID:      token.TokenID,
				TokenAddress: token.Address.Hex(),
			},
		}, nil
	default:
		return api.SignableToken{}, ErrUnknownToken(t)
	}
}

// Quantize converts a human readable amount into the token's smallest unit.
func Quantize(amount string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	q := d.Shift(decimals)
	if !q.IsInteger() {
		return nil, fmt.Errorf("amount %q has more than %d decimal places", amount, decimals)
	}
	if q.Sign() <= 0 {
		return nil, fmt.Errorf("amount %q must be positive", amount)
	}

	return q.BigInt(), nil
}

// ParseWei validates an amount already expressed in wei.
func ParseWei(amount string) (*big.Int, error) {
	wei, ok := new(big.Int).SetString(amount, 10)
	if !ok {
		return nil, fmt.Errorf("invalid wei amount %q", amount)
	}
	if wei.Sign() <= 0 {
		return nil, fmt.Errorf("amount %q must be positive", amount)
	}

	return wei, nil
}
