package signers

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// EthSigner signs on the L1 chain: raw personal messages and the chain id
// check every workflow performs before touching the network.
type EthSigner interface {
	GetAddress() common.Address
	SignMessage(ctx context.Context, message []byte) ([]byte, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// StarkSigner signs payload hashes on the L2 settlement layer. GetAddress
// returns the Stark public key.
type StarkSigner interface {
	GetAddress() string
	SignMessage(ctx context.Context, payloadHash string) (string, error)
}

// Pair bundles the two independent signing capabilities one provider
// instance is built around. A pair is never shared across providers.
type Pair struct {
	Eth   EthSigner
	Stark StarkSigner
}
