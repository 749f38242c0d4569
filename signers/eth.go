package signers

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// LocalEthSigner signs EIP-191 personal messages with an in-memory
// secp256k1 key. The chain id is pinned at construction from the RPC
// endpoint the key is used against.
type LocalEthSigner struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
	chainID    *big.Int
}

func NewLocalEthSigner(privateKeyHex string, chainID *big.Int) (*LocalEthSigner, error) {
	privateKey, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, err
	}

	return &LocalEthSigner{
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		chainID:    chainID,
	}, nil
}

func (s *LocalEthSigner) GetAddress() common.Address {
	return s.address
}

// SignMessage produces a personal-sign signature with the legacy 27/28
// recovery id the network expects.
func (s *LocalEthSigner) SignMessage(ctx context.Context, message []byte) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(message), s.privateKey)
	if err != nil {
		return nil, err
	}

	sig[64] += 27
	return sig, nil
}

func (s *LocalEthSigner) ChainID(ctx context.Context) (*big.Int, error) {
	return s.chainID, nil
}
