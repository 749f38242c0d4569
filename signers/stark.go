package signers

import (
	"context"
	"fmt"
	"math/big"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
	starkecdsa "github.com/consensys/gnark-crypto/ecc/stark-curve/ecdsa"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"
	"github.com/dontpanicdao/caigo"
	"github.com/dontpanicdao/caigo/types"
)

// LocalStarkSigner signs payload hashes over the Stark curve with an
// in-memory key. Production wallets keep this key on the far side of a
// signing channel; the local signer backs the wallet daemon and tests.
type LocalStarkSigner struct {
	privateKey  string
	publicKey   string
	yCoordinate string
}

func NewLocalStarkSigner(privateKeyHex string) (*LocalStarkSigner, error) {
	privBN := types.HexToBN(privateKeyHex)
	if privBN == nil {
		return nil, fmt.Errorf("invalid stark private key")
	}

	pubX, pubY, err := caigo.Curve.PrivateToPoint(privBN)
	if err != nil {
		return nil, err
	}

	return &LocalStarkSigner{
		privateKey:  privateKeyHex,
		publicKey:   types.BigToHex(pubX),
		yCoordinate: types.BigToHex(pubY),
	}, nil
}

func (s *LocalStarkSigner) GetAddress() string {
	return s.publicKey
}

// YCoordinate returns the y coordinate of the public key point. The x
// coordinate alone is the account identifier on the network.
func (s *LocalStarkSigner) YCoordinate() string {
	return s.yCoordinate
}

func (s *LocalStarkSigner) SignMessage(ctx context.Context, payloadHash string) (string, error) {
	hash := types.HexToBN(payloadHash)
	if hash == nil {
		return "", fmt.Errorf("invalid payload hash %q", payloadHash)
	}

	r, sig, err := s.sign(hash)
	if err != nil {
		return "", err
	}

	return EncodeStarkSignature(r, sig), nil
}

func (s *LocalStarkSigner) sign(messageHash *big.Int) (r, sig *big.Int, err error) {
	ecdsaPrivateKey, err := s.ecdsaPrivateKey()
	if err != nil {
		return nil, nil, err
	}

	sigBin, err := ecdsaPrivateKey.Sign(messageHash.Bytes(), nil)
	if err != nil {
		return nil, nil, err
	}

	r = new(big.Int).SetBytes(sigBin[:fr.Bytes])
	sig = new(big.Int).SetBytes(sigBin[fr.Bytes:])
	return r, sig, nil
}

func (s *LocalStarkSigner) ecdsaPrivateKey() (*starkecdsa.PrivateKey, error) {
	privateKey := types.StrToFelt(s.privateKey).Big()
	if privateKey == nil {
		return nil, fmt.Errorf("invalid stark private key")
	}

	_, g := starkcurve.Generators()
	pub := new(starkecdsa.PublicKey)
	pub.A.ScalarMultiplication(&g, privateKey)

	ecdsaPrivateKey := new(starkecdsa.PrivateKey)
	pkBytes := privateKey.FillBytes(make([]byte, fr.Bytes))
	buf := append(pub.Bytes(), pkBytes...)
	if _, err := ecdsaPrivateKey.SetBytes(buf); err != nil {
		return nil, err
	}

	return ecdsaPrivateKey, nil
}

// EncodeStarkSignature serializes an r/s pair into the 64-byte hex form the
// network verifies.
func EncodeStarkSignature(r, s *big.Int) string {
	return fmt.Sprintf("0x%064x%064x", r, s)
}
