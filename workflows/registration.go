package workflows

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/immutablex/imx-link/api"
	"github.com/immutablex/imx-link/signers"
)

// IsRegisteredOffchain checks the user lookup endpoint. A 404 is the
// normal "not registered" signal; every other error propagates unchanged.
func (w *Workflows) IsRegisteredOffchain(ctx context.Context, ethAddress common.Address) (bool, error) {
	resp, err := w.client.GetUsers(ctx, ethAddress.Hex())
	if err != nil {
		if api.IsNotFound(err) {
			return false, nil
		}

		return false, err
	}

	return len(resp.Accounts) > 0, nil
}

// IsRegisteredOnchain checks whether the Stark public key is bound
// on-chain. The current registration generation is queried first; a key
// only present on the legacy contract still counts as registered.
func (w *Workflows) IsRegisteredOnchain(ctx context.Context, signer signers.EthSigner, starkPublicKey string) (bool, error) {
	err := w.validateChain(ctx, signer)
	if err != nil {
		return false, err
	}

	starkKey, err := parseUint256(starkPublicKey)
	if err != nil {
		return false, err
	}

	registered, err := w.registrationV4.IsRegistered(starkKey)
	if err != nil {
		return false, err
	}
	if registered {
		return true, nil
	}

	return w.registration.IsRegistered(starkKey)
}

// RegisterOffchain registers the signer pair with the network. The
// registration payload is signed twice, with the L1 signer over the
// signable message and the L2 signer over the payload hash.
func (w *Workflows) RegisterOffchain(ctx context.Context, pair signers.Pair) (*api.RegisterUserResponse, error) {
	err := w.validateChain(ctx, pair.Eth)
	if err != nil {
		return nil, err
	}

	etherKey := pair.Eth.GetAddress().Hex()
	starkKey := pair.Stark.GetAddress()
	signable, err := w.client.GetSignableRegistrationOffchain(ctx, &api.GetSignableRegistrationRequest{
		EtherKey: etherKey,
		StarkKey: starkKey,
	})
	if err != nil {
		return nil, err
	}

	ethSignature, starkSignature, err := w.signPayload(ctx, pair, signable.SignableMessage, signable.PayloadHash)
	if err != nil {
		return nil, err
	}

	return w.client.RegisterUser(ctx, &api.RegisterUserRequest{
		EthSignature:   ethSignature,
		EtherKey:       etherKey,
		StarkKey:       starkKey,
		StarkSignature: starkSignature,
	})
}
