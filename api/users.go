package api

import (
	"context"
	"fmt"
)

type GetUsersResponse struct {
	Accounts []string `json:"accounts"`
}

// GetUsers looks up the registered accounts for an Ethereum address. A 404
// means the address has never been registered off-chain.
func (c *Client) GetUsers(ctx context.Context, ethAddress string) (*GetUsersResponse, error) {
	resp := new(GetUsersResponse)
	err := c.get(ctx, fmt.Sprintf("/v1/users/%s", ethAddress), resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type GetSignableRegistrationRequest struct {
	EtherKey string `json:"ether_key"`
	StarkKey string `json:"stark_key"`
}

type GetSignableRegistrationOffchainResponse struct {
	SignableMessage string `json:"signable_message"`
	PayloadHash     string `json:"payload_hash"`
}

func (c *Client) GetSignableRegistrationOffchain(ctx context.Context, req *GetSignableRegistrationRequest) (*GetSignableRegistrationOffchainResponse, error) {
	resp := new(GetSignableRegistrationOffchainResponse)
	err := c.post(ctx, "/v1/signable-registration-offchain", req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type GetSignableRegistrationResponse struct {
	OperatorSignature string `json:"operator_signature"`
}

// GetSignableRegistration fetches the operator signature the on-chain
// register-and-X contract entry points require.
func (c *Client) GetSignableRegistration(ctx context.Context, req *GetSignableRegistrationRequest) (*GetSignableRegistrationResponse, error) {
	resp := new(GetSignableRegistrationResponse)
	err := c.post(ctx, "/v1/signable-registration", req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type RegisterUserRequest struct {
	EthSignature   string `json:"eth_signature"`
	EtherKey       string `json:"ether_key"`
	StarkKey       string `json:"stark_key"`
	StarkSignature string `json:"stark_signature"`
}

type RegisterUserResponse struct {
	TxHash string `json:"tx_hash"`
}

func (c *Client) RegisterUser(ctx context.Context, req *RegisterUserRequest) (*RegisterUserResponse, error) {
	resp := new(RegisterUserResponse)
	err := c.post(ctx, "/v1/users", req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
