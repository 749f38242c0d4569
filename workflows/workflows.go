// The workflows package implements the network's transaction flows on top
// of the REST API, the on-chain contract bindings and a signer pair. Every
// flow validates the signer's chain id before touching the network and
// echoes signable response fields verbatim into the submitting call.
package workflows

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/immutablex/imx-link/api"
	"github.com/immutablex/imx-link/config"
	"github.com/immutablex/imx-link/signers"
	"github.com/immutablex/imx-link/tokens"
)

//go:generate mockgen -source=workflows.go -destination=mock/mock.go -package=mock_workflows

type APIClient interface {
	GetUsers(ctx context.Context, ethAddress string) (*api.GetUsersResponse, error)
	GetSignableRegistrationOffchain(ctx context.Context, req *api.GetSignableRegistrationRequest) (*api.GetSignableRegistrationOffchainResponse, error)
	GetSignableRegistration(ctx context.Context, req *api.GetSignableRegistrationRequest) (*api.GetSignableRegistrationResponse, error)
	RegisterUser(ctx context.Context, req *api.RegisterUserRequest) (*api.RegisterUserResponse, error)
	GetToken(ctx context.Context, tokenAddress string) (*api.TokenDetails, error)
	EncodeAsset(ctx context.Context, assetType string, req *api.EncodeAssetRequest) (*api.EncodeAssetResponse, error)
	GetMintableToken(ctx context.Context, tokenAddress string, tokenID string) (*api.MintableTokenDetails, error)
	GetSignableDeposit(ctx context.Context, req *api.GetSignableDepositRequest) (*api.GetSignableDepositResponse, error)
	GetSignableWithdrawal(ctx context.Context, req *api.GetSignableWithdrawalRequest) (*api.GetSignableWithdrawalResponse, error)
	CreateWithdrawal(ctx context.Context, ethAddress string, ethSignature string, req *api.CreateWithdrawalRequest) (*api.CreateWithdrawalResponse, error)
	GetSignableOrder(ctx context.Context, req *api.GetSignableOrderRequest) (*api.GetSignableOrderResponse, error)
	CreateOrder(ctx context.Context, ethAddress string, ethSignature string, req *api.CreateOrderRequest) (*api.CreateOrderResponse, error)
	GetSignableCancelOrder(ctx context.Context, req *api.GetSignableCancelOrderRequest) (*api.GetSignableCancelOrderResponse, error)
	CancelOrder(ctx context.Context, ethAddress string, ethSignature string, req *api.CancelOrderRequest) (*api.CancelOrderResponse, error)
	GetSignableTrade(ctx context.Context, req *api.GetSignableTradeRequest) (*api.GetSignableTradeResponse, error)
	CreateTrade(ctx context.Context, ethAddress string, ethSignature string, req *api.CreateTradeRequest) (*api.CreateTradeResponse, error)
	GetSignableTransferV1(ctx context.Context, req *api.GetSignableTransferV1Request) (*api.GetSignableTransferV1Response, error)
	CreateTransferV1(ctx context.Context, ethAddress string, ethSignature string, req *api.CreateTransferV1Request) (*api.CreateTransferV1Response, error)
	GetSignableTransfer(ctx context.Context, req *api.GetSignableTransferRequest) (*api.GetSignableTransferResponse, error)
	CreateTransfer(ctx context.Context, ethAddress string, ethSignature string, req *api.CreateTransferRequest) (*api.CreateTransferResponse, error)
	GetExchangeSignableTransfer(ctx context.Context, exchangeID string, req *api.GetSignableTransferV1Request) (*api.GetSignableTransferV1Response, error)
	CreateExchangeTransfer(ctx context.Context, exchangeID string, ethAddress string, ethSignature string, req *api.CreateTransferV1Request) (*api.CreateTransferV1Response, error)
}

type CoreContract interface {
	DepositEth(starkKey *big.Int, assetType *big.Int, vaultID *big.Int, amount *big.Int) (*common.Hash, error)
	DepositERC20(starkKey *big.Int, assetType *big.Int, vaultID *big.Int, quantizedAmount *big.Int) (*common.Hash, error)
	DepositNft(starkKey *big.Int, assetType *big.Int, vaultID *big.Int, tokenID *big.Int) (*common.Hash, error)
	Withdraw(ownerKey *big.Int, assetType *big.Int) (*common.Hash, error)
	WithdrawNft(ownerKey *big.Int, assetType *big.Int, tokenID *big.Int) (*common.Hash, error)
	WithdrawAndMint(ownerKey *big.Int, assetType *big.Int, mintingBlob []byte) (*common.Hash, error)
	GetWithdrawalBalance(ownerKey *big.Int, assetID *big.Int) (*big.Int, error)
}

type RegistrationContract interface {
	IsRegistered(starkKey *big.Int) (bool, error)
	RegisterAndWithdraw(ethKey common.Address, starkKey *big.Int, operatorSignature []byte, assetType *big.Int) (*common.Hash, error)
	RegisterAndWithdrawNft(ethKey common.Address, starkKey *big.Int, operatorSignature []byte, assetType *big.Int, tokenID *big.Int) (*common.Hash, error)
	RegisterWithdrawAndMint(ethKey common.Address, starkKey *big.Int, operatorSignature []byte, assetType *big.Int, mintingBlob []byte) (*common.Hash, error)
}

type ERC20Contract interface {
	Approve(spender common.Address, amount *big.Int) (*common.Hash, error)
}

type ERC721Contract interface {
	IsApprovedForAll(owner common.Address, operator common.Address) (bool, error)
	SetApprovalForAll(operator common.Address, approved bool) (*common.Hash, error)
}

// ContractFactory binds approval contracts lazily since their addresses
// are only known per token.
type ContractFactory interface {
	ERC20Contract(address common.Address) ERC20Contract
	ERC721Contract(address common.Address) ERC721Contract
}

type Workflows struct {
	cfg            *config.ProviderConfiguration
	client         APIClient
	core           CoreContract
	registration   RegistrationContract
	registrationV4 RegistrationContract
	contracts      ContractFactory
}

func NewWorkflows(
	cfg *config.ProviderConfiguration,
	client APIClient,
	core CoreContract,
	registration RegistrationContract,
	registrationV4 RegistrationContract,
	contracts ContractFactory,
) *Workflows {
	return &Workflows{
		cfg:            cfg,
		client:         client,
		core:           core,
		registration:   registration,
		registrationV4: registrationV4,
		contracts:      contracts,
	}
}

// validateChain rejects the call before any network or contract traffic
// when the signer is connected to a different chain than configured.
func (w *Workflows) validateChain(ctx context.Context, signer signers.EthSigner) error {
	chainID, err := signer.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch signer chain id: %w", err)
	}
	if chainID.Cmp(w.cfg.Eth.ChainID) != 0 {
		return fmt.Errorf("signer connected to chain %s, expected chain %s", chainID, w.cfg.Eth.ChainID)
	}

	return nil
}

// signPayload produces the L1 signature over the human readable message
// and the L2 signature over the payload hash.
func (w *Workflows) signPayload(ctx context.Context, pair signers.Pair, message string, payloadHash string) (string, string, error) {
	ethSig, err := pair.Eth.SignMessage(ctx, []byte(message))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign message: %w", err)
	}

	starkSig, err := pair.Stark.SignMessage(ctx, payloadHash)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign payload hash: %w", err)
	}

	return encodeEthSignature(ethSig), starkSig, nil
}

// signableToken normalizes a token for the signable endpoints, resolving
// ERC20 decimals from the API.
func (w *Workflows) signableToken(ctx context.Context, t tokens.Token) (api.SignableToken, error) {
	var decimals int32
	if erc20, ok := t.(tokens.ERC20); ok {
		details, err := w.client.GetToken(ctx, erc20.Address.Hex())
		if err != nil {
			return api.SignableToken{}, err
		}

		decimals, err = details.DecimalsInt()
		if err != nil {
			return api.SignableToken{}, err
		}
	}

	return tokens.Signable(t, decimals)
}

func encodeEthSignature(sig []byte) string {
	return "0x" + common.Bytes2Hex(sig)
}

// parseUint256 accepts the network's identifier encodings, hex for stark
// keys and decimal for asset types and ids.
func parseUint256(s string) (*big.Int, error) {
	var v *big.Int
	var ok bool
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, ok = new(big.Int).SetString(s[2:], 16)
	} else {
		v, ok = new(big.Int).SetString(s, 10)
	}
	if !ok {
		return nil, fmt.Errorf("invalid uint256 value %q", s)
	}

	return v, nil
}

func addressKey(address common.Address) *big.Int {
	return new(big.Int).SetBytes(address.Bytes())
}
