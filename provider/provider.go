// Package provider exposes one facade method per network workflow, bound
// to a signer pair and an environment configuration.
package provider

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/immutablex/imx-link/api"
	"github.com/immutablex/imx-link/config"
	"github.com/immutablex/imx-link/metrics"
	"github.com/immutablex/imx-link/signers"
	"github.com/immutablex/imx-link/tokens"
	"github.com/immutablex/imx-link/workflows"
)

type IMXProvider struct {
	cfg       *config.ProviderConfiguration
	pair      signers.Pair
	workflows *workflows.Workflows
	metrics   *metrics.ProviderMetrics
}

// NewIMXProvider binds a connected signer pair to the workflow layer.
// metrics may be nil when no meter is configured.
func NewIMXProvider(
	cfg *config.ProviderConfiguration,
	pair signers.Pair,
	w *workflows.Workflows,
	m *metrics.ProviderMetrics,
) *IMXProvider {
	return &IMXProvider{
		cfg:       cfg,
		pair:      pair,
		workflows: w,
		metrics:   m,
	}
}

// GetAddress returns the L1 address the provider acts as.
func (p *IMXProvider) GetAddress() common.Address {
	return p.pair.Eth.GetAddress()
}

// GetStarkPublicKey returns the L2 key the provider signs with.
func (p *IMXProvider) GetStarkPublicKey() string {
	return p.pair.Stark.GetAddress()
}

// GetStarkSigner exposes the bound L2 signer.
func (p *IMXProvider) GetStarkSigner() signers.StarkSigner {
	return p.pair.Stark
}

func (p *IMXProvider) IsRegisteredOffchain(ctx context.Context) (bool, error) {
	return p.workflows.IsRegisteredOffchain(ctx, p.pair.Eth.GetAddress())
}

func (p *IMXProvider) IsRegisteredOnchain(ctx context.Context) (bool, error) {
	return p.workflows.IsRegisteredOnchain(ctx, p.pair.Eth, p.pair.Stark.GetAddress())
}

func (p *IMXProvider) RegisterOffchain(ctx context.Context) (*api.RegisterUserResponse, error) {
	return p.workflows.RegisterOffchain(ctx, p.pair)
}

func (p *IMXProvider) DepositEth(ctx context.Context, amount string) (*common.Hash, error) {
	return p.deposit(ctx, tokens.ETH{}, amount)
}

func (p *IMXProvider) DepositERC20(ctx context.Context, token tokens.ERC20, amount string) (*common.Hash, error) {
	return p.deposit(ctx, token, amount)
}

func (p *IMXProvider) DepositERC721(ctx context.Context, token tokens.ERC721) (*common.Hash, error) {
	return p.deposit(ctx, token, "")
}

func (p *IMXProvider) deposit(ctx context.Context, token tokens.Token, amount string) (*common.Hash, error) {
	hash, err := p.workflows.Deposit(ctx, p.pair.Eth, token, amount)
	if err != nil {
		return nil, err
	}

	if p.metrics != nil {
		p.metrics.TrackDeposit(ctx)
	}
	return hash, nil
}

func (p *IMXProvider) PrepareWithdrawal(ctx context.Context, token tokens.Token, amount string) (*api.CreateWithdrawalResponse, error) {
	resp, err := p.workflows.PrepareWithdrawal(ctx, p.pair, token, amount)
	if err != nil {
		return nil, err
	}

	if p.metrics != nil {
		p.metrics.TrackWithdrawal(ctx)
	}
	return resp, nil
}

func (p *IMXProvider) CompleteWithdrawal(ctx context.Context, token tokens.Token) (*common.Hash, error) {
	hash, err := p.workflows.CompleteWithdrawal(ctx, p.pair.Eth, p.pair.Stark.GetAddress(), token)
	if err != nil {
		return nil, err
	}

	if p.metrics != nil {
		p.metrics.TrackWithdrawal(ctx)
	}
	return hash, nil
}

func (p *IMXProvider) CreateOrder(ctx context.Context, params *workflows.OrderParams) (*api.CreateOrderResponse, error) {
	resp, err := p.workflows.CreateOrder(ctx, p.pair, params)
	if err != nil {
		return nil, err
	}

	if p.metrics != nil {
		p.metrics.TrackTrade(ctx)
	}
	return resp, nil
}

func (p *IMXProvider) CancelOrder(ctx context.Context, orderID int64) (*api.CancelOrderResponse, error) {
	return p.workflows.CancelOrder(ctx, p.pair, orderID)
}

func (p *IMXProvider) CreateTrade(ctx context.Context, orderID int64, fees []api.FeeEntry) (*api.CreateTradeResponse, error) {
	resp, err := p.workflows.CreateTrade(ctx, p.pair, orderID, fees)
	if err != nil {
		return nil, err
	}

	if p.metrics != nil {
		p.metrics.TrackTrade(ctx)
	}
	return resp, nil
}

func (p *IMXProvider) Transfer(ctx context.Context, params *workflows.TransferParams) (*api.CreateTransferV1Response, error) {
	resp, err := p.workflows.Transfer(ctx, p.pair, params)
	if err != nil {
		return nil, err
	}

	if p.metrics != nil {
		p.metrics.TrackTransfer(ctx)
	}
	return resp, nil
}

func (p *IMXProvider) BatchTransfer(ctx context.Context, params []workflows.TransferParams) (*api.CreateTransferResponse, error) {
	resp, err := p.workflows.BatchTransfer(ctx, p.pair, params)
	if err != nil {
		return nil, err
	}

	if p.metrics != nil {
		p.metrics.TrackTransfer(ctx)
	}
	return resp, nil
}

func (p *IMXProvider) ExchangeTransfer(ctx context.Context, exchangeID string, params *workflows.TransferParams) (*api.CreateTransferV1Response, error) {
	resp, err := p.workflows.ExchangeTransfer(ctx, p.pair, exchangeID, params)
	if err != nil {
		return nil, err
	}

	if p.metrics != nil {
		p.metrics.TrackTransfer(ctx)
	}
	return resp, nil
}
