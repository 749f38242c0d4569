package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/immutablex/imx-link/comm"
	"github.com/immutablex/imx-link/config"
	"github.com/immutablex/imx-link/metrics"
	"github.com/immutablex/imx-link/signers"
	"github.com/immutablex/imx-link/workflows"
	"github.com/rs/zerolog/log"
)

// Link owns the connection procedure against an external signing wallet.
// Connecting proves intent with a consent signature, exchanges it for the
// wallet's Stark public key and yields a provider bound to a remote L2
// signer on the same channel.
type Link struct {
	cfg       *config.ProviderConfiguration
	channel   comm.Channel
	workflows *workflows.Workflows
	metrics   *metrics.ProviderMetrics

	provider *IMXProvider
}

func NewLink(
	cfg *config.ProviderConfiguration,
	channel comm.Channel,
	w *workflows.Workflows,
	m *metrics.ProviderMetrics,
) *Link {
	return &Link{
		cfg:       cfg,
		channel:   channel,
		workflows: w,
		metrics:   m,
	}
}

// Connect pairs the L1 signer with the signing wallet and returns a
// provider whose L2 signatures are delegated over the channel.
func (l *Link) Connect(ctx context.Context, ethSigner signers.EthSigner) (*IMXProvider, error) {
	start := time.Now()
	consentSignature, err := ethSigner.SignMessage(ctx, []byte(comm.ConnectConsentMessage))
	if err != nil {
		return nil, newWalletConnectionError(fmt.Errorf("failed to sign consent message: %w", err))
	}

	req, err := comm.NewRequest("", comm.ConnectWalletRequest, comm.ConnectDetails{
		EthAddress: ethSigner.GetAddress().Hex(),
		Signature:  hexutil.Encode(consentSignature),
	})
	if err != nil {
		return nil, newWalletConnectionError(err)
	}

	resp, err := l.channel.Request(ctx, req)
	if err != nil {
		return nil, newWalletConnectionError(err)
	}

	data := new(comm.ConnectData)
	err = comm.DecodeData(resp, data)
	if err != nil {
		return nil, newWalletConnectionError(err)
	}

	if l.metrics != nil {
		l.metrics.TrackSigningTime(ctx, start)
	}
	log.Info().Msgf("Connected wallet %s", ethSigner.GetAddress())

	pair := signers.Pair{
		Eth: ethSigner,
		Stark: &sessionStarkSigner{
			inner:   signers.NewRemoteStarkSigner(l.channel, data.StarkPublicKey),
			metrics: l.metrics,
		},
	}
	l.provider = NewIMXProvider(l.cfg, pair, l.workflows, l.metrics)
	return l.provider, nil
}

// sessionStarkSigner decorates the remote signer for an established
// session. Channel failures after pairing surface as provider connection
// errors, and every signing round trip is recorded.
type sessionStarkSigner struct {
	inner   signers.StarkSigner
	metrics *metrics.ProviderMetrics
}

func (s *sessionStarkSigner) GetAddress() string {
	return s.inner.GetAddress()
}

func (s *sessionStarkSigner) SignMessage(ctx context.Context, payloadHash string) (string, error) {
	start := time.Now()
	signature, err := s.inner.SignMessage(ctx, payloadHash)
	if err != nil {
		return "", newProviderConnectionError(err)
	}

	if s.metrics != nil {
		s.metrics.TrackSigningTime(ctx, start)
	}
	return signature, nil
}

// Disconnect tears down the wallet pairing before releasing the channel.
func (l *Link) Disconnect(ctx context.Context) error {
	if l.provider == nil {
		return newProviderConnectionError(fmt.Errorf("no wallet connected"))
	}

	req, err := comm.NewRequest("", comm.DisconnectWalletRequest, nil)
	if err != nil {
		return newProviderConnectionError(err)
	}

	resp, err := l.channel.Request(ctx, req)
	if err != nil {
		return newProviderConnectionError(err)
	}
	err = comm.DecodeData(resp, nil)
	if err != nil {
		return newProviderConnectionError(err)
	}

	l.provider = nil
	return l.channel.Close()
}
