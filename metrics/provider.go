package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// NewLinkMetrics creates all metrics tracked by the SDK tagged with the
// environment and SDK version
func NewLinkMetrics(meter metric.Meter, env string, version string) (*ProviderMetrics, error) {
	opts := metric.WithAttributes(
		attribute.String("environment", env),
		attribute.String("version", version),
	)
	return NewProviderMetrics(meter, opts)
}

type ProviderMetrics struct {
	depositCounter    metric.Int64Counter
	withdrawalCounter metric.Int64Counter
	tradeCounter      metric.Int64Counter
	transferCounter   metric.Int64Counter

	signingTimeHistogram metric.Float64Histogram

	opts metric.MeasurementOption
}

// NewProviderMetrics initializes metrics related to provider workflows
func NewProviderMetrics(meter metric.Meter, opts metric.MeasurementOption) (*ProviderMetrics, error) {
	depositCounter, err := meter.Int64Counter(
		"provider.Deposits",
		metric.WithDescription("Number of deposits submitted on-chain"),
	)
	if err != nil {
		return nil, err
	}
	withdrawalCounter, err := meter.Int64Counter(
		"provider.Withdrawals",
		metric.WithDescription("Number of withdrawals prepared or completed"),
	)
	if err != nil {
		return nil, err
	}
	tradeCounter, err := meter.Int64Counter(
		"provider.Trades",
		metric.WithDescription("Number of orders and trades submitted"),
	)
	if err != nil {
		return nil, err
	}
	transferCounter, err := meter.Int64Counter(
		"provider.Transfers",
		metric.WithDescription("Number of transfers submitted"),
	)
	if err != nil {
		return nil, err
	}
	signingTimeHistogram, err := meter.Float64Histogram(
		"provider.SigningTime",
		metric.WithDescription("Duration of wallet signing round-trips"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &ProviderMetrics{
		depositCounter:       depositCounter,
		withdrawalCounter:    withdrawalCounter,
		tradeCounter:         tradeCounter,
		transferCounter:      transferCounter,
		signingTimeHistogram: signingTimeHistogram,
		opts:                 opts,
	}, nil
}

func (m *ProviderMetrics) TrackDeposit(ctx context.Context) {
	m.depositCounter.Add(ctx, 1, m.opts)
}

func (m *ProviderMetrics) TrackWithdrawal(ctx context.Context) {
	m.withdrawalCounter.Add(ctx, 1, m.opts)
}

func (m *ProviderMetrics) TrackTrade(ctx context.Context) {
	m.tradeCounter.Add(ctx, 1, m.opts)
}

func (m *ProviderMetrics) TrackTransfer(ctx context.Context) {
	m.transferCounter.Add(ctx, 1, m.opts)
}

func (m *ProviderMetrics) TrackSigningTime(ctx context.Context, start time.Time) {
	m.signingTimeHistogram.Record(ctx, time.Since(start).Seconds(), m.opts)
}
