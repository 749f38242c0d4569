package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/immutablex/imx-link/metrics"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/metric/noop"
)

type ProviderMetricsTestSuite struct {
	suite.Suite
}

func TestRunProviderMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(ProviderMetricsTestSuite))
}

func (s *ProviderMetricsTestSuite) Test_NewLinkMetrics_TrackingDoesNotPanic() {
	m, err := metrics.NewLinkMetrics(noop.NewMeterProvider().Meter("imx-link"), "sandbox", "dev")
	s.Require().NoError(err)

	ctx := context.Background()
	m.TrackDeposit(ctx)
	m.TrackWithdrawal(ctx)
	m.TrackTrade(ctx)
	m.TrackTransfer(ctx)
	m.TrackSigningTime(ctx, time.Now())
}
