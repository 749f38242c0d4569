package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/immutablex/imx-link/comm/httpbridge"
	"github.com/immutablex/imx-link/config"
	"github.com/immutablex/imx-link/health"
	"github.com/immutablex/imx-link/walletd"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const starkKeyEnv = "IMX_STARK_PRIVATE_KEY"

var Version string

// Run starts the signing wallet daemon. The Stark key never leaves this
// process; callers reach it only through the bridge's envelope protocol.
func Run() error {
	logLevel, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(logLevel)

	env, err := config.ParseEnvironment(viper.GetString(config.EnvironmentFlagName))
	if err != nil {
		return err
	}

	starkKey := os.Getenv(starkKeyEnv)
	if starkKey == "" {
		return fmt.Errorf("%s is not set", starkKeyEnv)
	}

	wallet, err := walletd.NewWallet(starkKey)
	if err != nil {
		return fmt.Errorf("failed to initialize wallet: %w", err)
	}

	go health.StartHealthEndpoint(uint16(viper.GetUint("health-port")))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info().Msgf("Starting walletd %s for %s", Version, env)
	httpbridge.Serve(ctx, viper.GetString("addr"), wallet)
	return nil
}
