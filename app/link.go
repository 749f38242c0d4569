package app

import (
	"fmt"
	"os"

	"github.com/immutablex/imx-link/api"
	"github.com/immutablex/imx-link/chains/evm"
	"github.com/immutablex/imx-link/comm/httpbridge"
	"github.com/immutablex/imx-link/config"
	"github.com/immutablex/imx-link/provider"
	"github.com/immutablex/imx-link/signers"
	"github.com/immutablex/imx-link/workflows"
	"github.com/spf13/viper"
)

const ethKeyEnv = "IMX_ETH_PRIVATE_KEY"

// BuildLink assembles a wallet link from the bound flags: the environment
// bundle, an optional API base override, the Ethereum RPC endpoint and the
// wallet bridge URL. The L1 key is sourced from IMX_ETH_PRIVATE_KEY.
func BuildLink() (*provider.Link, *signers.LocalEthSigner, error) {
	env, err := config.ParseEnvironment(viper.GetString(config.EnvironmentFlagName))
	if err != nil {
		return nil, nil, err
	}

	var override *config.ProviderConfiguration
	if apiURL := viper.GetString(config.APIURLFlagName); apiURL != "" {
		override = &config.ProviderConfiguration{
			API: config.APIConfiguration{BaseURL: apiURL},
		}
	}
	cfg, err := config.NewProviderConfiguration(env, override)
	if err != nil {
		return nil, nil, err
	}

	ethRPC := viper.GetString(config.EthRPCFlagName)
	if ethRPC == "" {
		return nil, nil, fmt.Errorf("--%s is not set", config.EthRPCFlagName)
	}
	walletURL := viper.GetString(config.WalletURLFlagName)
	if walletURL == "" {
		return nil, nil, fmt.Errorf("--%s is not set", config.WalletURLFlagName)
	}

	ethKey := os.Getenv(ethKeyEnv)
	if ethKey == "" {
		return nil, nil, fmt.Errorf("%s is not set", ethKeyEnv)
	}

	conn, err := evm.NewConnection(ethRPC, ethKey, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", ethRPC, err)
	}

	ethSigner, err := signers.NewLocalEthSigner(ethKey, cfg.Eth.ChainID)
	if err != nil {
		return nil, nil, err
	}

	w := workflows.NewWorkflows(
		cfg,
		api.NewClient(cfg.API),
		conn.Core,
		conn.Registration,
		conn.RegistrationV4,
		conn.Factory,
	)
	return provider.NewLink(cfg, httpbridge.NewClient(walletURL), w, nil), ethSigner, nil
}
