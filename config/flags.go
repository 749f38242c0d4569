package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	EnvironmentFlagName = "environment"
	APIURLFlagName      = "api-url"
	EthRPCFlagName      = "eth-rpc"
	WalletURLFlagName   = "wallet-url"
)

// BindFlags registers the shared provider flags on the root command.
func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(EnvironmentFlagName, string(Sandbox), "Target environment (sandbox or mainnet)")
	_ = viper.BindPFlag(EnvironmentFlagName, rootCMD.PersistentFlags().Lookup(EnvironmentFlagName))

	rootCMD.PersistentFlags().String(APIURLFlagName, "", "Override for the public API base URL")
	_ = viper.BindPFlag(APIURLFlagName, rootCMD.PersistentFlags().Lookup(APIURLFlagName))

	rootCMD.PersistentFlags().String(EthRPCFlagName, "", "Ethereum RPC endpoint")
	_ = viper.BindPFlag(EthRPCFlagName, rootCMD.PersistentFlags().Lookup(EthRPCFlagName))

	rootCMD.PersistentFlags().String(WalletURLFlagName, "", "URL of the signing wallet bridge")
	_ = viper.BindPFlag(WalletURLFlagName, rootCMD.PersistentFlags().Lookup(WalletURLFlagName))
}
