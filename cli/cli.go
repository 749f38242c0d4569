package cli

import (
	"github.com/immutablex/imx-link/app"
	"github.com/immutablex/imx-link/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootCMD = &cobra.Command{
		Use: "imx-link",
	}

	walletdCMD = &cobra.Command{
		Use:   "walletd",
		Short: "Run the signing wallet daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}

	connectCMD = &cobra.Command{
		Use:   "connect",
		Short: "Pair with a signing wallet and print its Stark public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			link, ethSigner, err := app.BuildLink()
			if err != nil {
				return err
			}

			p, err := link.Connect(cmd.Context(), ethSigner)
			if err != nil {
				return err
			}

			log.Info().Msgf("Paired wallet %s with Stark key %s", p.GetAddress(), p.GetStarkPublicKey())
			return link.Disconnect(cmd.Context())
		},
	}
)

func init() {
	config.BindFlags(rootCMD)

	walletdCMD.Flags().String("addr", "127.0.0.1:8645", "address the wallet bridge listens on")
	_ = viper.BindPFlag("addr", walletdCMD.Flags().Lookup("addr"))

	walletdCMD.Flags().Uint16("health-port", 9001, "port for the health endpoint")
	_ = viper.BindPFlag("health-port", walletdCMD.Flags().Lookup("health-port"))

	walletdCMD.Flags().String("log-level", "info", "log level")
	_ = viper.BindPFlag("log-level", walletdCMD.Flags().Lookup("log-level"))
}

func Execute() {
	rootCMD.AddCommand(walletdCMD)
	rootCMD.AddCommand(connectCMD)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
