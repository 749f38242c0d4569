package config_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/immutablex/imx-link/config"
	"github.com/stretchr/testify/suite"
)

type ProviderConfigurationTestSuite struct {
	suite.Suite
}

func TestRunProviderConfigurationTestSuite(t *testing.T) {
	suite.Run(t, new(ProviderConfigurationTestSuite))
}

func (s *ProviderConfigurationTestSuite) Test_UnknownEnvironment() {
	_, err := config.NewProviderConfiguration("testnet", nil)

	s.NotNil(err)
}

func (s *ProviderConfigurationTestSuite) Test_EnvironmentDefaults() {
	c, err := config.NewProviderConfiguration(config.Mainnet, nil)

	s.Nil(err)
	s.Equal("https://api.x.immutable.com", c.API.BaseURL)
	s.Equal(big.NewInt(1), c.Eth.ChainID)
	s.Equal(common.HexToAddress("0x5FDCCA53617f4d2b9134B29090C87D01058e27e9"), c.Eth.CoreContractAddress)
}

func (s *ProviderConfigurationTestSuite) Test_OverrideMergedOverDefaults() {
	c, err := config.NewProviderConfiguration(config.Sandbox, &config.ProviderConfiguration{
		API: config.APIConfiguration{
			BaseURL: "http://localhost:8080",
		},
	})

	s.Nil(err)
	s.Equal("http://localhost:8080", c.API.BaseURL)
	// untouched fields keep the environment defaults
	s.Equal(big.NewInt(11155111), c.Eth.ChainID)
	s.Equal(10*time.Second, c.API.Timeout)
}

func (s *ProviderConfigurationTestSuite) Test_RawConfig_FailedDecode() {
	_, err := config.NewRawProviderConfiguration(map[string]interface{}{
		"chainId": "invalid",
	})

	s.NotNil(err)
}

func (s *ProviderConfigurationTestSuite) Test_RawConfig_InvalidEnvironment() {
	_, err := config.NewRawProviderConfiguration(map[string]interface{}{
		"environment": "staging",
	})

	s.NotNil(err)
}

func (s *ProviderConfigurationTestSuite) Test_RawConfig_Valid() {
	c, err := config.NewRawProviderConfiguration(map[string]interface{}{
		"environment": "sandbox",
		"apiBaseUrl":  "http://localhost:8080",
		"chainId":     31337,
	})

	s.Nil(err)
	s.Equal(config.Sandbox, c.Environment)
	s.Equal("http://localhost:8080", c.API.BaseURL)
	s.Equal(big.NewInt(31337), c.Eth.ChainID)
}
