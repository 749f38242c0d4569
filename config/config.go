package config

import (
	"fmt"
	"math/big"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/imdario/mergo"
	"github.com/mitchellh/mapstructure"
)

type Environment string

const (
	Sandbox Environment = "sandbox"
	Mainnet Environment = "mainnet"
)

func ParseEnvironment(s string) (Environment, error) {
	switch Environment(s) {
	case Sandbox, Mainnet:
		return Environment(s), nil
	default:
		return "", fmt.Errorf("unknown environment %q", s)
	}
}

// APIConfiguration describes the off-chain API the SDK submits
// signable payloads to.
type APIConfiguration struct {
	BaseURL string
	Timeout time.Duration
}

// EthConfiguration carries the per-environment contract addresses and the
// chain the signer is expected to be connected to.
type EthConfiguration struct {
	CoreContractAddress           common.Address
	RegistrationContractAddress   common.Address
	RegistrationV4ContractAddress common.Address
	ChainID                       *big.Int
}

// ProviderConfiguration is an immutable bundle resolved once per
// environment. Overrides exist for tests only.
type ProviderConfiguration struct {
	Environment Environment
	API         APIConfiguration
	Eth         EthConfiguration
}

type RawConfig struct {
	Environment string `mapstructure:"environment" default:"sandbox"`
	APIBaseURL  string `mapstructure:"apiBaseUrl"`
	Timeout     uint64 `mapstructure:"timeout" default:"10"`

	CoreContract           string `mapstructure:"coreContract"`
	RegistrationContract   string `mapstructure:"registrationContract"`
	RegistrationV4Contract string `mapstructure:"registrationV4Contract"`
	ChainID                int64  `mapstructure:"chainId"`
}

var environments = map[Environment]ProviderConfiguration{
	Mainnet: {
		Environment: Mainnet,
		API: APIConfiguration{
			BaseURL: "https://api.x.immutable.com",
			Timeout: 10 * time.Second,
		},
		Eth: EthConfiguration{
			CoreContractAddress:           common.HexToAddress("0x5FDCCA53617f4d2b9134B29090C87D01058e27e9"),
			RegistrationContractAddress:   common.HexToAddress("0x72a06bf2a1CE5e39cBA06c0CAb824960B587d64c"),
			RegistrationV4ContractAddress: common.HexToAddress("0xac88a57943b5BBa1ecd931F8494cAd0B7F717590"),
			ChainID:                       big.NewInt(1),
		},
	},
	Sandbox: {
		Environment: Sandbox,
		API: APIConfiguration{
			BaseURL: "https://api.sandbox.x.immutable.com",
			Timeout: 10 * time.Second,
		},
		Eth: EthConfiguration{
			CoreContractAddress:           common.HexToAddress("0x7917eDb51ecD6CdB3F9854c3cc593F33de10c623"),
			RegistrationContractAddress:   common.HexToAddress("0x1C97Ada273C9A52253f463042f29117090Cd7D83"),
			RegistrationV4ContractAddress: common.HexToAddress("0xd1527C65c6287EC5ab816D328eb83bb4CB690e92"),
			ChainID:                       big.NewInt(11155111),
		},
	},
}

// NewProviderConfiguration resolves an environment to its address and API
// bundle. Fields set in override take precedence over the environment
// defaults.
func NewProviderConfiguration(env Environment, override *ProviderConfiguration) (*ProviderConfiguration, error) {
	c, ok := environments[env]
	if !ok {
		return nil, fmt.Errorf("unknown environment %q", env)
	}

	if override != nil {
		if err := mergo.Merge(&c, override, mergo.WithOverride); err != nil {
			return nil, err
		}
	}

	return &c, nil
}

// NewRawProviderConfiguration decodes an explicit configuration from raw
// key/value input, for hosts that do not use the built-in environments.
func NewRawProviderConfiguration(rawConfig map[string]interface{}) (*ProviderConfiguration, error) {
	var c RawConfig
	err := mapstructure.Decode(rawConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	env, err := ParseEnvironment(c.Environment)
	if err != nil {
		return nil, err
	}

	override := &ProviderConfiguration{
		API: APIConfiguration{
			BaseURL: c.APIBaseURL,
			Timeout: time.Duration(c.Timeout) * time.Second,
		},
		Eth: EthConfiguration{
			CoreContractAddress:           common.HexToAddress(c.CoreContract),
			RegistrationContractAddress:   common.HexToAddress(c.RegistrationContract),
			RegistrationV4ContractAddress: common.HexToAddress(c.RegistrationV4Contract),
		},
	}
	if c.ChainID != 0 {
		override.Eth.ChainID = big.NewInt(c.ChainID)
	}

	return NewProviderConfiguration(env, override)
}
