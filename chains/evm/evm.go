// Package evm wires the on-chain side of the provider: an RPC client, a
// transactor that signs and sends with the local key, and the contract
// bindings the workflows call.
package evm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/immutablex/imx-link/chains/evm/calls/contracts"
	"github.com/immutablex/imx-link/config"
	"github.com/immutablex/imx-link/workflows"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor/gas"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor/signAndSend"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor/transaction"
	"github.com/sygmaprotocol/sygma-core/crypto/secp256k1"
)

type Connection struct {
	Client     *client.EVMClient
	Transactor transactor.Transactor

	Core           *contracts.CoreContract
	Registration   *contracts.RegistrationContract
	RegistrationV4 *contracts.RegistrationContract
	Factory        *ContractFactory
}

// NewConnection dials the configured endpoint and binds the escrow
// contract and both registration generations for the environment.
func NewConnection(endpoint string, privateKeyHex string, cfg *config.ProviderConfiguration) (*Connection, error) {
	kp, err := secp256k1.NewKeypairFromString(privateKeyHex)
	if err != nil {
		return nil, err
	}

	c, err := client.NewEVMClient(endpoint, kp)
	if err != nil {
		return nil, err
	}

	gasPricer := gas.NewStaticGasPriceDeterminant(c, nil)
	t := signAndSend.NewSignAndSendTransactor(transaction.NewTransaction, gasPricer, c)

	return &Connection{
		Client:         c,
		Transactor:     t,
		Core:           contracts.NewCoreContract(c, cfg.Eth.CoreContractAddress, t),
		Registration:   contracts.NewRegistrationContract(c, cfg.Eth.RegistrationContractAddress, t),
		RegistrationV4: contracts.NewRegistrationContract(c, cfg.Eth.RegistrationV4ContractAddress, t),
		Factory:        NewContractFactory(c, t),
	}, nil
}

// ContractFactory binds per-token approval contracts on demand.
type ContractFactory struct {
	client     client.Client
	transactor transactor.Transactor
}

func NewContractFactory(client client.Client, t transactor.Transactor) *ContractFactory {
	return &ContractFactory{
		client:     client,
		transactor: t,
	}
}

func (f *ContractFactory) ERC20Contract(address common.Address) workflows.ERC20Contract {
	return contracts.NewERC20Contract(f.client, address, f.transactor)
}

func (f *ContractFactory) ERC721Contract(address common.Address) workflows.ERC721Contract {
	return contracts.NewERC721Contract(f.client, address, f.transactor)
}
