package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/immutablex/imx-link/chains/evm/calls/consts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor"
)

type ERC20Contract struct {
	contracts.Contract
}

func NewERC20Contract(
	client client.Client,
	address common.Address,
	t transactor.Transactor,
) *ERC20Contract {
	return &ERC20Contract{
		Contract: contracts.NewContract(address, consts.ERC20ABI, nil, client, t),
	}
}

func (c *ERC20Contract) Approve(spender common.Address, amount *big.Int) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"approve",
		transactor.TransactOptions{},
		spender, amount,
	)
}

func (c *ERC20Contract) Allowance(owner common.Address, spender common.Address) (*big.Int, error) {
	res, err := c.CallContract("allowance", owner, spender)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}
