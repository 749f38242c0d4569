package contracts

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/immutablex/imx-link/chains/evm/calls/consts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor"
)

type ERC721Contract struct {
	contracts.Contract
}

func NewERC721Contract(
	client client.Client,
	address common.Address,
	t transactor.Transactor,
) *ERC721Contract {
	return &ERC721Contract{
		Contract: contracts.NewContract(address, consts.ERC721ABI, nil, client, t),
	}
}

func (c *ERC721Contract) IsApprovedForAll(owner common.Address, operator common.Address) (bool, error) {
	res, err := c.CallContract("isApprovedForAll", owner, operator)
	if err != nil {
		return false, err
	}

	return *abi.ConvertType(res[0], new(bool)).(*bool), nil
}

func (c *ERC721Contract) SetApprovalForAll(operator common.Address, approved bool) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"setApprovalForAll",
		transactor.TransactOptions{},
		operator, approved,
	)
}
