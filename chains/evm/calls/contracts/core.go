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

// CoreContract wraps the network's escrow contract. The same binding
// serves both registration generations; only the owner key passed into
// withdrawals differs.
type CoreContract struct {
	contracts.Contract
}

func NewCoreContract(
	client client.Client,
	address common.Address,
	t transactor.Transactor,
) *CoreContract {
	return &CoreContract{
		Contract: contracts.NewContract(address, consts.CoreABI, nil, client, t),
	}
}

// DepositEth escrows amount wei into the given vault. The value rides on
// the transaction itself.
func (c *CoreContract) DepositEth(starkKey *big.Int, assetType *big.Int, vaultID *big.Int, amount *big.Int) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"deposit",
		transactor.TransactOptions{Value: amount},
		starkKey, assetType, vaultID,
	)
}

func (c *CoreContract) DepositERC20(starkKey *big.Int, assetType *big.Int, vaultID *big.Int, quantizedAmount *big.Int) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"depositERC20",
		transactor.TransactOptions{},
		starkKey, assetType, vaultID, quantizedAmount,
	)
}

func (c *CoreContract) DepositNft(starkKey *big.Int, assetType *big.Int, vaultID *big.Int, tokenID *big.Int) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"depositNft",
		transactor.TransactOptions{},
		starkKey, assetType, vaultID, tokenID,
	)
}

func (c *CoreContract) Withdraw(ownerKey *big.Int, assetType *big.Int) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"withdraw",
		transactor.TransactOptions{},
		ownerKey, assetType,
	)
}

func (c *CoreContract) WithdrawNft(ownerKey *big.Int, assetType *big.Int, tokenID *big.Int) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"withdrawNft",
		transactor.TransactOptions{},
		ownerKey, assetType, tokenID,
	)
}

func (c *CoreContract) WithdrawAndMint(ownerKey *big.Int, assetType *big.Int, mintingBlob []byte) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"withdrawAndMint",
		transactor.TransactOptions{},
		ownerKey, assetType, mintingBlob,
	)
}

func (c *CoreContract) GetWithdrawalBalance(ownerKey *big.Int, assetID *big.Int) (*big.Int, error) {
	res, err := c.CallContract("getWithdrawalBalance", ownerKey, assetID)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}
