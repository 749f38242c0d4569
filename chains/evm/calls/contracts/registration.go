package contracts

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/immutablex/imx-link/chains/evm/calls/consts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor"
)

// UserUnregisteredRevert is the revert reason the registration contract
// raises for unknown keys. It is a normal "not registered" signal, not an
// error.
const UserUnregisteredRevert = "USER_UNREGISTERED"

type RegistrationContract struct {
	contracts.Contract
}

func NewRegistrationContract(
	client client.Client,
	address common.Address,
	t transactor.Transactor,
) *RegistrationContract {
	return &RegistrationContract{
		Contract: contracts.NewContract(address, consts.RegistrationABI, nil, client, t),
	}
}

func (c *RegistrationContract) IsRegistered(starkKey *big.Int) (bool, error) {
	res, err := c.CallContract("isRegistered", starkKey)
	if err != nil {
		if strings.Contains(err.Error(), UserUnregisteredRevert) {
			return false, nil
		}

		return false, err
	}

	return *abi.ConvertType(res[0], new(bool)).(*bool), nil
}

func (c *RegistrationContract) RegisterAndWithdraw(ethKey common.Address, starkKey *big.Int, operatorSignature []byte, assetType *big.Int) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"registerAndWithdraw",
		transactor.TransactOptions{},
		ethKey, starkKey, operatorSignature, assetType,
	)
}

func (c *RegistrationContract) RegisterAndWithdrawNft(ethKey common.Address, starkKey *big.Int, operatorSignature []byte, assetType *big.Int, tokenID *big.Int) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"registerAndWithdrawNft",
		transactor.TransactOptions{},
		ethKey, starkKey, operatorSignature, assetType, tokenID,
	)
}

func (c *RegistrationContract) RegisterWithdrawAndMint(ethKey common.Address, starkKey *big.Int, operatorSignature []byte, assetType *big.Int, mintingBlob []byte) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"registerWithdrawAndMint",
		transactor.TransactOptions{},
		ethKey, starkKey, operatorSignature, assetType, mintingBlob,
	)
}
