package workflows_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/immutablex/imx-link/api"
	"github.com/immutablex/imx-link/config"
	"github.com/immutablex/imx-link/signers"
	"github.com/immutablex/imx-link/tokens"
	"github.com/immutablex/imx-link/workflows"
	mock_workflows "github.com/immutablex/imx-link/workflows/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DepositTestSuite struct {
	suite.Suite

	mockClient         *mock_workflows.MockAPIClient
	mockCore           *mock_workflows.MockCoreContract
	mockRegistration   *mock_workflows.MockRegistrationContract
	mockRegistrationV4 *mock_workflows.MockRegistrationContract
	mockFactory        *mock_workflows.MockContractFactory
	mockERC20          *mock_workflows.MockERC20Contract
	mockERC721         *mock_workflows.MockERC721Contract

	cfg       *config.ProviderConfiguration
	signer    *signers.LocalEthSigner
	workflows *workflows.Workflows
}

func TestRunDepositTestSuite(t *testing.T) {
	suite.Run(t, new(DepositTestSuite))
}

func (s *DepositTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockClient = mock_workflows.NewMockAPIClient(ctrl)
	s.mockCore = mock_workflows.NewMockCoreContract(ctrl)
	s.mockRegistration = mock_workflows.NewMockRegistrationContract(ctrl)
	s.mockRegistrationV4 = mock_workflows.NewMockRegistrationContract(ctrl)
	s.mockFactory = mock_workflows.NewMockContractFactory(ctrl)
	s.mockERC20 = mock_workflows.NewMockERC20Contract(ctrl)
	s.mockERC721 = mock_workflows.NewMockERC721Contract(ctrl)

	cfg, err := config.NewProviderConfiguration(config.Mainnet, nil)
	s.Require().NoError(err)
	s.cfg = cfg

	s.signer, err = signers.NewLocalEthSigner(testEthKey, big.NewInt(1))
	s.Require().NoError(err)

	s.workflows = workflows.NewWorkflows(cfg, s.mockClient, s.mockCore, s.mockRegistration, s.mockRegistrationV4, s.mockFactory)
}

func (s *DepositTestSuite) Test_Deposit_ChainMismatch() {
	wrongChainSigner, err := signers.NewLocalEthSigner(testEthKey, big.NewInt(11155111))
	s.Require().NoError(err)

	_, err = s.workflows.Deposit(context.Background(), wrongChainSigner, tokens.ETH{}, "100")

	s.NotNil(err)
}

func (s *DepositTestSuite) Test_Deposit_Eth() {
	txHash := common.HexToHash("0xabcd")
	s.mockClient.EXPECT().GetSignableDeposit(gomock.Any(), &api.GetSignableDepositRequest{
		User: s.signer.GetAddress().Hex(),
		Token: api.SignableToken{
			Type: "ETH",
			Data: &api.SignableTokenData{Decimals: 18},
		},
		Amount: "1000000000000000000",
	}).Return(&api.GetSignableDepositResponse{
		StarkKey: "0x1234",
		VaultID:  1502,
		Amount:   "1000000000000000000",
	}, nil)
	s.mockClient.EXPECT().EncodeAsset(gomock.Any(), "asset", &api.EncodeAssetRequest{
		Token: api.EncodeAssetToken{Type: "ETH"},
	}).Return(&api.EncodeAssetResponse{
		AssetID:   "994",
		AssetType: "1002",
	}, nil)
	s.mockCore.EXPECT().DepositEth(
		big.NewInt(0x1234),
		big.NewInt(1002),
		big.NewInt(1502),
		big.NewInt(1000000000000000000),
	).Return(&txHash, nil)

	hash, err := s.workflows.Deposit(context.Background(), s.signer, tokens.ETH{}, "1000000000000000000")

	s.Nil(err)
	s.Equal(hash, &txHash)
}

func (s *DepositTestSuite) Test_Deposit_Eth_InvalidAmount() {
	_, err := s.workflows.Deposit(context.Background(), s.signer, tokens.ETH{}, "one ether")

	s.NotNil(err)
}

func (s *DepositTestSuite) Test_Deposit_ERC20_CallOrder() {
	tokenAddress := common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	txHash := common.HexToHash("0xabcd")
	s.mockFactory.EXPECT().ERC20Contract(tokenAddress).Return(s.mockERC20)

	gomock.InOrder(
		s.mockClient.EXPECT().GetToken(gomock.Any(), tokenAddress.Hex()).Return(&api.TokenDetails{
			TokenAddress: tokenAddress.Hex(),
			Symbol:       "USDC",
			Decimals:     "6",
		}, nil),
		s.mockERC20.EXPECT().Approve(s.cfg.Eth.CoreContractAddress, big.NewInt(5000000)).Return(&txHash, nil),
		s.mockClient.EXPECT().GetSignableDeposit(gomock.Any(), &api.GetSignableDepositRequest{
			User: s.signer.GetAddress().Hex(),
			Token: api.SignableToken{
				Type: "ERC20",
				Data: &api.SignableTokenData{
					Decimals:     6,
					TokenAddress: tokenAddress.Hex(),
				},
			},
			Amount: "5000000",
		}).Return(&api.GetSignableDepositResponse{
			StarkKey: "0x1234",
			VaultID:  1502,
			Amount:   "5000000",
		}, nil),
		s.mockClient.EXPECT().EncodeAsset(gomock.Any(), "asset", &api.EncodeAssetRequest{
			Token: api.EncodeAssetToken{
				Type: "ERC20",
				Data: &api.EncodeAssetTokenData{
					TokenAddress: tokenAddress.Hex(),
				},
			},
		}).Return(&api.EncodeAssetResponse{
			AssetID:   "994",
			AssetType: "1002",
		}, nil),
		s.mockCore.EXPECT().DepositERC20(
			big.NewInt(0x1234),
			big.NewInt(1002),
			big.NewInt(1502),
			big.NewInt(5000000),
		).Return(&txHash, nil),
	)

	hash, err := s.workflows.Deposit(context.Background(), s.signer, tokens.ERC20{Address: tokenAddress}, "5")

	s.Nil(err)
	s.Equal(hash, &txHash)
}

func (s *DepositTestSuite) Test_Deposit_ERC721_ApprovesWhenMissing() {
	tokenAddress := common.HexToAddress("0x9A0b86991c6218b36c1d19D4a2e9Eb0cE3606eB4")
	txHash := common.HexToHash("0xabcd")
	s.mockFactory.EXPECT().ERC721Contract(tokenAddress).Return(s.mockERC721)
	s.mockERC721.EXPECT().IsApprovedForAll(s.signer.GetAddress(), s.cfg.Eth.CoreContractAddress).Return(false, nil)
	s.mockERC721.EXPECT().SetApprovalForAll(s.cfg.Eth.CoreContractAddress, true).Return(&txHash, nil)
	s.mockClient.EXPECT().GetSignableDeposit(gomock.Any(), &api.GetSignableDepositRequest{
		User: s.signer.GetAddress().Hex(),
		Token: api.SignableToken{
			Type: "ERC721",
			Data: &api.SignableTokenData{
				TokenID:      "42",
				TokenAddress: tokenAddress.Hex(),
			},
		},
		Amount: "1",
	}).Return(&api.GetSignableDepositResponse{
		StarkKey: "0x1234",
		VaultID:  1502,
		Amount:   "1",
	}, nil)
	s.mockClient.EXPECT().EncodeAsset(gomock.Any(), "asset", gomock.Any()).Return(&api.EncodeAssetResponse{
		AssetID:   "994",
		AssetType: "1002",
	}, nil)
	s.mockCore.EXPECT().DepositNft(
		big.NewInt(0x1234),
		big.NewInt(1002),
		big.NewInt(1502),
		big.NewInt(42),
	).Return(&txHash, nil)

	hash, err := s.workflows.Deposit(context.Background(), s.signer, tokens.ERC721{Address: tokenAddress, TokenID: "42"}, "")

	s.Nil(err)
	s.Equal(hash, &txHash)
}

func (s *DepositTestSuite) Test_Deposit_ERC721_SkipsApprovalWhenSet() {
	tokenAddress := common.HexToAddress("0x9A0b86991c6218b36c1d19D4a2e9Eb0cE3606eB4")
	txHash := common.HexToHash("0xabcd")
	s.mockFactory.EXPECT().ERC721Contract(tokenAddress).Return(s.mockERC721)
	s.mockERC721.EXPECT().IsApprovedForAll(gomock.Any(), gomock.Any()).Return(true, nil)
	s.mockClient.EXPECT().GetSignableDeposit(gomock.Any(), gomock.Any()).Return(&api.GetSignableDepositResponse{
		StarkKey: "0x1234",
		VaultID:  1502,
		Amount:   "1",
	}, nil)
	s.mockClient.EXPECT().EncodeAsset(gomock.Any(), "asset", gomock.Any()).Return(&api.EncodeAssetResponse{
		AssetID:   "994",
		AssetType: "1002",
	}, nil)
	s.mockCore.EXPECT().DepositNft(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&txHash, nil)

	_, err := s.workflows.Deposit(context.Background(), s.signer, tokens.ERC721{Address: tokenAddress, TokenID: "42"}, "")

	s.Nil(err)
}
