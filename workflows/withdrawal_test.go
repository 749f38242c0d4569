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

type WithdrawalTestSuite struct {
	suite.Suite

	mockClient         *mock_workflows.MockAPIClient
	mockCore           *mock_workflows.MockCoreContract
	mockRegistration   *mock_workflows.MockRegistrationContract
	mockRegistrationV4 *mock_workflows.MockRegistrationContract
	mockFactory        *mock_workflows.MockContractFactory

	pair      signers.Pair
	starkKey  *big.Int
	ownerKey  *big.Int
	workflows *workflows.Workflows
}

func TestRunWithdrawalTestSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalTestSuite))
}

func (s *WithdrawalTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockClient = mock_workflows.NewMockAPIClient(ctrl)
	s.mockCore = mock_workflows.NewMockCoreContract(ctrl)
	s.mockRegistration = mock_workflows.NewMockRegistrationContract(ctrl)
	s.mockRegistrationV4 = mock_workflows.NewMockRegistrationContract(ctrl)
	s.mockFactory = mock_workflows.NewMockContractFactory(ctrl)

	cfg, err := config.NewProviderConfiguration(config.Mainnet, nil)
	s.Require().NoError(err)

	ethSigner, err := signers.NewLocalEthSigner(testEthKey, big.NewInt(1))
	s.Require().NoError(err)

	s.pair = signers.Pair{
		Eth:   ethSigner,
		Stark: &starkSignerStub{address: "0x1234"},
	}
	s.starkKey = big.NewInt(0x1234)
	s.ownerKey = new(big.Int).SetBytes(ethSigner.GetAddress().Bytes())
	s.workflows = workflows.NewWorkflows(cfg, s.mockClient, s.mockCore, s.mockRegistration, s.mockRegistrationV4, s.mockFactory)
}

func (s *WithdrawalTestSuite) expectEthAsset() {
	s.mockClient.EXPECT().EncodeAsset(gomock.Any(), "asset", &api.EncodeAssetRequest{
		Token: api.EncodeAssetToken{Type: "ETH"},
	}).Return(&api.EncodeAssetResponse{
		AssetID:   "994",
		AssetType: "1002",
	}, nil)
}

func (s *WithdrawalTestSuite) expectBalances(v3, v4 int64) {
	s.mockCore.EXPECT().GetWithdrawalBalance(s.starkKey, big.NewInt(994)).Return(big.NewInt(v3), nil)
	s.mockCore.EXPECT().GetWithdrawalBalance(s.ownerKey, big.NewInt(994)).Return(big.NewInt(v4), nil)
}

func (s *WithdrawalTestSuite) Test_CompleteWithdrawal_V3Registered() {
	txHash := common.HexToHash("0xabcd")
	s.expectEthAsset()
	s.expectBalances(100, 0)
	s.mockRegistration.EXPECT().IsRegistered(s.starkKey).Return(true, nil)
	s.mockCore.EXPECT().Withdraw(s.starkKey, big.NewInt(1002)).Return(&txHash, nil)

	hash, err := s.workflows.CompleteWithdrawal(context.Background(), s.pair.Eth, "0x1234", tokens.ETH{})

	s.Nil(err)
	s.Equal(hash, &txHash)
}

func (s *WithdrawalTestSuite) Test_CompleteWithdrawal_V3Unregistered() {
	txHash := common.HexToHash("0xabcd")
	s.expectEthAsset()
	s.expectBalances(100, 0)
	s.mockRegistration.EXPECT().IsRegistered(s.starkKey).Return(false, nil)
	s.mockClient.EXPECT().GetSignableRegistration(gomock.Any(), &api.GetSignableRegistrationRequest{
		EtherKey: s.pair.Eth.GetAddress().Hex(),
		StarkKey: "0x1234",
	}).Return(&api.GetSignableRegistrationResponse{
		OperatorSignature: "0xdeadbeef",
	}, nil)
	s.mockRegistration.EXPECT().RegisterAndWithdraw(
		s.pair.Eth.GetAddress(),
		s.starkKey,
		[]byte{0xde, 0xad, 0xbe, 0xef},
		big.NewInt(1002),
	).Return(&txHash, nil)

	hash, err := s.workflows.CompleteWithdrawal(context.Background(), s.pair.Eth, "0x1234", tokens.ETH{})

	s.Nil(err)
	s.Equal(hash, &txHash)
}

func (s *WithdrawalTestSuite) Test_CompleteWithdrawal_V4SkipsRegistrationBranch() {
	txHash := common.HexToHash("0xabcd")
	s.expectEthAsset()
	s.expectBalances(0, 100)
	s.mockCore.EXPECT().Withdraw(s.ownerKey, big.NewInt(1002)).Return(&txHash, nil)

	hash, err := s.workflows.CompleteWithdrawal(context.Background(), s.pair.Eth, "0x1234", tokens.ETH{})

	s.Nil(err)
	s.Equal(hash, &txHash)
}

func (s *WithdrawalTestSuite) Test_CompleteWithdrawal_NoBalance() {
	s.expectEthAsset()
	s.expectBalances(0, 0)

	_, err := s.workflows.CompleteWithdrawal(context.Background(), s.pair.Eth, "0x1234", tokens.ETH{})

	s.ErrorIs(err, workflows.ErrNoWithdrawalBalance)
}

func (s *WithdrawalTestSuite) Test_CompleteWithdrawal_MintedNft() {
	tokenAddress := common.HexToAddress("0x9A0b86991c6218b36c1d19D4a2e9Eb0cE3606eB4")
	txHash := common.HexToHash("0xabcd")
	s.mockClient.EXPECT().GetMintableToken(gomock.Any(), tokenAddress.Hex(), "42").Return(nil, &api.APIError{
		StatusCode: 404,
	})
	s.mockClient.EXPECT().EncodeAsset(gomock.Any(), "asset", &api.EncodeAssetRequest{
		Token: api.EncodeAssetToken{
			Type: "ERC721",
			Data: &api.EncodeAssetTokenData{
				TokenID:      "42",
				TokenAddress: tokenAddress.Hex(),
			},
		},
	}).Return(&api.EncodeAssetResponse{
		AssetID:   "994",
		AssetType: "1002",
	}, nil)
	s.expectBalances(1, 0)
	s.mockRegistration.EXPECT().IsRegistered(s.starkKey).Return(true, nil)
	s.mockCore.EXPECT().WithdrawNft(s.starkKey, big.NewInt(1002), big.NewInt(42)).Return(&txHash, nil)

	hash, err := s.workflows.CompleteWithdrawal(context.Background(), s.pair.Eth, "0x1234", tokens.ERC721{
		Address: tokenAddress,
		TokenID: "42",
	})

	s.Nil(err)
	s.Equal(hash, &txHash)
}

func (s *WithdrawalTestSuite) Test_CompleteWithdrawal_MintableNftUnregistered() {
	tokenAddress := common.HexToAddress("0x9A0b86991c6218b36c1d19D4a2e9Eb0cE3606eB4")
	txHash := common.HexToHash("0xabcd")
	s.mockClient.EXPECT().GetMintableToken(gomock.Any(), tokenAddress.Hex(), "42").Return(&api.MintableTokenDetails{
		TokenID:       "42",
		ClientTokenID: "client-42",
		Blueprint:     "onchain-metadata",
	}, nil)
	s.mockClient.EXPECT().EncodeAsset(gomock.Any(), "mintable-asset", &api.EncodeAssetRequest{
		Token: api.EncodeAssetToken{
			Type: "ERC721",
			Data: &api.EncodeAssetTokenData{
				ID:           "client-42",
				TokenAddress: tokenAddress.Hex(),
				Blueprint:    "onchain-metadata",
			},
		},
	}).Return(&api.EncodeAssetResponse{
		AssetID:   "994",
		AssetType: "1002",
	}, nil)
	s.expectBalances(1, 0)
	s.mockRegistration.EXPECT().IsRegistered(s.starkKey).Return(false, nil)
	s.mockClient.EXPECT().GetSignableRegistration(gomock.Any(), gomock.Any()).Return(&api.GetSignableRegistrationResponse{
		OperatorSignature: "0xdeadbeef",
	}, nil)
	s.mockRegistration.EXPECT().RegisterWithdrawAndMint(
		s.pair.Eth.GetAddress(),
		s.starkKey,
		[]byte{0xde, 0xad, 0xbe, 0xef},
		big.NewInt(1002),
		[]byte("{42}:{onchain-metadata}"),
	).Return(&txHash, nil)

	hash, err := s.workflows.CompleteWithdrawal(context.Background(), s.pair.Eth, "0x1234", tokens.ERC721{
		Address: tokenAddress,
		TokenID: "42",
	})

	s.Nil(err)
	s.Equal(hash, &txHash)
}

func (s *WithdrawalTestSuite) Test_CompleteWithdrawal_MintableNftRegistered_BlobFormat() {
	tokenAddress := common.HexToAddress("0x9A0b86991c6218b36c1d19D4a2e9Eb0cE3606eB4")
	txHash := common.HexToHash("0xabcd")
	s.mockClient.EXPECT().GetMintableToken(gomock.Any(), tokenAddress.Hex(), "42").Return(&api.MintableTokenDetails{
		TokenID:       "42",
		ClientTokenID: "client-42",
		Blueprint:     "onchain-metadata",
	}, nil)
	s.mockClient.EXPECT().EncodeAsset(gomock.Any(), "mintable-asset", gomock.Any()).Return(&api.EncodeAssetResponse{
		AssetID:   "994",
		AssetType: "1002",
	}, nil)
	s.expectBalances(1, 0)
	s.mockRegistration.EXPECT().IsRegistered(s.starkKey).Return(true, nil)
	s.mockCore.EXPECT().WithdrawAndMint(
		s.starkKey,
		big.NewInt(1002),
		[]byte("{42}:{onchain-metadata}"),
	).Return(&txHash, nil)

	hash, err := s.workflows.CompleteWithdrawal(context.Background(), s.pair.Eth, "0x1234", tokens.ERC721{
		Address: tokenAddress,
		TokenID: "42",
	})

	s.Nil(err)
	s.Equal(hash, &txHash)
}

func (s *WithdrawalTestSuite) Test_PrepareWithdrawal_EchoesSignableFields() {
	signable := &api.GetSignableWithdrawalResponse{
		SignableMessage: "Sign this withdrawal",
		PayloadHash:     "0xcafe",
		StarkKey:        "0x1234",
		VaultID:         1502,
		AssetID:         "994",
		Amount:          "1000000000000000000",
		Nonce:           719,
	}
	s.mockClient.EXPECT().GetSignableWithdrawal(gomock.Any(), &api.GetSignableWithdrawalRequest{
		User: s.pair.Eth.GetAddress().Hex(),
		Token: api.SignableToken{
			Type: "ETH",
			Data: &api.SignableTokenData{Decimals: 18},
		},
		Amount: "1000000000000000000",
	}).Return(signable, nil)
	s.mockClient.EXPECT().CreateWithdrawal(
		gomock.Any(),
		s.pair.Eth.GetAddress().Hex(),
		gomock.Any(),
		&api.CreateWithdrawalRequest{
			StarkKey:       "0x1234",
			Amount:         "1000000000000000000",
			AssetID:        "994",
			VaultID:        1502,
			Nonce:          719,
			StarkSignature: "stark-signature-over-0xcafe",
		},
	).Return(&api.CreateWithdrawalResponse{
		WithdrawalID: 11,
		Status:       "success",
	}, nil)

	resp, err := s.workflows.PrepareWithdrawal(context.Background(), s.pair, tokens.ETH{}, "1000000000000000000")

	s.Nil(err)
	s.Equal(resp.WithdrawalID, int64(11))
}

func (s *WithdrawalTestSuite) Test_ResolveWithdrawalBalance() {
	s.expectEthAsset()
	s.expectBalances(50, 70)

	balances, err := s.workflows.ResolveWithdrawalBalance(context.Background(), "0x1234", s.pair.Eth.GetAddress(), tokens.ETH{})

	s.Nil(err)
	s.Equal(balances.V3, big.NewInt(50))
	s.Equal(balances.V4, big.NewInt(70))
}
