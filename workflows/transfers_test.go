package workflows_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/immutablex/imx-link/api"
	"github.com/immutablex/imx-link/config"
	"github.com/immutablex/imx-link/signers"
	"github.com/immutablex/imx-link/tokens"
	"github.com/immutablex/imx-link/workflows"
	mock_workflows "github.com/immutablex/imx-link/workflows/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TransfersTestSuite struct {
	suite.Suite

	mockClient         *mock_workflows.MockAPIClient
	mockCore           *mock_workflows.MockCoreContract
	mockRegistration   *mock_workflows.MockRegistrationContract
	mockRegistrationV4 *mock_workflows.MockRegistrationContract
	mockFactory        *mock_workflows.MockContractFactory

	pair      signers.Pair
	workflows *workflows.Workflows
}

func TestRunTransfersTestSuite(t *testing.T) {
	suite.Run(t, new(TransfersTestSuite))
}

func (s *TransfersTestSuite) SetupTest() {
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
	s.workflows = workflows.NewWorkflows(cfg, s.mockClient, s.mockCore, s.mockRegistration, s.mockRegistrationV4, s.mockFactory)
}

func (s *TransfersTestSuite) Test_Transfer_EchoesSignableFields() {
	signable := &api.GetSignableTransferV1Response{
		SignableMessage:     "Sign this transfer",
		PayloadHash:         "0xcafe",
		SenderStarkKey:      "0x1234",
		SenderVaultID:       1502,
		ReceiverStarkKey:    "0x5678",
		ReceiverVaultID:     1503,
		AssetID:             "994",
		Amount:              "1000000000000000000",
		Nonce:               719,
		ExpirationTimestamp: 1800000,
	}
	s.mockClient.EXPECT().GetSignableTransferV1(gomock.Any(), &api.GetSignableTransferV1Request{
		Sender: s.pair.Eth.GetAddress().Hex(),
		Token: api.SignableToken{
			Type: "ETH",
			Data: &api.SignableTokenData{Decimals: 18},
		},
		Amount:   "1000000000000000000",
		Receiver: "0xreceiver",
	}).Return(signable, nil)
	s.mockClient.EXPECT().CreateTransferV1(
		gomock.Any(),
		s.pair.Eth.GetAddress().Hex(),
		gomock.Any(),
		&api.CreateTransferV1Request{
			SenderStarkKey:      "0x1234",
			SenderVaultID:       1502,
			ReceiverStarkKey:    "0x5678",
			ReceiverVaultID:     1503,
			AssetID:             "994",
			Amount:              "1000000000000000000",
			Nonce:               719,
			ExpirationTimestamp: 1800000,
			StarkSignature:      "stark-signature-over-0xcafe",
		},
	).Return(&api.CreateTransferV1Response{TransferID: 33, Status: "success"}, nil)

	resp, err := s.workflows.Transfer(context.Background(), s.pair, &workflows.TransferParams{
		Token:    tokens.ETH{},
		Amount:   "1000000000000000000",
		Receiver: "0xreceiver",
	})

	s.Nil(err)
	s.Equal(resp.TransferID, int64(33))
}

func (s *TransfersTestSuite) Test_BatchTransfer_SignsEachItemOnL2() {
	signable := &api.GetSignableTransferResponse{
		SenderStarkKey:  "0x1234",
		SignableMessage: "Sign this batch",
		SignableResponses: []api.SignableTransferResponseDetails{
			{
				PayloadHash:         "0xaaaa",
				SenderVaultID:       1502,
				ReceiverStarkKey:    "0x5678",
				ReceiverVaultID:     1503,
				AssetID:             "994",
				Amount:              "100",
				Nonce:               719,
				ExpirationTimestamp: 1800000,
			},
			{
				PayloadHash:         "0xbbbb",
				SenderVaultID:       1502,
				ReceiverStarkKey:    "0x9abc",
				ReceiverVaultID:     1504,
				AssetID:             "994",
				Amount:              "200",
				Nonce:               720,
				ExpirationTimestamp: 1800000,
			},
		},
	}
	s.mockClient.EXPECT().GetSignableTransfer(gomock.Any(), gomock.Any()).Return(signable, nil)
	s.mockClient.EXPECT().CreateTransfer(
		gomock.Any(),
		s.pair.Eth.GetAddress().Hex(),
		gomock.Any(),
		&api.CreateTransferRequest{
			SenderStarkKey: "0x1234",
			Requests: []api.TransferRequest{
				{
					SenderVaultID:       1502,
					ReceiverStarkKey:    "0x5678",
					ReceiverVaultID:     1503,
					AssetID:             "994",
					Amount:              "100",
					Nonce:               719,
					ExpirationTimestamp: 1800000,
					StarkSignature:      "stark-signature-over-0xaaaa",
				},
				{
					SenderVaultID:       1502,
					ReceiverStarkKey:    "0x9abc",
					ReceiverVaultID:     1504,
					AssetID:             "994",
					Amount:              "200",
					Nonce:               720,
					ExpirationTimestamp: 1800000,
					StarkSignature:      "stark-signature-over-0xbbbb",
				},
			},
		},
	).Return(&api.CreateTransferResponse{TransferIDs: []int64{33, 34}}, nil)

	resp, err := s.workflows.BatchTransfer(context.Background(), s.pair, []workflows.TransferParams{
		{Token: tokens.ETH{}, Amount: "100", Receiver: "0xreceiver1"},
		{Token: tokens.ETH{}, Amount: "200", Receiver: "0xreceiver2"},
	})

	s.Nil(err)
	s.Equal(resp.TransferIDs, []int64{33, 34})
}

func (s *TransfersTestSuite) Test_ExchangeTransfer() {
	signable := &api.GetSignableTransferV1Response{
		SignableMessage: "Sign this transfer",
		PayloadHash:     "0xcafe",
		SenderStarkKey:  "0x1234",
		AssetID:         "994",
		Amount:          "100",
	}
	s.mockClient.EXPECT().GetExchangeSignableTransfer(gomock.Any(), "ex-77", gomock.Any()).Return(signable, nil)
	s.mockClient.EXPECT().CreateExchangeTransfer(
		gomock.Any(),
		"ex-77",
		s.pair.Eth.GetAddress().Hex(),
		gomock.Any(),
		gomock.Any(),
	).Return(&api.CreateTransferV1Response{TransferID: 35, Status: "success"}, nil)

	resp, err := s.workflows.ExchangeTransfer(context.Background(), s.pair, "ex-77", &workflows.TransferParams{
		Token:    tokens.ETH{},
		Amount:   "100",
		Receiver: "0xreceiver",
	})

	s.Nil(err)
	s.Equal(resp.TransferID, int64(35))
}
