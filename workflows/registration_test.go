package workflows_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/immutablex/imx-link/api"
	"github.com/immutablex/imx-link/config"
	"github.com/immutablex/imx-link/signers"
	"github.com/immutablex/imx-link/workflows"
	mock_workflows "github.com/immutablex/imx-link/workflows/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testEthKey = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

// starkSignerStub signs deterministically so tests can assert on the exact
// signature the workflows submit.
type starkSignerStub struct {
	address string
}

func (s *starkSignerStub) GetAddress() string {
	return s.address
}

func (s *starkSignerStub) SignMessage(_ context.Context, payloadHash string) (string, error) {
	return "stark-signature-over-" + payloadHash, nil
}

type RegistrationTestSuite struct {
	suite.Suite

	mockClient         *mock_workflows.MockAPIClient
	mockCore           *mock_workflows.MockCoreContract
	mockRegistration   *mock_workflows.MockRegistrationContract
	mockRegistrationV4 *mock_workflows.MockRegistrationContract
	mockFactory        *mock_workflows.MockContractFactory

	pair      signers.Pair
	workflows *workflows.Workflows
}

func TestRunRegistrationTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationTestSuite))
}

func (s *RegistrationTestSuite) SetupTest() {
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

func (s *RegistrationTestSuite) Test_IsRegisteredOffchain_RegisteredUser() {
	s.mockClient.EXPECT().GetUsers(gomock.Any(), s.pair.Eth.GetAddress().Hex()).Return(&api.GetUsersResponse{
		Accounts: []string{"0x1234"},
	}, nil)

	registered, err := s.workflows.IsRegisteredOffchain(context.Background(), s.pair.Eth.GetAddress())

	s.Nil(err)
	s.Equal(registered, true)
}

func (s *RegistrationTestSuite) Test_IsRegisteredOffchain_NotFound() {
	s.mockClient.EXPECT().GetUsers(gomock.Any(), gomock.Any()).Return(nil, &api.APIError{
		StatusCode: 404,
	})

	registered, err := s.workflows.IsRegisteredOffchain(context.Background(), s.pair.Eth.GetAddress())

	s.Nil(err)
	s.Equal(registered, false)
}

func (s *RegistrationTestSuite) Test_IsRegisteredOffchain_UpstreamError() {
	s.mockClient.EXPECT().GetUsers(gomock.Any(), gomock.Any()).Return(nil, &api.APIError{
		StatusCode: 500,
	})

	_, err := s.workflows.IsRegisteredOffchain(context.Background(), s.pair.Eth.GetAddress())

	s.NotNil(err)
}

func (s *RegistrationTestSuite) Test_RegisterOffchain_ChainMismatch() {
	wrongChainSigner, err := signers.NewLocalEthSigner(testEthKey, big.NewInt(5))
	s.Require().NoError(err)
	pair := signers.Pair{Eth: wrongChainSigner, Stark: s.pair.Stark}

	_, err = s.workflows.RegisterOffchain(context.Background(), pair)

	s.NotNil(err)
}

func (s *RegistrationTestSuite) Test_RegisterOffchain_SubmitsBothSignatures() {
	etherKey := s.pair.Eth.GetAddress().Hex()
	signableMessage := "Sign this message to register"
	payloadHash := "0xdeadbeef"
	s.mockClient.EXPECT().GetSignableRegistrationOffchain(gomock.Any(), &api.GetSignableRegistrationRequest{
		EtherKey: etherKey,
		StarkKey: "0x1234",
	}).Return(&api.GetSignableRegistrationOffchainResponse{
		SignableMessage: signableMessage,
		PayloadHash:     payloadHash,
	}, nil)

	expectedEthSig, err := s.pair.Eth.SignMessage(context.Background(), []byte(signableMessage))
	s.Require().NoError(err)

	s.mockClient.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *api.RegisterUserRequest) (*api.RegisterUserResponse, error) {
			s.Equal(req.EtherKey, etherKey)
			s.Equal(req.StarkKey, "0x1234")
			s.Equal(req.EthSignature, hexutil.Encode(expectedEthSig))
			s.Equal(req.StarkSignature, "stark-signature-over-"+payloadHash)
			return &api.RegisterUserResponse{TxHash: "0xhash"}, nil
		})

	resp, err := s.workflows.RegisterOffchain(context.Background(), s.pair)

	s.Nil(err)
	s.Equal(resp.TxHash, "0xhash")
}

func (s *RegistrationTestSuite) Test_IsRegisteredOnchain_CurrentGeneration() {
	s.mockRegistrationV4.EXPECT().IsRegistered(big.NewInt(0x1234)).Return(true, nil)

	registered, err := s.workflows.IsRegisteredOnchain(context.Background(), s.pair.Eth, "0x1234")

	s.Nil(err)
	s.Equal(registered, true)
}

func (s *RegistrationTestSuite) Test_IsRegisteredOnchain_LegacyFallback() {
	s.mockRegistrationV4.EXPECT().IsRegistered(big.NewInt(0x1234)).Return(false, nil)
	s.mockRegistration.EXPECT().IsRegistered(big.NewInt(0x1234)).Return(true, nil)

	registered, err := s.workflows.IsRegisteredOnchain(context.Background(), s.pair.Eth, "0x1234")

	s.Nil(err)
	s.Equal(registered, true)
}

func (s *RegistrationTestSuite) Test_IsRegisteredOnchain_Unregistered() {
	s.mockRegistrationV4.EXPECT().IsRegistered(big.NewInt(0x1234)).Return(false, nil)
	s.mockRegistration.EXPECT().IsRegistered(big.NewInt(0x1234)).Return(false, nil)

	registered, err := s.workflows.IsRegisteredOnchain(context.Background(), s.pair.Eth, "0x1234")

	s.Nil(err)
	s.Equal(registered, false)
}

func (s *RegistrationTestSuite) Test_IsRegisteredOnchain_ContractError() {
	s.mockRegistrationV4.EXPECT().IsRegistered(gomock.Any()).Return(false, errors.New("execution reverted"))

	_, err := s.workflows.IsRegisteredOnchain(context.Background(), s.pair.Eth, "0x1234")

	s.NotNil(err)
}
