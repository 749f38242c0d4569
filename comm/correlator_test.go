package comm_test

import (
	"testing"

	"github.com/immutablex/imx-link/comm"
	"github.com/stretchr/testify/suite"
)

type CorrelatorTestSuite struct {
	suite.Suite

	correlator *comm.Correlator
}

func TestRunCorrelatorTestSuite(t *testing.T) {
	suite.Run(t, new(CorrelatorTestSuite))
}

func (s *CorrelatorTestSuite) SetupTest() {
	s.correlator = comm.NewCorrelator()
}

func (s *CorrelatorTestSuite) Test_Deliver_MatchingResponse() {
	respChn := s.correlator.Register("req-1", comm.SignMessageResponse)

	delivered := s.correlator.Deliver(&comm.Response{
		RequestID: "req-1",
		Type:      comm.SignMessageResponse,
		Success:   true,
	})

	s.True(delivered)
	resp := <-respChn
	s.True(resp.Success)
}

func (s *CorrelatorTestSuite) Test_Deliver_UnknownRequestID() {
	respChn := s.correlator.Register("req-1", comm.SignMessageResponse)

	delivered := s.correlator.Deliver(&comm.Response{
		RequestID: "req-2",
		Type:      comm.SignMessageResponse,
	})

	s.False(delivered)
	// pending request stays untouched
	s.Len(respChn, 0)
}

func (s *CorrelatorTestSuite) Test_Deliver_MismatchedType() {
	respChn := s.correlator.Register("req-1", comm.SignMessageResponse)

	delivered := s.correlator.Deliver(&comm.Response{
		RequestID: "req-1",
		Type:      comm.ConnectWalletResponse,
	})

	s.False(delivered)
	s.Len(respChn, 0)

	// the matching response still resolves afterwards
	delivered = s.correlator.Deliver(&comm.Response{
		RequestID: "req-1",
		Type:      comm.SignMessageResponse,
		Success:   true,
	})
	s.True(delivered)
	s.Len(respChn, 1)
}

func (s *CorrelatorTestSuite) Test_Deliver_ConcurrentSameTypeRequests() {
	firstChn := s.correlator.Register("req-1", comm.SignMessageResponse)
	secondChn := s.correlator.Register("req-2", comm.SignMessageResponse)

	s.True(s.correlator.Deliver(&comm.Response{
		RequestID: "req-2",
		Type:      comm.SignMessageResponse,
		Success:   true,
	}))

	s.Len(firstChn, 0)
	s.Len(secondChn, 1)
}

func (s *CorrelatorTestSuite) Test_Deliver_ConsumedExactlyOnce() {
	s.correlator.Register("req-1", comm.SignMessageResponse)

	resp := &comm.Response{
		RequestID: "req-1",
		Type:      comm.SignMessageResponse,
		Success:   true,
	}
	s.True(s.correlator.Deliver(resp))
	s.False(s.correlator.Deliver(resp))
}

func (s *CorrelatorTestSuite) Test_Deregister_RemovesPendingEntry() {
	s.correlator.Register("req-1", comm.SignMessageResponse)
	s.correlator.Deregister("req-1")

	s.False(s.correlator.Deliver(&comm.Response{
		RequestID: "req-1",
		Type:      comm.SignMessageResponse,
	}))
}
