package comm

import (
	"context"
	"encoding/json"
	"fmt"
)

// ConnectConsentMessage is the byte string signed by the L1 account when
// pairing with the signing wallet. The wording is stable across versions so
// users always see the identical prompt in their wallet.
const ConnectConsentMessage = "Only sign this request if you’ve initiated an action with Immutable X."

// RequestType represents request message type identificator
type RequestType int64

const (
	// ConnectWalletRequest message type used to establish a wallet pairing.
	ConnectWalletRequest RequestType = iota
	// SignMessageRequest message type used to request a Stark signature over a payload hash.
	SignMessageRequest
	// GetYCoordinateRequest message type used to fetch the full Stark public key point.
	GetYCoordinateRequest
	// DisconnectWalletRequest message type used to tear down an existing pairing.
	DisconnectWalletRequest
)

// ResponseType represents response message type identificator
type ResponseType int64

const (
	ConnectWalletResponse ResponseType = iota
	SignMessageResponse
	GetYCoordinateResponse
	DisconnectWalletResponse
)

// String implements fmt.Stringer
func (t RequestType) String() string {
	switch t {
	case ConnectWalletRequest:
		return "ConnectWalletRequest"
	case SignMessageRequest:
		return "SignMessageRequest"
	case GetYCoordinateRequest:
		return "GetYCoordinateRequest"
	case DisconnectWalletRequest:
		return "DisconnectWalletRequest"
	default:
		return "UnknownRequest"
	}
}

// String implements fmt.Stringer
func (t ResponseType) String() string {
	switch t {
	case ConnectWalletResponse:
		return "ConnectWalletResponse"
	case SignMessageResponse:
		return "SignMessageResponse"
	case GetYCoordinateResponse:
		return "GetYCoordinateResponse"
	case DisconnectWalletResponse:
		return "DisconnectWalletResponse"
	default:
		return "UnknownResponse"
	}
}

// Response returns the response type paired with the request type.
func (t RequestType) Response() ResponseType {
	return ResponseType(t)
}

// Request is the envelope posted to the signing wallet. RequestID is
// generated per call and echoed back by the wallet, so concurrent requests
// of the same type cannot cross-resolve each other.
type Request struct {
	RequestID string          `json:"requestId"`
	Type      RequestType     `json:"type"`
	Details   json.RawMessage `json:"details,omitempty"`
}

// Response is the envelope the wallet sends back. A response with
// Success set to false carries the far end's error message.
type Response struct {
	RequestID string          `json:"requestId"`
	Type      ResponseType    `json:"type"`
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// Channel is a duplex request/response link to the signing wallet. A
// request blocks until the matching response arrives or ctx is done; no
// retries are attempted on either side.
type Channel interface {
	Request(ctx context.Context, req *Request) (*Response, error)
	Close() error
}

// Handler is implemented by the wallet side of a channel.
type Handler interface {
	Handle(ctx context.Context, req *Request) *Response
}

type ConnectDetails struct {
	EthAddress string `json:"ethAddress"`
	Signature  string `json:"signature"`
}

type ConnectData struct {
	StarkPublicKey string `json:"starkPublicKey"`
}

type SignMessageDetails struct {
	Message string `json:"message"`
}

type SignMessageData struct {
	Signature string `json:"signature"`
}

type YCoordinateData struct {
	YCoordinate string `json:"yCoordinate"`
}

// NewRequest builds a request envelope with a json encoded details payload.
func NewRequest(id string, reqType RequestType, details interface{}) (*Request, error) {
	var raw json.RawMessage
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			return nil, err
		}
		raw = b
	}

	return &Request{
		RequestID: id,
		Type:      reqType,
		Details:   raw,
	}, nil
}

// DecodeData unmarshals a successful response payload into out. A response
// carrying Success false is surfaced as an error with the far end's message.
func DecodeData(resp *Response, out interface{}) error {
	if !resp.Success {
		return fmt.Errorf("%s", resp.Error)
	}
	if out == nil {
		return nil
	}

	return json.Unmarshal(resp.Data, out)
}
