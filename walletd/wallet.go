package walletd

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/immutablex/imx-link/comm"
	"github.com/immutablex/imx-link/signers"
	"github.com/rs/zerolog/log"
)

var errInvalidSignature = errors.New("invalid consent signature length")

// Wallet is the far end of the signing channel. It owns the Stark key and
// answers the four channel request types. A wallet refuses to sign until an
// L1 account has proven intent by signing the connect consent message.
type Wallet struct {
	signer *signers.LocalStarkSigner

	connLocker *sync.Mutex
	connected  map[common.Address]struct{}
}

func NewWallet(starkPrivateKey string) (*Wallet, error) {
	signer, err := signers.NewLocalStarkSigner(starkPrivateKey)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		signer:     signer,
		connLocker: &sync.Mutex{},
		connected:  make(map[common.Address]struct{}),
	}, nil
}

func (w *Wallet) Handle(ctx context.Context, req *comm.Request) *comm.Response {
	log.Debug().Msgf("Handling %s request %s", req.Type, req.RequestID)

	switch req.Type {
	case comm.ConnectWalletRequest:
		return w.connect(req)
	case comm.SignMessageRequest:
		return w.sign(ctx, req)
	case comm.GetYCoordinateRequest:
		return w.yCoordinate(req)
	case comm.DisconnectWalletRequest:
		return w.disconnect(req)
	default:
		return failure(req, "unknown request type")
	}
}

func (w *Wallet) connect(req *comm.Request) *comm.Response {
	var details comm.ConnectDetails
	if err := json.Unmarshal(req.Details, &details); err != nil {
		return failure(req, "invalid connect details")
	}

	signer, err := recoverConsentSigner(details.Signature)
	if err != nil {
		return failure(req, err.Error())
	}
	if signer != common.HexToAddress(details.EthAddress) {
		return failure(req, "consent signature does not match address")
	}

	w.connLocker.Lock()
	w.connected[signer] = struct{}{}
	w.connLocker.Unlock()

	return success(req, comm.ConnectData{
		StarkPublicKey: w.signer.GetAddress(),
	})
}

func (w *Wallet) sign(ctx context.Context, req *comm.Request) *comm.Response {
	if !w.isConnected() {
		return failure(req, "wallet not connected")
	}

	var details comm.SignMessageDetails
	if err := json.Unmarshal(req.Details, &details); err != nil {
		return failure(req, "invalid sign details")
	}

	signature, err := w.signer.SignMessage(ctx, details.Message)
	if err != nil {
		return failure(req, err.Error())
	}

	return success(req, comm.SignMessageData{
		Signature: signature,
	})
}

func (w *Wallet) yCoordinate(req *comm.Request) *comm.Response {
	return success(req, comm.YCoordinateData{
		YCoordinate: w.signer.YCoordinate(),
	})
}

func (w *Wallet) disconnect(req *comm.Request) *comm.Response {
	w.connLocker.Lock()
	w.connected = make(map[common.Address]struct{})
	w.connLocker.Unlock()

	return success(req, nil)
}

func (w *Wallet) isConnected() bool {
	w.connLocker.Lock()
	defer w.connLocker.Unlock()

	return len(w.connected) > 0
}

func recoverConsentSigner(signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, err
	}
	if len(sig) != 65 {
		return common.Address{}, errInvalidSignature
	}
	if sig[64] >= 27 {
		sig = append([]byte{}, sig...)
		sig[64] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(comm.ConnectConsentMessage)), sig)
	if err != nil {
		return common.Address{}, err
	}

	return crypto.PubkeyToAddress(*pub), nil
}

func success(req *comm.Request, data interface{}) *comm.Response {
	resp := &comm.Response{
		RequestID: req.RequestID,
		Type:      req.Type.Response(),
		Success:   true,
	}
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return failure(req, err.Error())
		}
		resp.Data = b
	}

	return resp
}

func failure(req *comm.Request, msg string) *comm.Response {
	return &comm.Response{
		RequestID: req.RequestID,
		Type:      req.Type.Response(),
		Success:   false,
		Error:     msg,
	}
}
