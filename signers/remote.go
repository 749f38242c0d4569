package signers

import (
	"context"
	"fmt"

	"github.com/immutablex/imx-link/comm"
)

// RemoteStarkSigner is a Stark signer bound to the channel it was connected
// on. The key never crosses the channel; only payload hashes and signatures
// do.
type RemoteStarkSigner struct {
	channel   comm.Channel
	publicKey string
}

func NewRemoteStarkSigner(channel comm.Channel, publicKey string) *RemoteStarkSigner {
	return &RemoteStarkSigner{
		channel:   channel,
		publicKey: publicKey,
	}
}

func (s *RemoteStarkSigner) GetAddress() string {
	return s.publicKey
}

func (s *RemoteStarkSigner) SignMessage(ctx context.Context, payloadHash string) (string, error) {
	req, err := comm.NewRequest("", comm.SignMessageRequest, comm.SignMessageDetails{
		Message: payloadHash,
	})
	if err != nil {
		return "", err
	}

	resp, err := s.channel.Request(ctx, req)
	if err != nil {
		return "", err
	}

	var data comm.SignMessageData
	if err := comm.DecodeData(resp, &data); err != nil {
		return "", fmt.Errorf("sign message request rejected: %w", err)
	}

	return data.Signature, nil
}
