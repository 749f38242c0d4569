package provider

import (
	"fmt"
)

// ErrorKind distinguishes failures during wallet pairing from failures on
// an already established session.
type ErrorKind string

const (
	WalletConnectionError   ErrorKind = "WALLET_CONNECTION_ERROR"
	ProviderConnectionError ErrorKind = "PROVIDER_CONNECTION_ERROR"
)

// ProviderError wraps a lower level failure caught at the facade boundary,
// preserving the original message.
type ProviderError struct {
	Kind ErrorKind
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func newWalletConnectionError(err error) *ProviderError {
	return &ProviderError{
		Kind: WalletConnectionError,
		Err:  err,
	}
}

func newProviderConnectionError(err error) *ProviderError {
	return &ProviderError{
		Kind: ProviderConnectionError,
		Err:  err,
	}
}
