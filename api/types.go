package api

// SignableToken is the canonical token shape every signable endpoint
// accepts. Data fields are populated per token type: ETH carries decimals,
// ERC20 carries decimals and the token address, ERC721 carries the token id
// and address.
type SignableToken struct {
	Type string             `json:"type"`
	Data *SignableTokenData `json:"data,omitempty"`
}

type SignableTokenData struct {
	Decimals     int    `json:"decimals,omitempty"`
	TokenAddress string `json:"token_address,omitempty"`
	TokenID      string `json:"token_id,omitempty"`
}

// FeeEntry is an optional maker/taker fee attached to orders and trades.
type FeeEntry struct {
	Address    string  `json:"address,omitempty"`
	FeePercent float64 `json:"fee_percentage,omitempty"`
}
