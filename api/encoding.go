package api

import (
	"context"
	"fmt"
)

const (
	AssetTypeAsset         = "asset"
	AssetTypeMintableAsset = "mintable-asset"
)

type EncodeAssetTokenData struct {
	TokenAddress string `json:"token_address,omitempty"`
	TokenID      string `json:"token_id,omitempty"`
	// mintable assets are keyed by their client id and blueprint instead
	// of an L1 token id
	ID        string `json:"id,omitempty"`
	Blueprint string `json:"blueprint,omitempty"`
}

type EncodeAssetToken struct {
	Type string                `json:"type,omitempty"`
	Data *EncodeAssetTokenData `json:"data,omitempty"`
}

type EncodeAssetRequest struct {
	Token EncodeAssetToken `json:"token"`
}

type EncodeAssetResponse struct {
	AssetID   string `json:"asset_id"`
	AssetType string `json:"asset_type"`
}

// EncodeAsset translates a token description into the network's canonical
// asset type and asset id. A single round-trip with no caching; workflows
// always encode fresh.
func (c *Client) EncodeAsset(ctx context.Context, assetType string, req *EncodeAssetRequest) (*EncodeAssetResponse, error) {
	resp := new(EncodeAssetResponse)
	err := c.post(ctx, fmt.Sprintf("/v1/encode/%s", assetType), req, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
