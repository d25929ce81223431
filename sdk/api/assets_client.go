package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/assetgrid/assetgrid/sdk/internal/apimachinery"
	"github.com/assetgrid/assetgrid/sdk/meta"
)

// AssetsSelector represents useful filter criteria when selecting multiple
// Assets for API group operations like list.
type AssetsSelector struct {
	// CategoryID, when non-empty, limits results to Assets in the given
	// Category.
	CategoryID string
	// Status, when non-empty, limits results to Assets in the given
	// lifecycle status.
	Status sdk.AssetStatus
}

// AssetsClient is the specialized client for managing Assets with the
// AssetGrid API.
type AssetsClient interface {
	// Create creates a new Asset.
	Create(context.Context, sdk.Asset) (sdk.Asset, error)
	// List returns an AssetList.
	List(context.Context, AssetsSelector, meta.ListOptions) (sdk.AssetList, error)
	// Get retrieves a single Asset specified by its identifier.
	Get(context.Context, string) (sdk.Asset, error)
	// Update updates an existing Asset.
	Update(context.Context, sdk.Asset) (sdk.Asset, error)
	// Delete deletes a single Asset specified by its identifier.
	Delete(context.Context, string) error
}

type assetsClient struct {
	*apimachinery.BaseClient
}

// NewAssetsClient returns a specialized client for managing Assets.
func NewAssetsClient(apiAddress string, httpClient *http.Client) AssetsClient {
	return &assetsClient{
		BaseClient: &apimachinery.BaseClient{
			APIAddress: apiAddress,
			HTTPClient: httpClient,
		},
	}
}

func (a *assetsClient) Create(
	_ context.Context,
	asset sdk.Asset,
) (sdk.Asset, error) {
	created := sdk.Asset{}
	return created, a.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "assets",
			ReqBodyObj:  asset,
			SuccessCode: http.StatusCreated,
			RespObj:     &created,
		},
	)
}

func (a *assetsClient) List(
	_ context.Context,
	selector AssetsSelector,
	opts meta.ListOptions,
) (sdk.AssetList, error) {
	assets := sdk.AssetList{}
	queryParams := map[string]string{}
	if selector.CategoryID != "" {
		queryParams["categoryId"] = selector.CategoryID
	}
	if selector.Status != "" {
		queryParams["status"] = string(selector.Status)
	}
	return assets, a.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "assets",
			QueryParams: appendListQueryParams(queryParams, opts),
			SuccessCode: http.StatusOK,
			RespObj:     &assets,
		},
	)
}

func (a *assetsClient) Get(_ context.Context, id string) (sdk.Asset, error) {
	asset := sdk.Asset{}
	return asset, a.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("assets/%s", id),
			SuccessCode: http.StatusOK,
			RespObj:     &asset,
		},
	)
}

func (a *assetsClient) Update(
	_ context.Context,
	asset sdk.Asset,
) (sdk.Asset, error) {
	updated := sdk.Asset{}
	return updated, a.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodPut,
			Path:        fmt.Sprintf("assets/%s", asset.ID),
			ReqBodyObj:  asset,
			SuccessCode: http.StatusOK,
			RespObj:     &updated,
		},
	)
}

func (a *assetsClient) Delete(_ context.Context, id string) error {
	return a.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodDelete,
			Path:        fmt.Sprintf("assets/%s", id),
			SuccessCode: http.StatusOK,
		},
	)
}
