package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/assetgrid/assetgrid/sdk/internal/apimachinery"
	"github.com/assetgrid/assetgrid/sdk/meta"
)

// CategoriesSelector represents useful filter criteria when selecting
// multiple Categories for API group operations like list. It currently has
// no fields, but exists for future expansion.
type CategoriesSelector struct{}

// CategoriesClient is the specialized client for managing Categories with
// the AssetGrid API.
type CategoriesClient interface {
	// Create creates a new Category.
	Create(context.Context, sdk.Category) (sdk.Category, error)
	// List returns a CategoryList.
	List(
		context.Context,
		CategoriesSelector,
		meta.ListOptions,
	) (sdk.CategoryList, error)
	// Get retrieves a single Category specified by its identifier.
	Get(context.Context, string) (sdk.Category, error)
	// Update updates an existing Category.
	Update(context.Context, sdk.Category) (sdk.Category, error)
	// Delete deletes a single Category specified by its identifier.
	Delete(context.Context, string) error
}

type categoriesClient struct {
	*apimachinery.BaseClient
}

// NewCategoriesClient returns a specialized client for managing Categories.
func NewCategoriesClient(
	apiAddress string,
	httpClient *http.Client,
) CategoriesClient {
	return &categoriesClient{
		BaseClient: &apimachinery.BaseClient{
			APIAddress: apiAddress,
			HTTPClient: httpClient,
		},
	}
}

func (c *categoriesClient) Create(
	_ context.Context,
	category sdk.Category,
) (sdk.Category, error) {
	created := sdk.Category{}
	return created, c.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "categories",
			ReqBodyObj:  category,
			SuccessCode: http.StatusCreated,
			RespObj:     &created,
		},
	)
}

func (c *categoriesClient) List(
	_ context.Context,
	_ CategoriesSelector,
	opts meta.ListOptions,
) (sdk.CategoryList, error) {
	categories := sdk.CategoryList{}
	return categories, c.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "categories",
			QueryParams: appendListQueryParams(nil, opts),
			SuccessCode: http.StatusOK,
			RespObj:     &categories,
		},
	)
}

func (c *categoriesClient) Get(
	_ context.Context,
	id string,
) (sdk.Category, error) {
	category := sdk.Category{}
	return category, c.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("categories/%s", id),
			SuccessCode: http.StatusOK,
			RespObj:     &category,
		},
	)
}

func (c *categoriesClient) Update(
	_ context.Context,
	category sdk.Category,
) (sdk.Category, error) {
	updated := sdk.Category{}
	return updated, c.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodPut,
			Path:        fmt.Sprintf("categories/%s", category.ID),
			ReqBodyObj:  category,
			SuccessCode: http.StatusOK,
			RespObj:     &updated,
		},
	)
}

func (c *categoriesClient) Delete(_ context.Context, id string) error {
	return c.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodDelete,
			Path:        fmt.Sprintf("categories/%s", id),
			SuccessCode: http.StatusOK,
		},
	)
}
