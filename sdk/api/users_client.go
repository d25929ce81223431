package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/assetgrid/assetgrid/sdk/internal/apimachinery"
	"github.com/assetgrid/assetgrid/sdk/meta"
)

// UsersSelector represents useful filter criteria when selecting multiple
// Users for API group operations like list. It currently has no fields, but
// exists for future expansion.
type UsersSelector struct{}

// UsersClient is the specialized client for managing Users with the
// AssetGrid API.
type UsersClient interface {
	// List returns a UserList.
	List(context.Context, UsersSelector, meta.ListOptions) (sdk.UserList, error)
	// Get retrieves a single User specified by their identifier.
	Get(context.Context, string) (sdk.User, error)
	// Lock removes access to the API for a single User specified by their
	// identifier.
	Lock(context.Context, string) error
	// Unlock restores access to the API for a single User specified by their
	// identifier.
	Unlock(context.Context, string) error
}

type usersClient struct {
	*apimachinery.BaseClient
}

// NewUsersClient returns a specialized client for managing Users.
func NewUsersClient(apiAddress string, httpClient *http.Client) UsersClient {
	return &usersClient{
		BaseClient: &apimachinery.BaseClient{
			APIAddress: apiAddress,
			HTTPClient: httpClient,
		},
	}
}

func (u *usersClient) List(
	_ context.Context,
	_ UsersSelector,
	opts meta.ListOptions,
) (sdk.UserList, error) {
	users := sdk.UserList{}
	return users, u.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "users",
			QueryParams: appendListQueryParams(nil, opts),
			SuccessCode: http.StatusOK,
			RespObj:     &users,
		},
	)
}

func (u *usersClient) Get(_ context.Context, id string) (sdk.User, error) {
	user := sdk.User{}
	return user, u.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("users/%s", id),
			SuccessCode: http.StatusOK,
			RespObj:     &user,
		},
	)
}

func (u *usersClient) Lock(_ context.Context, id string) error {
	return u.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodPut,
			Path:        fmt.Sprintf("users/%s/lock", id),
			SuccessCode: http.StatusOK,
		},
	)
}

func (u *usersClient) Unlock(_ context.Context, id string) error {
	return u.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodDelete,
			Path:        fmt.Sprintf("users/%s/lock", id),
			SuccessCode: http.StatusOK,
		},
	)
}
