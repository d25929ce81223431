package api

import (
	"context"
	"net/http"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/assetgrid/assetgrid/sdk/internal/apimachinery"
)

// SessionsClient is the specialized client for the AssetGrid auth endpoints.
// It satisfies the session package's Endpoints interface, so a
// session.Manager can drive its lifecycle through this client.
type SessionsClient interface {
	// Login exchanges credentials for tokens.
	Login(ctx context.Context, username, password string) (sdk.AuthResponse, error)
	// Refresh exchanges a refresh token for fresh tokens.
	Refresh(ctx context.Context, refreshToken string) (sdk.AuthResponse, error)
	// Logout invalidates a refresh token server-side.
	Logout(ctx context.Context, refreshToken string) error
}

type sessionsClient struct {
	*apimachinery.BaseClient
}

// NewSessionsClient returns a specialized client for the auth endpoints.
func NewSessionsClient(
	apiAddress string,
	httpClient *http.Client,
) SessionsClient {
	return &sessionsClient{
		BaseClient: &apimachinery.BaseClient{
			APIAddress: apiAddress,
			HTTPClient: httpClient,
		},
	}
}

func (s *sessionsClient) Login(
	_ context.Context,
	username string,
	password string,
) (sdk.AuthResponse, error) {
	resp := sdk.AuthResponse{}
	return resp, s.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method: http.MethodPost,
			Path:   "auth/login",
			ReqBodyObj: sdk.LoginRequest{
				Username: username,
				Password: password,
			},
			SuccessCode: http.StatusOK,
			RespObj:     &resp,
		},
	)
}

func (s *sessionsClient) Refresh(
	_ context.Context,
	refreshToken string,
) (sdk.AuthResponse, error) {
	resp := sdk.AuthResponse{}
	return resp, s.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "auth/refresh",
			ReqBodyObj:  sdk.RefreshRequest{RefreshToken: refreshToken},
			SuccessCode: http.StatusOK,
			RespObj:     &resp,
		},
	)
}

func (s *sessionsClient) Logout(
	_ context.Context,
	refreshToken string,
) error {
	return s.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "auth/logout",
			ReqBodyObj:  sdk.RefreshRequest{RefreshToken: refreshToken},
			SuccessCode: http.StatusOK,
		},
	)
}
