package api

import (
	"context"
	"net/http"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/assetgrid/assetgrid/sdk/internal/apimachinery"
)

// PrivacyClient is the specialized client for managing the signed-in user's
// privacy choices with the AssetGrid API.
type PrivacyClient interface {
	// GetConsent retrieves the user's ConsentSettings.
	GetConsent(context.Context) (sdk.ConsentSettings, error)
	// UpdateConsent replaces the user's ConsentSettings.
	UpdateConsent(
		context.Context,
		sdk.ConsentSettings,
	) (sdk.ConsentSettings, error)
}

type privacyClient struct {
	*apimachinery.BaseClient
}

// NewPrivacyClient returns a specialized client for consent management.
func NewPrivacyClient(
	apiAddress string,
	httpClient *http.Client,
) PrivacyClient {
	return &privacyClient{
		BaseClient: &apimachinery.BaseClient{
			APIAddress: apiAddress,
			HTTPClient: httpClient,
		},
	}
}

func (p *privacyClient) GetConsent(
	context.Context,
) (sdk.ConsentSettings, error) {
	consent := sdk.ConsentSettings{}
	return consent, p.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "privacy/consent",
			SuccessCode: http.StatusOK,
			RespObj:     &consent,
		},
	)
}

func (p *privacyClient) UpdateConsent(
	_ context.Context,
	consent sdk.ConsentSettings,
) (sdk.ConsentSettings, error) {
	updated := sdk.ConsentSettings{}
	return updated, p.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodPut,
			Path:        "privacy/consent",
			ReqBodyObj:  consent,
			SuccessCode: http.StatusOK,
			RespObj:     &updated,
		},
	)
}
