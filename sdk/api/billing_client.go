package api

import (
	"context"
	"net/http"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/assetgrid/assetgrid/sdk/internal/apimachinery"
	"github.com/assetgrid/assetgrid/sdk/meta"
)

// BillingClient is the specialized client for retrieving the organization's
// Subscription and Invoices from the AssetGrid API. Payment collection
// itself happens through a third-party widget and is not this client's
// concern.
type BillingClient interface {
	// GetSubscription retrieves the organization's Subscription.
	GetSubscription(context.Context) (sdk.Subscription, error)
	// ListInvoices returns an InvoiceList.
	ListInvoices(context.Context, meta.ListOptions) (sdk.InvoiceList, error)
}

type billingClient struct {
	*apimachinery.BaseClient
}

// NewBillingClient returns a specialized client for billing retrieval.
func NewBillingClient(
	apiAddress string,
	httpClient *http.Client,
) BillingClient {
	return &billingClient{
		BaseClient: &apimachinery.BaseClient{
			APIAddress: apiAddress,
			HTTPClient: httpClient,
		},
	}
}

func (b *billingClient) GetSubscription(
	context.Context,
) (sdk.Subscription, error) {
	subscription := sdk.Subscription{}
	return subscription, b.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "billing/subscription",
			SuccessCode: http.StatusOK,
			RespObj:     &subscription,
		},
	)
}

func (b *billingClient) ListInvoices(
	_ context.Context,
	opts meta.ListOptions,
) (sdk.InvoiceList, error) {
	invoices := sdk.InvoiceList{}
	return invoices, b.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "billing/invoices",
			QueryParams: appendListQueryParams(nil, opts),
			SuccessCode: http.StatusOK,
			RespObj:     &invoices,
		},
	)
}
