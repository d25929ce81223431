package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/assetgrid/assetgrid/sdk/internal/apimachinery"
	"github.com/assetgrid/assetgrid/sdk/meta"
)

// MaintenanceSelector represents useful filter criteria when selecting
// multiple MaintenanceRecords for API group operations like list.
type MaintenanceSelector struct {
	// Status, when non-empty, limits results to records in the given
	// lifecycle status.
	Status sdk.MaintenanceStatus
}

// MaintenanceClient is the specialized client for managing
// MaintenanceRecords with the AssetGrid API.
type MaintenanceClient interface {
	// Create schedules new maintenance against the Asset specified by its
	// identifier.
	Create(
		ctx context.Context,
		assetID string,
		record sdk.MaintenanceRecord,
	) (sdk.MaintenanceRecord, error)
	// List returns the MaintenanceRecordList for the Asset specified by its
	// identifier.
	List(
		ctx context.Context,
		assetID string,
		selector MaintenanceSelector,
		opts meta.ListOptions,
	) (sdk.MaintenanceRecordList, error)
	// Get retrieves a single MaintenanceRecord specified by its identifier.
	Get(context.Context, string) (sdk.MaintenanceRecord, error)
	// Complete marks a single MaintenanceRecord specified by its identifier
	// as completed.
	Complete(context.Context, string) (sdk.MaintenanceRecord, error)
	// Delete deletes a single MaintenanceRecord specified by its identifier.
	Delete(context.Context, string) error
}

type maintenanceClient struct {
	*apimachinery.BaseClient
}

// NewMaintenanceClient returns a specialized client for managing
// MaintenanceRecords.
func NewMaintenanceClient(
	apiAddress string,
	httpClient *http.Client,
) MaintenanceClient {
	return &maintenanceClient{
		BaseClient: &apimachinery.BaseClient{
			APIAddress: apiAddress,
			HTTPClient: httpClient,
		},
	}
}

func (m *maintenanceClient) Create(
	_ context.Context,
	assetID string,
	record sdk.MaintenanceRecord,
) (sdk.MaintenanceRecord, error) {
	created := sdk.MaintenanceRecord{}
	return created, m.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        fmt.Sprintf("assets/%s/maintenance", assetID),
			ReqBodyObj:  record,
			SuccessCode: http.StatusCreated,
			RespObj:     &created,
		},
	)
}

func (m *maintenanceClient) List(
	_ context.Context,
	assetID string,
	selector MaintenanceSelector,
	opts meta.ListOptions,
) (sdk.MaintenanceRecordList, error) {
	records := sdk.MaintenanceRecordList{}
	queryParams := map[string]string{}
	if selector.Status != "" {
		queryParams["status"] = string(selector.Status)
	}
	return records, m.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("assets/%s/maintenance", assetID),
			QueryParams: appendListQueryParams(queryParams, opts),
			SuccessCode: http.StatusOK,
			RespObj:     &records,
		},
	)
}

func (m *maintenanceClient) Get(
	_ context.Context,
	id string,
) (sdk.MaintenanceRecord, error) {
	record := sdk.MaintenanceRecord{}
	return record, m.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("maintenance/%s", id),
			SuccessCode: http.StatusOK,
			RespObj:     &record,
		},
	)
}

func (m *maintenanceClient) Complete(
	_ context.Context,
	id string,
) (sdk.MaintenanceRecord, error) {
	record := sdk.MaintenanceRecord{}
	return record, m.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodPut,
			Path:        fmt.Sprintf("maintenance/%s/complete", id),
			SuccessCode: http.StatusOK,
			RespObj:     &record,
		},
	)
}

func (m *maintenanceClient) Delete(_ context.Context, id string) error {
	return m.ExecuteRequest(
		apimachinery.OutboundRequest{
			Method:      http.MethodDelete,
			Path:        fmt.Sprintf("maintenance/%s", id),
			SuccessCode: http.StatusOK,
		},
	)
}
