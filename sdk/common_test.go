package sdk

import (
	"encoding/json"
	"testing"

	"github.com/assetgrid/assetgrid/sdk/meta"
	"github.com/stretchr/testify/require"
)

func requireAPIVersionAndType(
	t *testing.T,
	obj interface{},
	expectedType string,
) {
	objJSON, err := json.Marshal(obj)
	require.NoError(t, err)
	objMap := map[string]interface{}{}
	err = json.Unmarshal(objJSON, &objMap)
	require.NoError(t, err)
	require.Equal(t, meta.APIVersion, objMap["apiVersion"])
	require.Equal(t, expectedType, objMap["kind"])
}

func TestAssetListMarshalJSON(t *testing.T) {
	requireAPIVersionAndType(t, AssetList{}, "AssetList")
}

func TestAssetMarshalJSON(t *testing.T) {
	requireAPIVersionAndType(t, Asset{}, "Asset")
}

func TestCategoryListMarshalJSON(t *testing.T) {
	requireAPIVersionAndType(t, CategoryList{}, "CategoryList")
}

func TestCategoryMarshalJSON(t *testing.T) {
	requireAPIVersionAndType(t, Category{}, "Category")
}

func TestMaintenanceRecordListMarshalJSON(t *testing.T) {
	requireAPIVersionAndType(t, MaintenanceRecordList{}, "MaintenanceRecordList")
}

func TestMaintenanceRecordMarshalJSON(t *testing.T) {
	requireAPIVersionAndType(t, MaintenanceRecord{}, "MaintenanceRecord")
}

func TestUserListMarshalJSON(t *testing.T) {
	requireAPIVersionAndType(t, UserList{}, "UserList")
}

func TestUserMarshalJSON(t *testing.T) {
	requireAPIVersionAndType(t, User{}, "User")
}

func TestSubscriptionMarshalJSON(t *testing.T) {
	requireAPIVersionAndType(t, Subscription{}, "Subscription")
}

func TestInvoiceListMarshalJSON(t *testing.T) {
	requireAPIVersionAndType(t, InvoiceList{}, "InvoiceList")
}

func TestInvoiceMarshalJSON(t *testing.T) {
	requireAPIVersionAndType(t, Invoice{}, "Invoice")
}

func TestConsentSettingsMarshalJSON(t *testing.T) {
	requireAPIVersionAndType(t, ConsentSettings{}, "ConsentSettings")
}
