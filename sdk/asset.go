package sdk

import (
	"encoding/json"
	"time"

	"github.com/assetgrid/assetgrid/sdk/meta"
)

// AssetStatus represents where an Asset is in its operational lifecycle.
type AssetStatus string

const (
	// AssetStatusActive represents an Asset that is deployed and in use.
	AssetStatusActive AssetStatus = "ACTIVE"
	// AssetStatusInRepair represents an Asset that has been pulled from use
	// for maintenance.
	AssetStatusInRepair AssetStatus = "IN_REPAIR"
	// AssetStatusInStorage represents an Asset that is owned but not deployed.
	AssetStatusInStorage AssetStatus = "IN_STORAGE"
	// AssetStatusRetired represents an Asset that has reached end of life.
	AssetStatusRetired AssetStatus = "RETIRED"
)

// AssetList is an ordered collection of Assets.
type AssetList struct {
	meta.TypeMeta `json:",inline"`
	meta.ListMeta `json:"metadata"`
	Items         []Asset `json:"items"`
}

// MarshalJSON amends AssetList instances with type metadata so that clients
// do not need to be concerned with the tedium of doing so.
func (a AssetList) MarshalJSON() ([]byte, error) {
	type Alias AssetList
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "AssetList",
			},
			Alias: (Alias)(a),
		},
	)
}

// Asset represents a single tracked piece of IT inventory-- a laptop, a
// monitor, a license seat, etc.
type Asset struct {
	meta.ObjectMeta `json:"metadata"`
	// Name is a human-friendly display name.
	Name string `json:"name"`
	// Tag is the organization's own inventory tag.
	Tag string `json:"tag,omitempty"`
	// SerialNumber is the manufacturer's serial number.
	SerialNumber string `json:"serialNumber,omitempty"`
	// CategoryID relates the Asset to a Category.
	CategoryID string `json:"categoryId,omitempty"`
	// Status indicates where the Asset is in its operational lifecycle.
	Status AssetStatus `json:"status,omitempty"`
	// Location is a free-form description of where the Asset lives.
	Location string `json:"location,omitempty"`
	// AssignedTo references the User currently responsible for the Asset.
	AssignedTo string `json:"assignedTo,omitempty"`
	// PurchaseDate indicates when the Asset was acquired.
	PurchaseDate *time.Time `json:"purchaseDate,omitempty"`
	// PurchaseCost is the acquisition cost in minor currency units.
	PurchaseCost int64 `json:"purchaseCost,omitempty"`
	// Notes holds free-form operator notes.
	Notes string `json:"notes,omitempty"`
}

// MarshalJSON amends Asset instances with type metadata so that clients do
// not need to be concerned with the tedium of doing so.
func (a Asset) MarshalJSON() ([]byte, error) {
	type Alias Asset
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "Asset",
			},
			Alias: (Alias)(a),
		},
	)
}
