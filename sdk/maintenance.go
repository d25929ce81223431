package sdk

import (
	"encoding/json"
	"time"

	"github.com/assetgrid/assetgrid/sdk/meta"
)

// MaintenanceStatus represents where a MaintenanceRecord is in its lifecycle.
type MaintenanceStatus string

const (
	// MaintenanceStatusScheduled represents maintenance that has been planned
	// but not yet carried out.
	MaintenanceStatusScheduled MaintenanceStatus = "SCHEDULED"
	// MaintenanceStatusInProgress represents maintenance that is under way.
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	// MaintenanceStatusCompleted represents maintenance that has concluded.
	MaintenanceStatusCompleted MaintenanceStatus = "COMPLETED"
)

// MaintenanceRecordList is an ordered collection of MaintenanceRecords.
type MaintenanceRecordList struct {
	meta.TypeMeta `json:",inline"`
	meta.ListMeta `json:"metadata"`
	Items         []MaintenanceRecord `json:"items"`
}

// MarshalJSON amends MaintenanceRecordList instances with type metadata so
// that clients do not need to be concerned with the tedium of doing so.
func (m MaintenanceRecordList) MarshalJSON() ([]byte, error) {
	type Alias MaintenanceRecordList
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "MaintenanceRecordList",
			},
			Alias: (Alias)(m),
		},
	)
}

// MaintenanceRecord represents a unit of upkeep performed (or planned)
// against a single Asset.
type MaintenanceRecord struct {
	meta.ObjectMeta `json:"metadata"`
	// AssetID relates the record to the Asset it concerns.
	AssetID string `json:"assetId"`
	// Title is a short summary of the work.
	Title string `json:"title"`
	// Description is a natural language description of the work.
	Description string `json:"description,omitempty"`
	// Status indicates where the record is in its lifecycle.
	Status MaintenanceStatus `json:"status,omitempty"`
	// ScheduledFor indicates when the work is planned to happen.
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
	// CompletedAt indicates when the work concluded. This is recorded by the
	// system when the record is completed.
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	// Cost is the cost of the work in minor currency units.
	Cost int64 `json:"cost,omitempty"`
}

// MarshalJSON amends MaintenanceRecord instances with type metadata so that
// clients do not need to be concerned with the tedium of doing so.
func (m MaintenanceRecord) MarshalJSON() ([]byte, error) {
	type Alias MaintenanceRecord
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "MaintenanceRecord",
			},
			Alias: (Alias)(m),
		},
	)
}
