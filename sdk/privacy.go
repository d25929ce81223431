package sdk

import (
	"encoding/json"
	"time"

	"github.com/assetgrid/assetgrid/sdk/meta"
)

// ConsentSettings represents the signed-in user's privacy choices.
type ConsentSettings struct {
	// Analytics indicates whether the user consents to product analytics.
	Analytics bool `json:"analytics"`
	// Marketing indicates whether the user consents to marketing
	// communications.
	Marketing bool `json:"marketing"`
	// UpdatedAt indicates when the user last changed these settings. This is
	// recorded by the system.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// MarshalJSON amends ConsentSettings instances with type metadata so that
// clients do not need to be concerned with the tedium of doing so.
func (c ConsentSettings) MarshalJSON() ([]byte, error) {
	type Alias ConsentSettings
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "ConsentSettings",
			},
			Alias: (Alias)(c),
		},
	)
}
