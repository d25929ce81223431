package sdk

import (
	"encoding/json"

	"github.com/assetgrid/assetgrid/sdk/meta"
)

// CategoryList is an ordered collection of Categories.
type CategoryList struct {
	meta.TypeMeta `json:",inline"`
	meta.ListMeta `json:"metadata"`
	Items         []Category `json:"items"`
}

// MarshalJSON amends CategoryList instances with type metadata so that
// clients do not need to be concerned with the tedium of doing so.
func (c CategoryList) MarshalJSON() ([]byte, error) {
	type Alias CategoryList
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "CategoryList",
			},
			Alias: (Alias)(c),
		},
	)
}

// Category groups Assets of a kind-- "Laptops", "Monitors", "Licenses", etc.
type Category struct {
	meta.ObjectMeta `json:"metadata"`
	// Name is the Category's display name.
	Name string `json:"name"`
	// Description is a natural language description of what belongs in the
	// Category.
	Description string `json:"description,omitempty"`
}

// MarshalJSON amends Category instances with type metadata so that clients do
// not need to be concerned with the tedium of doing so.
func (c Category) MarshalJSON() ([]byte, error) {
	type Alias Category
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "Category",
			},
			Alias: (Alias)(c),
		},
	)
}
