package sdk

import (
	"encoding/json"
	"time"

	"github.com/assetgrid/assetgrid/sdk/meta"
)

// UserList is an ordered collection of Users.
type UserList struct {
	meta.TypeMeta `json:",inline"`
	meta.ListMeta `json:"metadata"`
	Items         []User `json:"items"`
}

// MarshalJSON amends UserList instances with type metadata so that clients do
// not need to be concerned with the tedium of doing so.
func (u UserList) MarshalJSON() ([]byte, error) {
	type Alias UserList
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "UserList",
			},
			Alias: (Alias)(u),
		},
	)
}

// User represents a human AssetGrid user.
type User struct {
	meta.ObjectMeta `json:"metadata"`
	// Name is the user's full name.
	Name string `json:"name"`
	// Email is the user's email address and doubles as their sign-in name.
	Email string `json:"email"`
	// Role is the user's product role, e.g. "admin" or "member".
	Role string `json:"role,omitempty"`
	// Locked indicates when the user has been locked out of the system by an
	// administrator. If this field's value is nil, the User can be presumed
	// NOT to be locked.
	Locked *time.Time `json:"locked,omitempty"`
}

// MarshalJSON amends User instances with type metadata so that clients do not
// need to be concerned with the tedium of doing so.
func (u User) MarshalJSON() ([]byte, error) {
	type Alias User
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "User",
			},
			Alias: (Alias)(u),
		},
	)
}
