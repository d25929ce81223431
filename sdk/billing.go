package sdk

import (
	"encoding/json"
	"time"

	"github.com/assetgrid/assetgrid/sdk/meta"
)

// Subscription represents the organization's current AssetGrid plan.
type Subscription struct {
	meta.ObjectMeta `json:"metadata"`
	// Plan names the product tier, e.g. "starter" or "business".
	Plan string `json:"plan"`
	// Status indicates whether the Subscription is active, trialing, past
	// due, or canceled.
	Status string `json:"status"`
	// Seats is the number of licensed users.
	Seats int `json:"seats,omitempty"`
	// RenewsAt indicates when the current billing period ends.
	RenewsAt *time.Time `json:"renewsAt,omitempty"`
}

// MarshalJSON amends Subscription instances with type metadata so that
// clients do not need to be concerned with the tedium of doing so.
func (s Subscription) MarshalJSON() ([]byte, error) {
	type Alias Subscription
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "Subscription",
			},
			Alias: (Alias)(s),
		},
	)
}

// InvoiceList is an ordered collection of Invoices.
type InvoiceList struct {
	meta.TypeMeta `json:",inline"`
	meta.ListMeta `json:"metadata"`
	Items         []Invoice `json:"items"`
}

// MarshalJSON amends InvoiceList instances with type metadata so that clients
// do not need to be concerned with the tedium of doing so.
func (i InvoiceList) MarshalJSON() ([]byte, error) {
	type Alias InvoiceList
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "InvoiceList",
			},
			Alias: (Alias)(i),
		},
	)
}

// Invoice represents a single bill issued against the Subscription.
type Invoice struct {
	meta.ObjectMeta `json:"metadata"`
	// Number is the invoice number shown on the document itself.
	Number string `json:"number"`
	// Amount is the invoiced amount in minor currency units.
	Amount int64 `json:"amount"`
	// Currency is the ISO 4217 code for Amount.
	Currency string `json:"currency"`
	// IssuedAt indicates when the Invoice was issued.
	IssuedAt *time.Time `json:"issuedAt,omitempty"`
	// PaidAt indicates when the Invoice was settled. If this field's value is
	// nil, the Invoice can be presumed NOT to be paid.
	PaidAt *time.Time `json:"paidAt,omitempty"`
}

// MarshalJSON amends Invoice instances with type metadata so that clients do
// not need to be concerned with the tedium of doing so.
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "Invoice",
			},
			Alias: (Alias)(i),
		},
	)
}
