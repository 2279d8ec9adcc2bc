package model

import "github.com/aarondl/null/v8"

// Profile is the shipping profile the backend holds for the current user.
// Optional fields are nullable so an update only touches what the caller
// actually provided.
type Profile struct {
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	PhoneNumber     null.String `json:"phoneNumber,omitempty"`
	ShippingAddress null.String `json:"shippingAddress,omitempty"`
	Balance         null.Int64  `json:"balance,omitempty"`
}

// MergeCorrections overlays the non-empty fields of corrections onto p and
// returns the result. The backend's authoritative record must match what the
// user is about to pay against before an order may reference it.
func (p Profile) MergeCorrections(corrections Profile) Profile {
	merged := p
	if corrections.Name != "" {
		merged.Name = corrections.Name
	}
	if corrections.Email != "" {
		merged.Email = corrections.Email
	}
	if corrections.PhoneNumber.Valid {
		merged.PhoneNumber = corrections.PhoneNumber
	}
	if corrections.ShippingAddress.Valid {
		merged.ShippingAddress = corrections.ShippingAddress
	}
	return merged
}
