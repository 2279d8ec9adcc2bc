package storeapi

import (
	"context"
	"net/http"

	"github.com/aarondl/null/v8"

	"shopfront/internal/model"
)

// updateProfileRequest mirrors the backend's lenient address handling: the
// shipping address is sent under every field name the backend has accepted
// historically, so the authoritative record updates no matter which one the
// current deployment reads.
type updateProfileRequest struct {
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	PhoneNumber     null.String `json:"phoneNumber,omitempty"`
	Address         null.String `json:"address,omitempty"`
	ShippingAddress null.String `json:"shippingAddress,omitempty"`
	DeliveryAddress null.String `json:"deliveryAddress,omitempty"`
}

// Profile fetches the current user's shipping profile.
func (c *Client) Profile(ctx context.Context) (model.Profile, error) {
	var p model.Profile
	err := c.callInto(ctx, "Profile", http.MethodGet, "/users/profile", nil, nil, &p)
	return p, err
}

// UpdateProfile replaces the backend's profile record with p.
func (c *Client) UpdateProfile(ctx context.Context, p model.Profile) error {
	req := updateProfileRequest{
		Name:            p.Name,
		Email:           p.Email,
		PhoneNumber:     p.PhoneNumber,
		Address:         p.ShippingAddress,
		ShippingAddress: p.ShippingAddress,
		DeliveryAddress: p.ShippingAddress,
	}
	return c.callInto(ctx, "UpdateProfile", http.MethodPut, "/users", nil, req, nil)
}
