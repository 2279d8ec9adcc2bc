package storeapi

import (
	"context"
	"net/http"

	"shopfront/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type confirmEmailRequest struct {
	Token string `json:"token"`
}

type resendConfirmationRequest struct {
	Email string `json:"email"`
}

// Login authenticates and returns the issued credential pair.
func (c *Client) Login(ctx context.Context, email, password string) (model.Credential, error) {
	var cred model.Credential
	err := c.callInto(ctx, "Login", http.MethodPost, "/auth/auth_account", nil,
		loginRequest{Email: email, Password: password}, &cred)
	return cred, err
}

// Refresh exchanges the refresh token for a new credential pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (model.Credential, error) {
	var cred model.Credential
	err := c.callInto(ctx, "Refresh", http.MethodPost, "/auth/refresh_token", nil,
		refreshRequest{RefreshToken: refreshToken}, &cred)
	return cred, err
}

// Register creates a new account. The account stays unusable until the
// emailed confirmation token is submitted via ConfirmEmail.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	return c.callInto(ctx, "Register", http.MethodPost, "/auth/new_account", nil, input, nil)
}

// ConfirmEmail submits the confirmation token from the registration email.
func (c *Client) ConfirmEmail(ctx context.Context, token string) error {
	return c.callInto(ctx, "ConfirmEmail", http.MethodPatch, "/auth/confirm_email", nil,
		confirmEmailRequest{Token: token}, nil)
}

// ResendConfirmation requests a fresh confirmation email.
func (c *Client) ResendConfirmation(ctx context.Context, email string) error {
	return c.callInto(ctx, "ResendConfirmation", http.MethodPatch, "/auth/resend_confirmation_email", nil,
		resendConfirmationRequest{Email: email}, nil)
}
