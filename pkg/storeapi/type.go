package storeapi

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"shopfront/pkg/errs"
	"shopfront/pkg/log"
)

// Config holds the backend connection settings.
type Config struct {
	// BaseURL is the backend API root, e.g. "https://localhost:7286/api".
	BaseURL string
	// Timeout applies to every call; zero falls back to DefaultTimeout.
	Timeout time.Duration
}

// Client talks to the storefront backend. Every authenticated call carries
// the default Authorization and X-User-Id headers; both are replaced or
// cleared wholesale when the session changes, never merged.
type Client struct {
	l       log.Logger
	baseURL string
	http    *http.Client

	mu          sync.RWMutex
	bearerToken string
	userID      string
}

// envelope is the backend response shape shared by every endpoint:
// {code, message, data}, with code == "Success" as the success discriminator.
// For the online checkout and top-up calls, message carries the gateway URL.
type envelope struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Errors  []*errs.FieldError `json:"errors,omitempty"`
}

// CodeSuccess is the envelope's success discriminator. Any other code is a
// rejection; field errors, when present, identify it as a validation one.
const CodeSuccess = "Success"

// CheckoutResult is what order submission yields: the new order id, and, for
// the online rail, the gateway redirect URL taken from the envelope message.
type CheckoutResult struct {
	OrderID    string
	GatewayURL string
}

// TopupResult carries the gateway redirect URL for a balance top-up.
type TopupResult struct {
	GatewayURL string
}

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// RevenuePoint is one bucket of the revenue statistics series.
type RevenuePoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// ProductStat is one row of the top-selling / low-stock reports.
type ProductStat struct {
	ProductID string  `json:"productID"`
	Name      string  `json:"productName"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}
