package response

import "shopfront/pkg/errs"

// Resp is the local HTTP surface's envelope. It mirrors the backend's
// {code, message, data} shape so callers of this client see one idiom on
// both sides.
type Resp struct {
	Code    string             `json:"code"`
	Message string             `json:"message,omitempty"`
	Data    any                `json:"data,omitempty"`
	Errors  []*errs.FieldError `json:"errors,omitempty"`
}

// Local response codes.
const (
	CodeSuccess         = "Success"
	CodeError           = "Error"
	CodeUnauthorized    = "Unauthorized"
	CodeValidationError = "ValidationError"
	CodeGatewayError    = "GatewayError"
	CodeTransportError  = "TransportError"
)
