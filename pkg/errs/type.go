package errs

// FieldError is a single server-reported validation failure for one field.
type FieldError struct {
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// ValidationErrors collects the per-field validation failures the backend
// returned for one request. The flow that triggered it is not aborted
// globally; callers surface each entry next to its field.
type ValidationErrors struct {
	errors []*FieldError
}

// TransportError wraps a network-level failure (connection, timeout, or an
// unreadable response). No partial state may be committed when one is seen.
type TransportError struct {
	Op    string
	Cause error
}

// GatewayError carries a "not successful" verdict from the payment
// verification endpoint. The client never retries on its own.
type GatewayError struct {
	Code    string
	Message string
}

// RemoteError is a non-success envelope from the backend that is neither a
// validation failure nor an authorization failure. Message holds the
// server-provided text, if any.
type RemoteError struct {
	Code    string
	Message string
}
