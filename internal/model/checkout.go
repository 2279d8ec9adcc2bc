package model

// PaymentMethod is the closed set of payment rails the backend accepts.
type PaymentMethod string

const (
	// PaymentMethodWallet pays from the pre-paid user balance.
	PaymentMethodWallet PaymentMethod = "UserWallet"
	// PaymentMethodCOD is cash on delivery.
	PaymentMethodCOD PaymentMethod = "COD"
	// PaymentMethodOnline goes through the external redirect-based gateway.
	PaymentMethodOnline PaymentMethod = "Online"
)

// Valid reports whether m is one of the accepted rails.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodWallet, PaymentMethodCOD, PaymentMethodOnline:
		return true
	}
	return false
}

// ShippingAddressMode selects which address the order ships to.
type ShippingAddressMode string

const (
	ShippingInStore     ShippingAddressMode = "InStore"
	ShippingUserAddress ShippingAddressMode = "UserAddress"
)

// Valid reports whether s is an accepted mode.
func (s ShippingAddressMode) Valid() bool {
	return s == ShippingInStore || s == ShippingUserAddress
}

// CheckoutRequest is the ephemeral per-attempt value object submitted to
// create an order. It is constructed fresh per checkout and never persisted.
type CheckoutRequest struct {
	PaymentMethod   PaymentMethod
	VoucherCode     string
	ShippingAddress ShippingAddressMode
}

// PendingPayment marks a single order (or top-up) awaiting confirmation from
// the external gateway. Exactly one marker per flow is tracked at a time;
// starting a new online checkout overwrites an outstanding one. AttemptID is
// recorded so logs can tell a stale gateway return from the current attempt.
type PendingPayment struct {
	OrderID   string
	AttemptID string
	// Amount is set only for top-up markers (raw amount requested).
	Amount int64
}
