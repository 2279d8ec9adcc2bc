package checkout

import "errors"

var (
	// ErrRoleNotAllowed is returned before any network I/O when the caller
	// is not a Member; checkout is not a staff or admin action.
	ErrRoleNotAllowed = errors.New("checkout: requires the Member role")

	// ErrInvalidPaymentMethod is returned for a method outside the closed
	// set the backend accepts.
	ErrInvalidPaymentMethod = errors.New("checkout: invalid payment method")

	// ErrInvalidShippingMode is returned for an unknown shipping-address mode.
	ErrInvalidShippingMode = errors.New("checkout: invalid shipping address mode")

	// ErrMissingGatewayURL is returned when the backend accepted an online
	// order but the envelope carried no redirect URL.
	ErrMissingGatewayURL = errors.New("checkout: backend returned no gateway URL")

	// ErrAmountTooSmall is returned for a top-up below the backend minimum.
	ErrAmountTooSmall = errors.New("checkout: top-up amount below minimum")
)
