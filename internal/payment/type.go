package payment

import "time"

// Flow identifies which gateway round-trip is being resolved.
type Flow string

const (
	// FlowPurchase is the order-payment callback.
	FlowPurchase Flow = "purchase"
	// FlowTopup is the balance top-up callback.
	FlowTopup Flow = "topup"
)

// Verdict is the terminal state of a resolution.
type Verdict string

const (
	VerdictSuccess Verdict = "success"
	VerdictFailure Verdict = "failure"
)

// Routes the resolver navigates to once the user has had time to read the
// outcome.
const (
	RouteOrders  = "/orders"
	RouteProfile = "/profile"
	RouteCart    = "/cart"
	RouteTopup   = "/topup"
	RouteLogin   = "/login"
)

// Outcome is what a resolution produces: the verdict, where to navigate
// next, and how long to show the outcome before moving on.
type Outcome struct {
	Flow       Flow
	Verdict    Verdict
	Message    string
	NavigateTo string
	NavigateIn time.Duration
	// OrderID is the marker's order id, when a purchase marker existed.
	OrderID string
}
