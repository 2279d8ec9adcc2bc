package model

// OrderStatus is the fulfillment state of an order. It is independent of
// PaymentStatus; the client never infers one from the other.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusShipping  OrderStatus = "Shipping"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// PaymentStatus is the state of the money side of an order.
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "Unpaid"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusFailed   PaymentStatus = "Failed"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// CartLine is one server-owned cart entry; the client holds only what it
// needs to render and to drive checkout.
type CartLine struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productID"`
	Name      string  `json:"productName"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"totalPrice"`
}

// Order is the client-side view of a server-owned order.
type Order struct {
	ID              string        `json:"orderID"`
	Status          OrderStatus   `json:"orderStatus"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	ShippingAddress string        `json:"shippingAddress"`
	Total           float64       `json:"totalPrice"`
	Lines           []CartLine    `json:"orderDetails,omitempty"`
}
