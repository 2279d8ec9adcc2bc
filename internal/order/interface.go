package order

import (
	"context"

	"shopfront/internal/model"
)

// UseCase exposes the server-owned cart and order listing the purchase flow
// reads from and navigates to. All writes happen server-side; this is
// list-and-edit plumbing around the checkout path.
type UseCase interface {
	Cart(ctx context.Context) ([]model.CartLine, error)
	AddToCart(ctx context.Context, productID string, quantity int) error
	UpdateLine(ctx context.Context, lineID, productID string, quantity int) error
	RemoveLine(ctx context.Context, lineID string) error
	Orders(ctx context.Context) ([]model.Order, error)
}

// API is the slice of the backend client this domain depends on.
type API interface {
	Cart(ctx context.Context) ([]model.CartLine, error)
	AddToCart(ctx context.Context, productID string, quantity int) error
	UpdateCartLine(ctx context.Context, lineID, productID string, quantity int) error
	RemoveCartLine(ctx context.Context, lineID string) error
	Orders(ctx context.Context) ([]model.Order, error)
}
