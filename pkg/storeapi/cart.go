package storeapi

import (
	"context"
	"net/http"

	"shopfront/internal/model"
)

type cartLineRequest struct {
	ProductID string `json:"productID"`
	Quantity  int    `json:"quantity"`
}

// Cart fetches the current user's open cart lines.
func (c *Client) Cart(ctx context.Context) ([]model.CartLine, error) {
	var lines []model.CartLine
	err := c.callInto(ctx, "Cart", http.MethodGet, "/orderdetails/get_personal_order_detail", nil, nil, &lines)
	return lines, err
}

// AddToCart adds quantity of a product to the cart.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) error {
	return c.callInto(ctx, "AddToCart", http.MethodPost, "/orderdetails/add_to_cart", nil,
		cartLineRequest{ProductID: productID, Quantity: quantity}, nil)
}

// UpdateCartLine changes the quantity of one cart line.
func (c *Client) UpdateCartLine(ctx context.Context, lineID, productID string, quantity int) error {
	return c.callInto(ctx, "UpdateCartLine", http.MethodPut, "/orderdetails/"+lineID, nil,
		cartLineRequest{ProductID: productID, Quantity: quantity}, nil)
}

// RemoveCartLine deletes one cart line.
func (c *Client) RemoveCartLine(ctx context.Context, lineID string) error {
	return c.callInto(ctx, "RemoveCartLine", http.MethodDelete, "/orderdetails/"+lineID, nil, nil, nil)
}

// Orders fetches the current user's order history.
func (c *Client) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := c.callInto(ctx, "Orders", http.MethodGet, "/orders", nil, nil, &orders)
	return orders, err
}
