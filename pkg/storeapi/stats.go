package storeapi

import (
	"context"
	"net/http"
	"net/url"
)

// RevenueStats fetches the revenue series between two dates (YYYY-MM-DD).
func (c *Client) RevenueStats(ctx context.Context, from, to string) ([]RevenuePoint, error) {
	query := url.Values{}
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}
	var points []RevenuePoint
	err := c.callInto(ctx, "RevenueStats", http.MethodGet, "/statistical/revenue-stats", query, nil, &points)
	return points, err
}

// TopSellingProducts fetches the best sellers report.
func (c *Client) TopSellingProducts(ctx context.Context) ([]ProductStat, error) {
	var stats []ProductStat
	err := c.callInto(ctx, "TopSellingProducts", http.MethodGet, "/statisticalproduct/top-selling-products", nil, nil, &stats)
	return stats, err
}

// LowStockProducts fetches products running out of stock.
func (c *Client) LowStockProducts(ctx context.Context) ([]ProductStat, error) {
	var stats []ProductStat
	err := c.callInto(ctx, "LowStockProducts", http.MethodGet, "/statisticalproduct/low-stock-products", nil, nil, &stats)
	return stats, err
}
