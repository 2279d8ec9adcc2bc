package stats

import (
	"context"

	"shopfront/pkg/storeapi"
)

// UseCase aggregates the dashboard statistics. Unlike the payment path,
// these fetches are independent of each other and run concurrently.
type UseCase interface {
	Dashboard(ctx context.Context, input DashboardInput) (Dashboard, error)
}

// API is the slice of the backend client this domain depends on.
type API interface {
	RevenueStats(ctx context.Context, from, to string) ([]storeapi.RevenuePoint, error)
	TopSellingProducts(ctx context.Context) ([]storeapi.ProductStat, error)
	LowStockProducts(ctx context.Context) ([]storeapi.ProductStat, error)
}
