package stats

import "shopfront/pkg/storeapi"

// DashboardInput bounds the revenue series.
type DashboardInput struct {
	From string
	To   string
}

// Dashboard is the assembled statistics view.
type Dashboard struct {
	Revenue    []storeapi.RevenuePoint `json:"revenue"`
	TopSellers []storeapi.ProductStat  `json:"topSellers"`
	LowStock   []storeapi.ProductStat  `json:"lowStock"`
}
