package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"shopfront/internal/stats"
	pkgLog "shopfront/pkg/log"
)

type usecase struct {
	l   pkgLog.Logger
	api stats.API
}

func New(l pkgLog.Logger, api stats.API) stats.UseCase {
	return &usecase{l: l, api: api}
}

// Dashboard issues the three statistics fetches in parallel. They carry no
// ordering dependency between them, so this is safe in a way the checkout
// pipeline is not.
func (uc *usecase) Dashboard(ctx context.Context, input stats.DashboardInput) (stats.Dashboard, error) {
	var out stats.Dashboard

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		revenue, err := uc.api.RevenueStats(ctx, input.From, input.To)
		if err != nil {
			return err
		}
		out.Revenue = revenue
		return nil
	})
	g.Go(func() error {
		top, err := uc.api.TopSellingProducts(ctx)
		if err != nil {
			return err
		}
		out.TopSellers = top
		return nil
	})
	g.Go(func() error {
		low, err := uc.api.LowStockProducts(ctx)
		if err != nil {
			return err
		}
		out.LowStock = low
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "internal.stats.usecase.Dashboard: %v", err)
		return stats.Dashboard{}, err
	}
	return out, nil
}
