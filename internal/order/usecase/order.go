package usecase

import (
	"context"

	"shopfront/internal/model"
	"shopfront/internal/order"
	pkgLog "shopfront/pkg/log"
)

type usecase struct {
	l   pkgLog.Logger
	api order.API
}

func New(l pkgLog.Logger, api order.API) order.UseCase {
	return &usecase{l: l, api: api}
}

func (uc *usecase) Cart(ctx context.Context) ([]model.CartLine, error) {
	lines, err := uc.api.Cart(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.order.usecase.Cart: %v", err)
		return nil, err
	}
	return lines, nil
}

func (uc *usecase) AddToCart(ctx context.Context, productID string, quantity int) error {
	if err := uc.api.AddToCart(ctx, productID, quantity); err != nil {
		uc.l.Errorf(ctx, "internal.order.usecase.AddToCart: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) UpdateLine(ctx context.Context, lineID, productID string, quantity int) error {
	if err := uc.api.UpdateCartLine(ctx, lineID, productID, quantity); err != nil {
		uc.l.Errorf(ctx, "internal.order.usecase.UpdateLine: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) RemoveLine(ctx context.Context, lineID string) error {
	if err := uc.api.RemoveCartLine(ctx, lineID); err != nil {
		uc.l.Errorf(ctx, "internal.order.usecase.RemoveLine: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) Orders(ctx context.Context) ([]model.Order, error) {
	orders, err := uc.api.Orders(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.order.usecase.Orders: %v", err)
		return nil, err
	}
	return orders, nil
}
