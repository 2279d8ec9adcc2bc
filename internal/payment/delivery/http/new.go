package http

import (
	"shopfront/internal/payment"
	"shopfront/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc payment.UseCase
}

func New(l log.Logger, uc payment.UseCase) *Handler {
	return &Handler{l: l, uc: uc}
}
