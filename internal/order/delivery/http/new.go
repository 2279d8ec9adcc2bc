package http

import (
	"shopfront/internal/order"
	"shopfront/internal/session"
	"shopfront/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      order.UseCase
	session session.UseCase
}

func New(l log.Logger, uc order.UseCase, sess session.UseCase) *Handler {
	return &Handler{l: l, uc: uc, session: sess}
}
