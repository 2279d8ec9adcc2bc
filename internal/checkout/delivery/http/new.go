package http

import (
	"shopfront/internal/checkout"
	"shopfront/internal/session"
	"shopfront/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      checkout.UseCase
	session session.UseCase
}

func New(l log.Logger, uc checkout.UseCase, sess session.UseCase) *Handler {
	return &Handler{l: l, uc: uc, session: sess}
}
