package http

import (
	"shopfront/internal/session"
	"shopfront/internal/stats"
	"shopfront/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      stats.UseCase
	session session.UseCase
}

func New(l log.Logger, uc stats.UseCase, sess session.UseCase) *Handler {
	return &Handler{l: l, uc: uc, session: sess}
}
