package store

import (
	"shopfront/internal/session"
	"shopfront/pkg/log"
	"shopfront/pkg/memstore"
	pkgRedis "shopfront/pkg/redis"
)

// Store keeps the identity in sync across three places: the durable redis
// record that survives restarts, the run-scoped volatile mirror of the
// subject id, and the outbound default headers on the backend client.
type Store struct {
	l        log.Logger
	durable  pkgRedis.IRedis
	volatile *memstore.Store
	headers  session.HeaderSink
}

func New(l log.Logger, durable pkgRedis.IRedis, volatile *memstore.Store, headers session.HeaderSink) *Store {
	return &Store{
		l:        l,
		durable:  durable,
		volatile: volatile,
		headers:  headers,
	}
}
