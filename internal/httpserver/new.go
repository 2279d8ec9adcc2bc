package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shopfront/internal/checkout"
	"shopfront/internal/order"
	"shopfront/internal/payment"
	"shopfront/internal/session"
	sessionHTTP "shopfront/internal/session/delivery/http"
	"shopfront/internal/stats"
	"shopfront/pkg/log"
	pkgRedis "shopfront/pkg/redis"
)

// HTTPServer represents the local HTTP surface with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) restores the session and serves.
type HTTPServer struct {
	// Server configuration
	gin    *gin.Engine
	logger log.Logger
	host   string
	port   int
	mode   string

	// Domain use cases
	session  session.UseCase
	checkout checkout.UseCase
	payment  payment.UseCase
	order    order.UseCase
	stats    stats.UseCase

	// Account endpoints outside the session lifecycle
	accounts sessionHTTP.AccountAPI

	// External services
	redis pkgRedis.IRedis
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host string
	Port int
	Mode string

	// Domain use cases
	Session  session.UseCase
	Checkout checkout.UseCase
	Payment  payment.UseCase
	Order    order.UseCase
	Stats    stats.UseCase

	// Account endpoints outside the session lifecycle
	Accounts sessionHTTP.AccountAPI

	// External services
	Redis pkgRedis.IRedis
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run().
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:    gin.Default(),
		logger: logger,
		host:   cfg.Host,
		port:   cfg.Port,
		mode:   cfg.Mode,

		session:  cfg.Session,
		checkout: cfg.Checkout,
		payment:  cfg.Payment,
		order:    cfg.Order,
		stats:    cfg.Stats,

		accounts: cfg.Accounts,

		redis: cfg.Redis,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.session == nil {
		return errors.New("session use case is required")
	}
	if srv.checkout == nil {
		return errors.New("checkout use case is required")
	}
	if srv.payment == nil {
		return errors.New("payment use case is required")
	}
	if srv.order == nil {
		return errors.New("order use case is required")
	}
	if srv.stats == nil {
		return errors.New("stats use case is required")
	}
	if srv.accounts == nil {
		return errors.New("accounts API is required")
	}
	if srv.redis == nil {
		return errors.New("redis client is required")
	}

	return nil
}
