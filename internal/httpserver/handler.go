package httpserver

import (
	checkoutHTTP "shopfront/internal/checkout/delivery/http"
	"shopfront/internal/middleware"
	orderHTTP "shopfront/internal/order/delivery/http"
	paymentHTTP "shopfront/internal/payment/delivery/http"
	sessionHTTP "shopfront/internal/session/delivery/http"
	statsHTTP "shopfront/internal/stats/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	// Health check endpoints (no guard)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)

	mw := middleware.New(srv.logger, srv.session)
	root := srv.gin.Group("")

	sessionHTTP.New(srv.logger, srv.session, srv.accounts).RegisterRoutes(root, mw)
	checkoutHTTP.New(srv.logger, srv.checkout, srv.session).RegisterRoutes(root, mw)
	orderHTTP.New(srv.logger, srv.order, srv.session).RegisterRoutes(root, mw)
	statsHTTP.New(srv.logger, srv.stats, srv.session).RegisterRoutes(root, mw)

	// Gateway callbacks stay unguarded; they can arrive mid-restore.
	paymentHTTP.New(srv.logger, srv.payment).RegisterRoutes(root)

	return nil
}
