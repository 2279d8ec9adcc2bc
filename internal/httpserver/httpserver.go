package httpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Run restores the session, maps handlers and serves until a shutdown
// signal arrives.
//  1. Map HTTP handlers and routes
//  2. Restore the persisted session (the surface answers 503 on guarded
//     routes until this finishes, never a false anonymous redirect)
//  3. Start HTTP server
//  4. Wait for shutdown signal
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	// 1. Map handlers
	if err := srv.mapHandlers(); err != nil {
		srv.logger.Fatalf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	// 2. Restore the session from the durable tier
	srv.session.Restore(ctx)
	srv.logger.Infof(ctx, "Session restored: state=%s", srv.session.Snapshot().State)

	// 3. Start HTTP server in background
	go func() {
		if err := srv.gin.Run(fmt.Sprintf("%s:%d", srv.host, srv.port)); err != nil {
			srv.logger.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()

	srv.logger.Infof(ctx, "HTTP server started on %s:%d", srv.host, srv.port)

	// 4. Wait for shutdown signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	srv.logger.Info(ctx, <-ch)
	srv.logger.Info(ctx, "Stopping shopfront client...")

	if err := srv.redis.Close(); err != nil {
		srv.logger.Errorf(ctx, "Redis close error: %v", err)
	}

	return nil
}
