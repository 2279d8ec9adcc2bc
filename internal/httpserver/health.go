package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopfront/pkg/response"
)

// healthCheck reports overall health, including the durable session tier.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.redis.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			Code:    response.CodeError,
			Message: "redis connection failed",
		})
		return
	}

	response.OK(c, gin.H{
		"status":  "healthy",
		"service": "shopfront",
		"session": srv.session.Snapshot().State.String(),
		"redis":   "connected",
	})
}

// readyCheck reports readiness: traffic is answerable once the session
// restore has settled out of the transient states.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.redis.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			Code:    response.CodeError,
			Message: "redis connection not available",
		})
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "shopfront",
		"session": srv.session.Snapshot().State.String(),
	})
}
