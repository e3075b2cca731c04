package httpserver

import (
	"net/http"

	"member-admin/pkg/errors"
	"member-admin/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "member-admin"
	serviceVersion = "1.0.0"
)

var errSourceUnavailable = errors.NewHTTPError(http.StatusServiceUnavailable, "Member source not available", http.StatusServiceUnavailable)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the service is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	stats := srv.memberUC.Stats(c.Request.Context())

	response.OK(c, gin.H{
		"status":     "healthy",
		"version":    serviceVersion,
		"service":    serviceName,
		"source":     srv.sourceName,
		"open_views": stats.OpenViews,
		"max_views":  stats.MaxViews,
		"view_ttl":   stats.TTL.String(),
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check that the member source is reachable
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.sourceCheck != nil {
		if err := srv.sourceCheck(ctx); err != nil {
			srv.logger.Warnf(ctx, "internal.httpserver.readyCheck: %v", err)
			response.Error(c, errSourceUnavailable, nil)
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": serviceVersion,
		"service": serviceName,
		"source":  srv.sourceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": serviceVersion,
		"service": serviceName,
	})
}
