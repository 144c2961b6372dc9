package httpserver

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"ikraph-email-agent/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "iKraph email agent"
	HealthVersion = "1.0.0"
	ServiceName   = "ikraph-email-agent"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck runs every readiness check (e.g. Neo4j connectivity) and answers 503 if any fails.
// @Summary Readiness Check
// @Description Check if the API and its dependencies are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "A dependency is unavailable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	names := make([]string, 0, len(srv.checks))
	for name := range srv.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make(map[string]string, len(names))
	ready := true
	for _, name := range names {
		if err := srv.checks[name](ctx); err != nil {
			srv.l.Warnf(ctx, "readiness check %s failed: %v", name, err)
			deps[name] = err.Error()
			ready = false
			continue
		}
		deps[name] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "not ready",
			Data:      gin.H{"dependencies": deps},
		})
		return
	}

	response.OK(c, gin.H{
		"status":       "ready",
		"message":      HealthMessage,
		"version":      HealthVersion,
		"service":      ServiceName,
		"dependencies": deps,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
