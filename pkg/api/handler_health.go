package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/recapcrew/recap/pkg/database"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthzHandler handles GET /healthz.
// Database and worker pool decide liveness; the inference backend only
// degrades the status, so an LLM outage does not get the service
// restarted while ingest and reads still work.
func (s *Server) healthzHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.workerPool != nil {
		poolHealth := s.workerPool.Health()
		if poolHealth != nil && !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if poolHealth.DBError != "" {
				msg = poolHealth.DBError
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.inference != nil {
		if err := s.inference.Healthz(reqCtx); err != nil {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["inference"] = HealthCheck{Status: healthStatusDegraded, Message: err.Error()}
		} else {
			checks["inference"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:    status,
		Database:  dbHealth,
		Checks:    checks,
		Timestamp: time.Now().UTC(),
	})
}
