package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// getJobHandler handles GET /api/v1/jobs/:id.
func (s *Server) getJobHandler(c *echo.Context) error {
	jobID := c.Param("id")
	if jobID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "job id is required")
	}

	j, err := s.jobs.GetJob(c.Request().Context(), jobID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, jobResponse(j))
}

// listJobsHandler handles GET /api/v1/jobs?limit=N.
func (s *Server) listJobsHandler(c *echo.Context) error {
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 200 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-200")
		}
		limit = n
	}

	jobs, total, err := s.jobs.ListJobs(c.Request().Context(), limit)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &JobListResponse{
		Jobs:  make([]*JobResponse, 0, len(jobs)),
		Total: total,
	}
	for _, j := range jobs {
		resp.Jobs = append(resp.Jobs, jobResponse(j))
	}
	return c.JSON(http.StatusOK, resp)
}

// statsHandler handles GET /api/v1/stats.
func (s *Server) statsHandler(c *echo.Context) error {
	jobStats, err := s.jobs.Stats(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	resp := &StatsResponse{Jobs: jobStats}
	if s.workerPool != nil {
		resp.WorkerPool = s.workerPool.Health()
	}
	if s.connManager != nil {
		resp.ActiveConnections = s.connManager.ActiveConnections()
	}
	return c.JSON(http.StatusOK, resp)
}
