// Package api is the HTTP surface of the summarization service:
// meeting lifecycle, transcript ingest, summary reads, audio upload,
// job introspection, and the WebSocket stream.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/recapcrew/recap/pkg/config"
	"github.com/recapcrew/recap/pkg/database"
	"github.com/recapcrew/recap/pkg/events"
	"github.com/recapcrew/recap/pkg/queue"
	"github.com/recapcrew/recap/pkg/services"
)

// InferencePinger is the health-check surface of the inference client.
// Implemented by inference.Client.
type InferencePinger interface {
	Healthz(ctx context.Context) error
}

// Server holds the handler dependencies. Optional collaborators
// (worker pool, events, inference) may be nil; the affected endpoints
// degrade instead of failing at startup.
type Server struct {
	dbClient  *database.Client
	meetings  *services.MeetingService
	segments  *services.SegmentService
	summaries *services.SummaryService
	jobs      *services.JobService

	inference   InferencePinger
	publisher   *events.EventPublisher
	connManager *events.ConnectionManager
	workerPool  *queue.WorkerPool

	pipeCfg    *config.PipelineConfig
	watcherCfg *config.WatcherConfig
}

// NewServer wires the API server.
func NewServer(
	dbClient *database.Client,
	meetings *services.MeetingService,
	segments *services.SegmentService,
	summaries *services.SummaryService,
	jobs *services.JobService,
	inference InferencePinger,
	publisher *events.EventPublisher,
	connManager *events.ConnectionManager,
	workerPool *queue.WorkerPool,
	pipeCfg *config.PipelineConfig,
	watcherCfg *config.WatcherConfig,
) *Server {
	return &Server{
		dbClient:    dbClient,
		meetings:    meetings,
		segments:    segments,
		summaries:   summaries,
		jobs:        jobs,
		inference:   inference,
		publisher:   publisher,
		connManager: connManager,
		workerPool:  workerPool,
		pipeCfg:     pipeCfg,
		watcherCfg:  watcherCfg,
	}
}

// Router builds the echo instance with all routes registered.
func (s *Server) Router() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/healthz", s.healthzHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/meetings", s.createMeetingHandler)
	v1.GET("/meetings/:id", s.getMeetingHandler)
	v1.POST("/meetings/:id/finalize", s.finalizeMeetingHandler)
	v1.GET("/meetings/:id/summary", s.getSummaryHandler)
	v1.GET("/meetings/:id/stream", s.streamHandler)
	v1.POST("/ingest/segment", s.ingestSegmentHandler)
	v1.POST("/process-audio", s.processAudioHandler)
	v1.GET("/jobs", s.listJobsHandler)
	v1.GET("/jobs/:id", s.getJobHandler)
	v1.GET("/stats", s.statsHandler)

	return e
}

// notImplemented is kept for endpoints gated on optional collaborators.
func notImplemented(feature string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusServiceUnavailable, feature+" not available")
}
