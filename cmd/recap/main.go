// Recap summarization server — ingests meeting transcripts, runs the
// chunk/compose/annotate pipeline through queue workers, and serves the
// HTTP API with live summary streaming.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/recapcrew/recap/pkg/api"
	"github.com/recapcrew/recap/pkg/chunker"
	"github.com/recapcrew/recap/pkg/cleanup"
	"github.com/recapcrew/recap/pkg/config"
	"github.com/recapcrew/recap/pkg/database"
	"github.com/recapcrew/recap/pkg/events"
	"github.com/recapcrew/recap/pkg/inference"
	"github.com/recapcrew/recap/pkg/merger"
	"github.com/recapcrew/recap/pkg/queue"
	"github.com/recapcrew/recap/pkg/services"
	"github.com/recapcrew/recap/pkg/transcribe"
	"github.com/recapcrew/recap/pkg/version"
	"github.com/recapcrew/recap/pkg/watcher"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	envPath := flag.String("env-file", getEnv("ENV_FILE", ".env"),
		"Path to environment file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting recap",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID)

	ctx := context.Background()

	// 1. Load configuration
	pipeCfg, err := config.LoadPipelineConfig()
	if err != nil {
		slog.Error("Failed to load pipeline config", "error", err)
		os.Exit(1)
	}
	queueCfg, err := config.LoadQueueConfig()
	if err != nil {
		slog.Error("Failed to load queue config", "error", err)
		os.Exit(1)
	}
	infCfg, err := config.LoadInferenceConfig()
	if err != nil {
		slog.Error("Failed to load inference config", "error", err)
		os.Exit(1)
	}
	transcribeCfg, err := config.LoadTranscribeConfig()
	if err != nil {
		slog.Error("Failed to load transcription config", "error", err)
		os.Exit(1)
	}
	watcherCfg, err := config.LoadWatcherConfig()
	if err != nil {
		slog.Error("Failed to load watcher config", "error", err)
		os.Exit(1)
	}
	retentionCfg, err := config.LoadRetentionConfig()
	if err != nil {
		slog.Error("Failed to load retention config", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID, pipeCfg.MaxRetries); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Domain services
	meetingService := services.NewMeetingService(dbClient.Client)
	segmentService := services.NewSegmentService(dbClient.Client)
	summaryService := services.NewSummaryService(dbClient.Client)
	jobService := services.NewJobService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Inference and transcription clients
	llmClient := inference.NewClient(infCfg, pipeCfg)
	slog.Info("Inference client initialized", "base_url", infCfg.BaseURL())

	var transcriber transcribe.Transcriber
	if transcribeCfg.Enabled() {
		transcriber = transcribe.NewHTTPClient(transcribeCfg)
		slog.Info("Transcription client initialized", "endpoint", transcribeCfg.Endpoint)
	}

	// 5a. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(10 * time.Second)

	// NotifyListener holds a dedicated connection for LISTEN
	notifyListener := events.NewNotifyListener(dbConfig.ConnString(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	slog.Info("Streaming infrastructure initialized")

	// 6. Pipeline executor and worker pool
	tok := chunker.NewTokenizer(getEnv("TOKENIZER_MODEL", ""))
	chk, err := chunker.New(pipeCfg.ChunkSize, pipeCfg.OverlapTokens(), tok)
	if err != nil {
		slog.Error("Failed to build chunker", "error", err)
		os.Exit(1)
	}
	mrg := merger.New(merger.DefaultThreshold)

	executor := queue.NewExecutor(
		meetingService, segmentService, summaryService, jobService,
		llmClient, transcriber, eventPublisher, chk, mrg, pipeCfg, watcherCfg,
	)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, queueCfg, pipeCfg, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 6a. Batch monitor flushes aged sub-threshold backlogs
	batchMonitor := queue.NewBatchMonitor(meetingService, segmentService, jobService, pipeCfg)
	batchMonitor.Start(ctx)
	defer batchMonitor.Stop()

	// 6b. Job retention sweeper
	cleanupService := cleanup.NewService(retentionCfg, jobService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 6c. Audio input watcher (optional)
	var audioWatcher *watcher.Watcher
	if watcherCfg.Enabled() {
		audioWatcher = watcher.New(watcherCfg, jobService)
		if err := audioWatcher.Start(ctx); err != nil {
			slog.Error("Failed to start audio watcher", "error", err)
			os.Exit(1)
		}
		defer audioWatcher.Stop()
		slog.Info("Audio watcher started", "input_dir", watcherCfg.InputDir)
	}

	// 7. HTTP server
	server := api.NewServer(
		dbClient, meetingService, segmentService, summaryService, jobService,
		llmClient, eventPublisher, connManager, workerPool, pipeCfg, watcherCfg,
	)

	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 8. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Recap started successfully",
		"pod_id", podID,
		"workers", queueCfg.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop taking HTTP traffic first, then let
	// workers finish claimed jobs.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, queueCfg.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete jobs will be orphan-recovered")
	}

	slog.Info("Shutdown complete")
}
