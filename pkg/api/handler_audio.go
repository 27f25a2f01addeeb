package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	echo "github.com/labstack/echo/v5"
	"github.com/google/uuid"

	"github.com/recapcrew/recap/pkg/models"
	"github.com/recapcrew/recap/pkg/transcribe"
)

// processAudioHandler handles POST /api/v1/process-audio.
// Accepts a multipart upload, stores the file in the watcher's input
// directory, and enqueues a PROCESS_AUDIO job pointing at it. The
// meeting is created later by the job, from the transcription.
func (s *Server) processAudioHandler(c *echo.Context) error {
	if s.watcherCfg == nil || s.watcherCfg.InputDir == "" {
		return notImplemented("audio processing")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart file field is required")
	}

	name := filepath.Base(fileHeader.Filename)
	if !transcribe.SupportedFormat(name) {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("unsupported audio format %s: accepted formats are %s",
				filepath.Ext(name), strings.Join(transcribe.SupportedFormats(), " ")))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read upload")
	}
	defer src.Close()

	// Uploads go into a subdirectory the watcher does not scan; this
	// handler enqueues the job itself, and the watcher must not see the
	// file and enqueue a second one.
	uploadDir := filepath.Join(s.watcherCfg.InputDir, "uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to prepare upload directory")
	}

	// A unique prefix keeps concurrent uploads of the same file apart.
	dest := filepath.Join(uploadDir,
		fmt.Sprintf("%s-%s", uuid.New().String()[:8], name))
	out, err := os.Create(dest)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store upload")
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dest)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store upload")
	}

	j, err := s.jobs.CreateJob(c.Request().Context(), "", models.JobTypeProcessAudio,
		map[string]any{"path": dest})
	if err != nil {
		_ = os.Remove(dest)
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, &UploadResponse{
		JobID:    j.ID,
		FileName: name,
		Status:   "queued",
	})
}
