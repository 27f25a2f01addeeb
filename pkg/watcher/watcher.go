// Package watcher feeds dropped audio files into the job queue. It
// combines fsnotify events with a periodic rescan so files are picked
// up even when a filesystem event is missed, and waits for files to
// stop growing before enqueueing them.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/recapcrew/recap/ent"
	"github.com/recapcrew/recap/pkg/config"
	"github.com/recapcrew/recap/pkg/models"
	"github.com/recapcrew/recap/pkg/transcribe"
)

// JobCreator is the enqueue surface the watcher needs. Implemented by
// services.JobService.
type JobCreator interface {
	CreateJob(ctx context.Context, meetingID, jobType string, payload map[string]any) (*ent.Job, error)
}

// Watcher watches the audio input directory and enqueues a
// PROCESS_AUDIO job per new file.
type Watcher struct {
	cfg  *config.WatcherConfig
	jobs JobCreator
	fsw  *fsnotify.Watcher

	// seen holds paths already enqueued, so fsnotify events and rescans
	// never double-enqueue the same file.
	mu   sync.Mutex
	seen map[string]struct{}

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a watcher for cfg.InputDir.
func New(cfg *config.WatcherConfig, jobs JobCreator) *Watcher {
	return &Watcher{
		cfg:    cfg,
		jobs:   jobs,
		seen:   make(map[string]struct{}),
		stopCh: make(chan struct{}),
	}
}

// Start creates the input directory if needed, scans files already
// sitting in it, and begins watching for new ones.
func (w *Watcher) Start(ctx context.Context) error {
	if err := os.MkdirAll(w.cfg.InputDir, 0o755); err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(w.cfg.InputDir); err != nil {
		_ = fsw.Close()
		return err
	}
	w.fsw = fsw

	w.scan(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()

	slog.Info("Audio watcher started",
		"input_dir", w.cfg.InputDir, "rescan_interval", w.cfg.RescanInterval)
	return nil
}

// Stop signals the watcher to stop and waits for in-flight handlers.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
	if w.fsw != nil {
		_ = w.fsw.Close()
	}
}

func (w *Watcher) run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.RescanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
				w.consider(ctx, event.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("Audio watcher error", "error", err)
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

// scan walks the input directory once, catching files whose events were
// missed, and forgets seen paths that no longer exist so a re-dropped
// file is processed again.
func (w *Watcher) scan(ctx context.Context) {
	entries, err := os.ReadDir(w.cfg.InputDir)
	if err != nil {
		slog.Warn("Failed to scan audio input directory", "dir", w.cfg.InputDir, "error", err)
		return
	}

	present := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(w.cfg.InputDir, entry.Name())
		present[path] = struct{}{}
		w.consider(ctx, path)
	}

	w.mu.Lock()
	for path := range w.seen {
		if _, ok := present[path]; !ok {
			delete(w.seen, path)
		}
	}
	w.mu.Unlock()
}

// consider enqueues a file unless it is unsupported or already seen.
func (w *Watcher) consider(ctx context.Context, path string) {
	if !transcribe.SupportedFormat(path) {
		return
	}

	w.mu.Lock()
	if _, dup := w.seen[path]; dup {
		w.mu.Unlock()
		return
	}
	w.seen[path] = struct{}{}
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.handleFile(ctx, path)
	}()
}

// handleFile waits for the file to settle, then enqueues the
// processing job. A vanished file is dropped silently; the executor
// owns everything after the enqueue.
func (w *Watcher) handleFile(ctx context.Context, path string) {
	if err := w.waitUntilSettled(ctx, path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, context.Canceled) {
			slog.Warn("Audio file did not settle", "path", path, "error", err)
		}
		w.forget(path)
		return
	}

	if _, err := w.jobs.CreateJob(ctx, "", models.JobTypeProcessAudio, map[string]any{"path": path}); err != nil {
		slog.Error("Failed to enqueue audio processing job", "path", path, "error", err)
		w.forget(path)
		return
	}
	slog.Info("Audio file queued for processing", "path", path)
}

// waitUntilSettled blocks until the file size stops changing for a full
// settle delay.
func (w *Watcher) waitUntilSettled(ctx context.Context, path string) error {
	var lastSize int64 = -1
	for {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if info.Size() == lastSize {
			return nil
		}
		lastSize = info.Size()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return context.Canceled
		case <-time.After(w.cfg.SettleDelay):
		}
	}
}

// forget drops a path from the dedupe set so a later event retries it.
func (w *Watcher) forget(path string) {
	w.mu.Lock()
	delete(w.seen, path)
	w.mu.Unlock()
}
