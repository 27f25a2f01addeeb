package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/recapcrew/recap/ent"
	"github.com/recapcrew/recap/pkg/config"
	"github.com/recapcrew/recap/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingJobCreator captures enqueued jobs without a database.
type recordingJobCreator struct {
	mu   sync.Mutex
	jobs []map[string]any
}

func (r *recordingJobCreator) CreateJob(_ context.Context, meetingID, jobType string, payload map[string]any) (*ent.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, map[string]any{
		"meeting_id": meetingID,
		"job_type":   jobType,
		"payload":    payload,
	})
	return &ent.Job{ID: "job-1", JobType: jobType}, nil
}

func (r *recordingJobCreator) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}

func (r *recordingJobCreator) paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, j := range r.jobs {
		payload := j["payload"].(map[string]any)
		out = append(out, payload["path"].(string))
	}
	return out
}

func testWatcherConfig(dir string) *config.WatcherConfig {
	return &config.WatcherConfig{
		InputDir:       dir,
		RescanInterval: 100 * time.Millisecond,
		SettleDelay:    30 * time.Millisecond,
	}
}

func startWatcher(t *testing.T, cfg *config.WatcherConfig, jobs JobCreator) *Watcher {
	t.Helper()
	w := New(cfg, jobs)
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(w.Stop)
	return w
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("fake audio bytes"), 0o644))
}

func TestWatcher_PicksUpExistingFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "standup.mp3")
	writeFile(t, existing)

	rec := &recordingJobCreator{}
	startWatcher(t, testWatcherConfig(dir), rec)

	require.Eventually(t, func() bool { return rec.count() == 1 },
		2*time.Second, 20*time.Millisecond, "startup scan should enqueue the existing file")

	assert.Equal(t, []string{existing}, rec.paths())
	assert.Equal(t, models.JobTypeProcessAudio, rec.jobs[0]["job_type"])
	assert.Equal(t, "", rec.jobs[0]["meeting_id"], "audio jobs have no meeting yet")
}

func TestWatcher_DetectsNewFiles(t *testing.T) {
	dir := t.TempDir()
	rec := &recordingJobCreator{}
	startWatcher(t, testWatcherConfig(dir), rec)

	dropped := filepath.Join(dir, "retro.wav")
	writeFile(t, dropped)

	require.Eventually(t, func() bool { return rec.count() == 1 },
		2*time.Second, 20*time.Millisecond)
	assert.Equal(t, []string{dropped}, rec.paths())
}

func TestWatcher_IgnoresUnsupportedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, "README.md"))

	rec := &recordingJobCreator{}
	startWatcher(t, testWatcherConfig(dir), rec)

	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, rec.count(), "non-audio files must be ignored")
}

func TestWatcher_DeduplicatesAcrossRescans(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "planning.m4a"))

	rec := &recordingJobCreator{}
	startWatcher(t, testWatcherConfig(dir), rec)

	require.Eventually(t, func() bool { return rec.count() == 1 },
		2*time.Second, 20*time.Millisecond)

	// Several rescan intervals pass; the file stays put but must not be
	// enqueued again.
	time.Sleep(350 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestWatcher_WaitsForFileToSettle(t *testing.T) {
	dir := t.TempDir()
	rec := &recordingJobCreator{}

	cfg := testWatcherConfig(dir)
	cfg.SettleDelay = 100 * time.Millisecond
	startWatcher(t, cfg, rec)

	// Simulate a slow upload: keep appending for a while.
	path := filepath.Join(dir, "allhands.flac")
	f, err := os.Create(path)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = f.WriteString("more audio data ")
		require.NoError(t, err)
		require.NoError(t, f.Sync())
		time.Sleep(40 * time.Millisecond)
	}
	require.NoError(t, f.Close())

	require.Eventually(t, func() bool { return rec.count() == 1 },
		3*time.Second, 20*time.Millisecond, "file should be enqueued once it stops growing")
	assert.Equal(t, []string{path}, rec.paths())
}

func TestWatcher_ReprocessesRedroppedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weekly.ogg")
	writeFile(t, path)

	rec := &recordingJobCreator{}
	startWatcher(t, testWatcherConfig(dir), rec)

	require.Eventually(t, func() bool { return rec.count() == 1 },
		2*time.Second, 20*time.Millisecond)

	// Processing normally moves the file away; a later drop with the
	// same name is a new recording.
	require.NoError(t, os.Remove(path))
	time.Sleep(250 * time.Millisecond) // rescan forgets the vanished path
	writeFile(t, path)

	require.Eventually(t, func() bool { return rec.count() == 2 },
		2*time.Second, 20*time.Millisecond)
}
