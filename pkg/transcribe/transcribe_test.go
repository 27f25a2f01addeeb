package transcribe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/recapcrew/recap/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedFormat(t *testing.T) {
	assert.True(t, SupportedFormat("meeting.mp3"))
	assert.True(t, SupportedFormat("/tmp/in/Standup.WAV"))
	assert.True(t, SupportedFormat("call.webm"))
	assert.False(t, SupportedFormat("notes.txt"))
	assert.False(t, SupportedFormat("archive.zip"))
	assert.False(t, SupportedFormat("noextension"))
}

func TestSupportedFormats_Sorted(t *testing.T) {
	formats := SupportedFormats()
	assert.Len(t, formats, 8)
	assert.Contains(t, formats, ".mp3")
	assert.Contains(t, formats, ".flac")
	for i := 1; i < len(formats); i++ {
		assert.Less(t, formats[i-1], formats[i])
	}
}

func TestHTTPClient_Transcribe(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "meeting.wav")
	require.NoError(t, os.WriteFile(audioPath, []byte("RIFF fake audio"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inference", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "meeting.wav", header.Filename)

		_, _ = w.Write([]byte(`{
			"text": " hello everyone ",
			"language": "en",
			"segments": [
				{"speaker": "SPEAKER_00", "start": 0.0, "end": 2.5, "text": "hello"},
				{"start": 2.5, "end": 4.0, "text": "everyone"}
			]
		}`))
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultTranscribeConfig()
	cfg.Endpoint = srv.URL
	c := NewHTTPClient(cfg)

	out, err := c.Transcribe(context.Background(), audioPath)
	require.NoError(t, err)

	assert.Equal(t, "hello everyone", out.Text)
	assert.Equal(t, "en", out.Language)
	assert.Equal(t, 4*time.Second, out.Duration)
	require.Len(t, out.Segments, 2)
	assert.Equal(t, "SPEAKER_00", out.Segments[0].Speaker)
	assert.Equal(t, "speaker", out.Segments[1].Speaker, "missing speaker label gets a default")
	assert.Equal(t, 2500*time.Millisecond, out.Segments[0].End)
}

func TestHTTPClient_RejectsUnsupportedFormat(t *testing.T) {
	cfg := config.DefaultTranscribeConfig()
	cfg.Endpoint = "http://localhost:9999"
	c := NewHTTPClient(cfg)

	_, err := c.Transcribe(context.Background(), "/tmp/notes.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported audio format")
}

func TestHTTPClient_BackendError(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "meeting.mp3")
	require.NoError(t, os.WriteFile(audioPath, []byte("ID3 fake audio"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultTranscribeConfig()
	cfg.Endpoint = srv.URL
	c := NewHTTPClient(cfg)

	_, err := c.Transcribe(context.Background(), audioPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
