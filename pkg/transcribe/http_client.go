package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/recapcrew/recap/pkg/config"
)

// HTTPClient talks to a whisper-server style transcription endpoint:
// multipart POST /inference with the audio file, JSON response with
// text, language, and timestamped segments.
type HTTPClient struct {
	endpoint   string
	language   string
	httpClient *http.Client
}

// NewHTTPClient builds a transcription client from config.
func NewHTTPClient(cfg *config.TranscribeConfig) *HTTPClient {
	return &HTTPClient{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		language: cfg.Language,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

type inferenceResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		Speaker string  `json:"speaker"`
		Start   float64 `json:"start"`
		End     float64 `json:"end"`
		Text    string  `json:"text"`
	} `json:"segments"`
}

// Transcribe uploads the audio file and returns the transcription.
func (c *HTTPClient) Transcribe(ctx context.Context, path string) (*Transcription, error) {
	if !SupportedFormat(path) {
		return nil, fmt.Errorf("unsupported audio format: %s", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(path))
		if err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, f); err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		if c.language != "" && c.language != "auto" {
			if err := mw.WriteField("language", c.language); err != nil {
				_ = pw.CloseWithError(err)
				return
			}
		}
		_ = pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/inference", pr)
	if err != nil {
		return nil, fmt.Errorf("failed to build transcription request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 50<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read transcription response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("transcription backend returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed inferenceResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("malformed transcription response: %w", err)
	}

	out := &Transcription{
		Text:     strings.TrimSpace(parsed.Text),
		Language: parsed.Language,
	}
	for _, seg := range parsed.Segments {
		speaker := seg.Speaker
		if speaker == "" {
			speaker = "speaker"
		}
		out.Segments = append(out.Segments, SpeechSegment{
			Speaker: speaker,
			Start:   secondsToDuration(seg.Start),
			End:     secondsToDuration(seg.End),
			Text:    strings.TrimSpace(seg.Text),
		})
		if end := secondsToDuration(seg.End); end > out.Duration {
			out.Duration = end
		}
	}
	return out, nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
