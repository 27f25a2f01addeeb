// Package transcribe wraps the external speech-to-text backend and the
// audio format whitelist shared with the upload endpoint.
package transcribe

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// supportedFormats is the audio extension whitelist.
var supportedFormats = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".ogg":  true,
	".flac": true,
	".aac":  true,
	".wma":  true,
	".webm": true,
}

// SupportedFormat reports whether the file's extension is an accepted
// audio format. The check is case-insensitive.
func SupportedFormat(path string) bool {
	return supportedFormats[strings.ToLower(filepath.Ext(path))]
}

// SupportedFormats returns the accepted extensions, sorted.
func SupportedFormats() []string {
	out := make([]string, 0, len(supportedFormats))
	for ext := range supportedFormats {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// SpeechSegment is one diarized utterance from the backend.
type SpeechSegment struct {
	Speaker string        `json:"speaker"`
	Start   time.Duration `json:"start"`
	End     time.Duration `json:"end"`
	Text    string        `json:"text"`
}

// Transcription is the result of transcribing one audio file.
type Transcription struct {
	Text     string
	Language string
	Duration time.Duration
	Segments []SpeechSegment
}

// Transcriber converts an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (*Transcription, error)
}
