package config

import "time"

// TranscribeConfig describes the speech-to-text backend.
type TranscribeConfig struct {
	// Endpoint is the transcription server URL; empty disables the
	// audio ingest path.
	Endpoint string

	// Language hint; "auto" lets the backend detect.
	Language string

	// RequestTimeout bounds a single transcription call. Audio files
	// can take a while, so this defaults high.
	RequestTimeout time.Duration
}

// DefaultTranscribeConfig returns the built-in transcription defaults.
func DefaultTranscribeConfig() *TranscribeConfig {
	return &TranscribeConfig{
		Language:       "auto",
		RequestTimeout: 10 * time.Minute,
	}
}

// LoadTranscribeConfig loads transcription configuration from the
// environment.
func LoadTranscribeConfig() (*TranscribeConfig, error) {
	cfg := DefaultTranscribeConfig()
	cfg.Endpoint = envString("TRANSCRIBE_ENDPOINT", "")
	cfg.Language = envString("TRANSCRIBE_LANGUAGE", cfg.Language)

	var err error
	if cfg.RequestTimeout, err = envSeconds("TRANSCRIBE_TIMEOUT", cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Enabled reports whether the audio ingest path is configured.
func (c *TranscribeConfig) Enabled() bool {
	return c.Endpoint != ""
}
