package chunker

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Tokenizer wraps a tiktoken encoding with a whitespace-word fallback.
// When the encoding cannot be initialized (offline BPE data, unknown
// model) every method degrades to word counting; both paths are stable
// within a process.
type Tokenizer struct {
	enc *tiktoken.Tiktoken
}

// NewTokenizer builds a tokenizer for the given model name. An empty
// model selects the cl100k_base encoding directly.
func NewTokenizer(model string) *Tokenizer {
	if model != "" {
		if enc, err := tiktoken.EncodingForModel(model); err == nil {
			return &Tokenizer{enc: enc}
		}
	}
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return &Tokenizer{}
	}
	return &Tokenizer{enc: enc}
}

// NewWordTokenizer forces the whitespace-word fallback. Used by tests
// and deployments without tokenizer data.
func NewWordTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// HasEncoder reports whether a real BPE encoding is available.
func (t *Tokenizer) HasEncoder() bool {
	return t.enc != nil
}

// Count returns the token count of text.
func (t *Tokenizer) Count(text string) int {
	if t.enc != nil {
		return len(t.enc.Encode(text, nil, nil))
	}
	return len(strings.Fields(text))
}

// Encode returns token ids for text. Only valid when HasEncoder.
func (t *Tokenizer) Encode(text string) []int {
	if t.enc == nil {
		return nil
	}
	return t.enc.Encode(text, nil, nil)
}

// Decode reverses Encode. Only valid when HasEncoder.
func (t *Tokenizer) Decode(tokens []int) string {
	if t.enc == nil {
		return ""
	}
	return t.enc.Decode(tokens)
}

// EstimateTokens is the cheap ingest-path estimator: one token per
// charsPerToken characters. The chunker's own tokenizer is
// authoritative; this is intentionally conservative.
func EstimateTokens(text string, charsPerToken int) int {
	if charsPerToken <= 0 {
		charsPerToken = 4
	}
	return len(text) / charsPerToken
}
