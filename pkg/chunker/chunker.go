// Package chunker splits formatted transcripts into overlapping
// token-bounded chunks, each carrying the identifiers of the segments
// it covers.
package chunker

import (
	"fmt"
	"strings"
	"time"
)

// Segment is the transcript unit consumed by the chunker.
type Segment struct {
	ID      string
	Speaker string
	TS      time.Time
	Text    string
}

// Chunk is a token window over the rendered transcript.
type Chunk struct {
	Text       string
	TokenCount int
	SegmentIDs []string
	StartIdx   int
	EndIdx     int
}

// Chunker slides a fixed-size token window with overlap over the
// concatenated transcript.
type Chunker struct {
	chunkSize int
	overlap   int
	tok       *Tokenizer
}

// charRange is a half-open [start, end) character span in the rendered
// transcript.
type charRange struct {
	start int
	end   int
}

// New builds a chunker. Overlap must be strictly less than chunk size.
func New(chunkSize, overlap int, tok *Tokenizer) (*Chunker, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if overlap < 0 || overlap >= chunkSize {
		return nil, fmt.Errorf("overlap must be in [0, chunk size), got %d for chunk size %d", overlap, chunkSize)
	}
	if tok == nil {
		tok = NewWordTokenizer()
	}
	return &Chunker{chunkSize: chunkSize, overlap: overlap, tok: tok}, nil
}

// RenderSegment formats a single segment the way it appears in the
// concatenated transcript and in prompts.
func RenderSegment(seg Segment) string {
	return fmt.Sprintf("[%s @ %s]: %s\n", seg.Speaker, seg.TS.UTC().Format(time.RFC3339), seg.Text)
}

// render concatenates segments, recording each segment's character
// range inside the result. Rendered segments are joined by a single
// space.
func render(segments []Segment) (string, []charRange) {
	var b strings.Builder
	ranges := make([]charRange, len(segments))
	for i, seg := range segments {
		if i > 0 {
			b.WriteString(" ")
		}
		start := b.Len()
		b.WriteString(RenderSegment(seg))
		ranges[i] = charRange{start: start, end: b.Len()}
	}
	return b.String(), ranges
}

// Chunk splits segments into overlapping token windows. Every segment
// whose character range intersects a window's character range is
// attached to that chunk, so a single oversized segment spans multiple
// chunks and no segment is ever dropped.
func (c *Chunker) Chunk(segments []Segment) []Chunk {
	if len(segments) == 0 {
		return nil
	}

	text, ranges := render(segments)

	if c.tok.HasEncoder() {
		return c.chunkEncoded(segments, text, ranges)
	}
	return c.chunkWords(segments, text, ranges)
}

// chunkEncoded windows over BPE token ids. Character ranges are
// interpolated from the average chars-per-token ratio; chunk text comes
// from decoding the window, which is exact.
func (c *Chunker) chunkEncoded(segments []Segment, text string, ranges []charRange) []Chunk {
	tokens := c.tok.Encode(text)
	if len(tokens) == 0 {
		return nil
	}

	charsPerToken := float64(len(text)) / float64(len(tokens))

	var chunks []Chunk
	start := 0
	for {
		end := start + c.chunkSize
		if end > len(tokens) {
			end = len(tokens)
		}

		charStart := int(float64(start) * charsPerToken)
		charEnd := int(float64(end) * charsPerToken)
		if end == len(tokens) {
			charEnd = len(text)
		}

		chunks = append(chunks, Chunk{
			Text:       c.tok.Decode(tokens[start:end]),
			TokenCount: end - start,
			SegmentIDs: coveredSegments(segments, ranges, charStart, charEnd),
			StartIdx:   start,
			EndIdx:     end,
		})

		if end >= len(tokens) {
			break
		}
		start = end - c.overlap
	}
	return chunks
}

// chunkWords windows over whitespace-delimited words with exact
// character offsets.
func (c *Chunker) chunkWords(segments []Segment, text string, ranges []charRange) []Chunk {
	words, offsets := splitWords(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []Chunk
	start := 0
	for {
		end := start + c.chunkSize
		if end > len(words) {
			end = len(words)
		}

		charStart := offsets[start].start
		charEnd := offsets[end-1].end

		chunks = append(chunks, Chunk{
			Text:       text[charStart:charEnd],
			TokenCount: end - start,
			SegmentIDs: coveredSegments(segments, ranges, charStart, charEnd),
			StartIdx:   start,
			EndIdx:     end,
		})

		if end >= len(words) {
			break
		}
		start = end - c.overlap
	}
	return chunks
}

// splitWords returns whitespace-delimited words plus their character
// ranges in the source text.
func splitWords(text string) ([]string, []charRange) {
	var words []string
	var offsets []charRange
	inWord := false
	wordStart := 0
	for i, r := range text {
		isSpace := r == ' ' || r == '\t' || r == '\n' || r == '\r'
		if !inWord && !isSpace {
			inWord = true
			wordStart = i
		} else if inWord && isSpace {
			inWord = false
			words = append(words, text[wordStart:i])
			offsets = append(offsets, charRange{start: wordStart, end: i})
		}
	}
	if inWord {
		words = append(words, text[wordStart:])
		offsets = append(offsets, charRange{start: wordStart, end: len(text)})
	}
	return words, offsets
}

// coveredSegments returns ids of segments whose character range
// intersects [charStart, charEnd).
func coveredSegments(segments []Segment, ranges []charRange, charStart, charEnd int) []string {
	var ids []string
	for i, r := range ranges {
		if r.start < charEnd && r.end > charStart {
			ids = append(ids, segments[i].ID)
		}
	}
	return ids
}
