package chunker

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSegments(texts ...string) []Segment {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	segs := make([]Segment, len(texts))
	for i, text := range texts {
		segs[i] = Segment{
			ID:      fmt.Sprintf("seg-%d", i+1),
			Speaker: "alice",
			TS:      base.Add(time.Duration(i) * time.Minute),
			Text:    text,
		}
	}
	return segs
}

// repeatWords builds a text of n distinct words.
func repeatWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	return strings.Join(words, " ")
}

func TestNew_RejectsBadGeometry(t *testing.T) {
	_, err := New(0, 0, NewWordTokenizer())
	assert.Error(t, err)

	_, err = New(100, 100, NewWordTokenizer())
	assert.Error(t, err, "overlap equal to chunk size must be rejected")

	_, err = New(100, 150, NewWordTokenizer())
	assert.Error(t, err)

	_, err = New(100, -1, NewWordTokenizer())
	assert.Error(t, err)

	_, err = New(100, 99, NewWordTokenizer())
	assert.NoError(t, err)
}

func TestChunk_EmptyInput(t *testing.T) {
	c, err := New(100, 15, NewWordTokenizer())
	require.NoError(t, err)
	assert.Nil(t, c.Chunk(nil))
	assert.Nil(t, c.Chunk([]Segment{}))
}

func TestChunk_SingleSmallSegment(t *testing.T) {
	c, err := New(100, 15, NewWordTokenizer())
	require.NoError(t, err)

	chunks := c.Chunk(makeSegments("we should ship the release next week"))
	require.Len(t, chunks, 1)
	assert.Equal(t, []string{"seg-1"}, chunks[0].SegmentIDs)
	assert.LessOrEqual(t, chunks[0].TokenCount, 100)
	assert.Contains(t, chunks[0].Text, "ship the release")
	assert.Equal(t, 0, chunks[0].StartIdx)
}

func TestChunk_OversizedSegmentSpansChunks(t *testing.T) {
	c, err := New(50, 7, NewWordTokenizer())
	require.NoError(t, err)

	chunks := c.Chunk(makeSegments(repeatWords(200)))
	require.Greater(t, len(chunks), 1)
	for _, ch := range chunks {
		assert.Equal(t, []string{"seg-1"}, ch.SegmentIDs, "every chunk carries the oversized segment")
		assert.LessOrEqual(t, ch.TokenCount, 50)
	}
}

func TestChunk_CoverageAndOverlap(t *testing.T) {
	c, err := New(40, 6, NewWordTokenizer())
	require.NoError(t, err)

	segs := makeSegments(
		repeatWords(30),
		repeatWords(25),
		repeatWords(40),
		repeatWords(10),
	)
	chunks := c.Chunk(segs)
	require.Greater(t, len(chunks), 1)

	// Coverage: the union of chunk segment ids equals the input set.
	covered := map[string]bool{}
	for _, ch := range chunks {
		for _, id := range ch.SegmentIDs {
			covered[id] = true
		}
	}
	for _, seg := range segs {
		assert.True(t, covered[seg.ID], "segment %s must appear in some chunk", seg.ID)
	}

	// Overlap: consecutive chunks share tokens.
	for i := 1; i < len(chunks); i++ {
		assert.Less(t, chunks[i].StartIdx, chunks[i-1].EndIdx)
		assert.Equal(t, chunks[i-1].EndIdx-6, chunks[i].StartIdx)
	}

	// The final chunk terminates the sequence.
	last := chunks[len(chunks)-1]
	assert.LessOrEqual(t, last.TokenCount, 40)
}

func TestChunk_TokenCountBounded(t *testing.T) {
	c, err := New(25, 3, NewWordTokenizer())
	require.NoError(t, err)

	chunks := c.Chunk(makeSegments(repeatWords(120)))
	for i, ch := range chunks {
		assert.LessOrEqual(t, ch.TokenCount, 25, "chunk %d over budget", i)
		assert.Positive(t, ch.TokenCount)
	}
}

func TestChunk_StableAcrossRuns(t *testing.T) {
	c, err := New(30, 4, NewWordTokenizer())
	require.NoError(t, err)

	segs := makeSegments(repeatWords(50), repeatWords(60))
	first := c.Chunk(segs)
	second := c.Chunk(segs)
	assert.Equal(t, first, second)
}

func TestChunk_EncoderPath(t *testing.T) {
	tok := NewTokenizer("")
	if !tok.HasEncoder() {
		t.Skip("tokenizer data unavailable")
	}

	c, err := New(64, 9, tok)
	require.NoError(t, err)

	segs := makeSegments(repeatWords(80), repeatWords(70))
	chunks := c.Chunk(segs)
	require.NotEmpty(t, chunks)

	covered := map[string]bool{}
	for _, ch := range chunks {
		assert.LessOrEqual(t, ch.TokenCount, 64)
		for _, id := range ch.SegmentIDs {
			covered[id] = true
		}
	}
	assert.Len(t, covered, len(segs))

	for i := 1; i < len(chunks); i++ {
		assert.Less(t, chunks[i].StartIdx, chunks[i-1].EndIdx)
	}
}

func TestRenderSegment(t *testing.T) {
	seg := Segment{
		ID:      "seg-1",
		Speaker: "bob",
		TS:      time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		Text:    "let's review the roadmap",
	}
	assert.Equal(t, "[bob @ 2026-03-10T09:30:00Z]: let's review the roadmap\n", RenderSegment(seg))
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens("", 4))
	assert.Equal(t, 1, EstimateTokens("abcd", 4))
	assert.Equal(t, 2, EstimateTokens("abcdefgh", 4))
	assert.Equal(t, 2, EstimateTokens("abcdefghijk", 4))
	// Bad divisor falls back to the default.
	assert.Equal(t, 1, EstimateTokens("abcd", 0))
}

func TestTokenizer_WordFallback(t *testing.T) {
	tok := NewWordTokenizer()
	assert.False(t, tok.HasEncoder())
	assert.Equal(t, 5, tok.Count("one two three four five"))
	assert.Equal(t, 0, tok.Count("   "))
	assert.Nil(t, tok.Encode("anything"))
}
