package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(NewSummaryUpdate("abc-123"))

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeSummaryUpdate)
		assert.Contains(t, result, "abc-123")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		oversized := map[string]any{
			"type":       EventTypeSegmentAdded,
			"meeting_id": "abc-123",
			"segment_id": strings.Repeat("x", 8000),
		}
		payload, _ := json.Marshal(oversized)

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		oversized := map[string]any{
			"type":       EventTypeSummaryUpdate,
			"meeting_id": "meet-789",
			"padding":    strings.Repeat("a", 8000),
		}
		payload, _ := json.Marshal(oversized)

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeSummaryUpdate)
		assert.Contains(t, result, "meet-789")
	})

	t.Run("rejects non-JSON oversized payload", func(t *testing.T) {
		_, err := buildTruncatedPayload([]byte(strings.Repeat("{", 8001)))
		assert.Error(t, err)
	})
}

func TestPayloadConstructors(t *testing.T) {
	su := NewSummaryUpdate("m-1")
	assert.Equal(t, EventTypeSummaryUpdate, su.Type)
	assert.Equal(t, "m-1", su.MeetingID)

	sa := NewSegmentAdded("m-1", "s-9", 42)
	assert.Equal(t, EventTypeSegmentAdded, sa.Type)
	assert.Equal(t, "s-9", sa.SegmentID)
	assert.Equal(t, 42, sa.Count)

	// Wire shape the WebSocket clients depend on.
	data, err := json.Marshal(sa)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"segment_added","meeting_id":"m-1","segment_id":"s-9","count":42}`, string(data))
}

func TestMeetingChannel(t *testing.T) {
	assert.Equal(t, "meeting:abc", MeetingChannel("abc"))
}
