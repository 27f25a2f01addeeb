package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/recapcrew/recap/pkg/database"
	testdb "github.com/recapcrew/recap/test/database"
	"github.com/recapcrew/recap/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// notifyTestEnv holds all wired-up components for an integration test.
type notifyTestEnv struct {
	dbClient  *database.Client
	publisher *EventPublisher
	manager   *ConnectionManager
	listener  *NotifyListener
	server    *httptest.Server
}

// setupNotifyTest wires publisher, listener, and manager together against
// a real PostgreSQL database (testcontainers locally, service container
// in CI). The WebSocket endpoint binds each connection to the meeting id
// in the query string.
func setupNotifyTest(t *testing.T) *notifyTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	publisher := NewEventPublisher(dbClient.DB())
	manager := NewConnectionManager(5 * time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleMeetingStream(r.Context(), conn, r.URL.Query().Get("meeting"))
	}))
	t.Cleanup(func() { server.Close() })

	return &notifyTestEnv{
		dbClient:  dbClient,
		publisher: publisher,
		manager:   manager,
		listener:  listener,
		server:    server,
	}
}

// streamFor opens a WebSocket bound to a meeting and waits until the
// connection is registered on the meeting channel.
func (env *notifyTestEnv) streamFor(t *testing.T, meetingID string) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):] + "/?meeting=" + meetingID
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])
	require.Equal(t, meetingID, msg["meeting_id"])

	// Registration happens before connection.established is sent, so the
	// subscriber is already visible here.
	require.GreaterOrEqual(t, env.manager.subscriberCount(MeetingChannel(meetingID)), 1)
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// --- Tests ---

func TestIntegration_ListenerSubscribedOnStart(t *testing.T) {
	env := setupNotifyTest(t)
	assert.True(t, env.listener.isListening(NotifyChannel))
}

func TestIntegration_SummaryUpdateReachesWebSocket(t *testing.T) {
	env := setupNotifyTest(t)
	ctx := context.Background()

	conn := env.streamFor(t, "meeting-e2e")

	err := env.publisher.PublishSummaryUpdate(ctx, NewSummaryUpdate("meeting-e2e"))
	require.NoError(t, err)

	// The event arrives via pg_notify → listener → manager.
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeSummaryUpdate, msg["type"])
	assert.Equal(t, "meeting-e2e", msg["meeting_id"])
}

func TestIntegration_SegmentAddedCarriesCount(t *testing.T) {
	env := setupNotifyTest(t)
	ctx := context.Background()

	conn := env.streamFor(t, "meeting-seg")

	err := env.publisher.PublishSegmentAdded(ctx, NewSegmentAdded("meeting-seg", "seg-42", 3))
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeSegmentAdded, msg["type"])
	assert.Equal(t, "seg-42", msg["segment_id"])
	assert.Equal(t, float64(3), msg["count"])
}

func TestIntegration_MeetingIsolation(t *testing.T) {
	env := setupNotifyTest(t)
	ctx := context.Background()

	connA := env.streamFor(t, "meeting-a")
	connB := env.streamFor(t, "meeting-b")

	require.NoError(t, env.publisher.PublishSummaryUpdate(ctx, NewSummaryUpdate("meeting-a")))

	msg := readJSONTimeout(t, connA, 5*time.Second)
	assert.Equal(t, "meeting-a", msg["meeting_id"])

	// The other meeting's stream stays quiet.
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err := connB.Read(readCtx)
	assert.Error(t, err, "meeting-b stream should not see meeting-a events")
}

func TestIntegration_EventsOrderedPerMeeting(t *testing.T) {
	env := setupNotifyTest(t)
	ctx := context.Background()

	conn := env.streamFor(t, "meeting-order")

	for i := 1; i <= 5; i++ {
		require.NoError(t, env.publisher.PublishSegmentAdded(ctx,
			NewSegmentAdded("meeting-order", "seg", i)))
	}

	// NOTIFY preserves publish order on a single channel.
	for i := 1; i <= 5; i++ {
		msg := readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, float64(i), msg["count"])
	}
}
