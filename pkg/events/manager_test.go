package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestManager(t *testing.T, meetingID string) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(5 * time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleMeetingStream(r.Context(), conn, meetingID)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, "meeting-1")
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
	assert.Equal(t, "meeting-1", msg["meeting_id"])
}

func TestConnectionManager_AutoSubscribedToMeetingChannel(t *testing.T) {
	manager, server := setupTestManager(t, "meeting-auto")

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(MeetingChannel("meeting-auto")) == 2
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(NewSummaryUpdate("meeting-auto"))
	manager.Broadcast(MeetingChannel("meeting-auto"), payload)

	// Both clients receive without sending any subscribe message
	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)
	assert.Equal(t, EventTypeSummaryUpdate, msg1["type"])
	assert.Equal(t, "meeting-auto", msg1["meeting_id"])
	assert.Equal(t, EventTypeSummaryUpdate, msg2["type"])
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t, "meeting-ping")
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pingMsg, _ := json.Marshal(ClientMessage{Action: "ping"})
	err := conn.Write(ctx, websocket.MessageText, pingMsg)
	require.NoError(t, err)

	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_SubscribeSecondMeeting(t *testing.T) {
	manager, server := setupTestManager(t, "meeting-a")
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: MeetingChannel("meeting-b")})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "meeting:meeting-b", msg["channel"])

	payload, _ := json.Marshal(NewSegmentAdded("meeting-b", "seg-1", 7))
	manager.Broadcast(MeetingChannel("meeting-b"), payload)

	got := readJSON(t, conn)
	assert.Equal(t, EventTypeSegmentAdded, got["type"])
	assert.Equal(t, "seg-1", got["segment_id"])
	assert.Equal(t, float64(7), got["count"])
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t, "meeting-unsub")
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	channel := MeetingChannel("meeting-unsub")
	unsubMsg, _ := json.Marshal(ClientMessage{Action: "unsubscribe", Channel: channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, unsubMsg))

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 0
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(NewSummaryUpdate("meeting-unsub"))
	manager.Broadcast(channel, payload)

	// Try to read — should timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive message after unsubscribe")
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	// Clients on different meetings must not see each other's events.
	manager := NewConnectionManager(5 * time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		manager.HandleMeetingStream(r.Context(), conn, r.URL.Query().Get("meeting"))
	}))
	defer server.Close()

	dial := func(meetingID string) *websocket.Conn {
		url := "ws" + server.URL[len("http"):] + "/?meeting=" + meetingID
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		conn, _, err := websocket.Dial(ctx, url, nil)
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
		return conn
	}

	conn1 := dial("m1")
	conn2 := dial("m2")
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(MeetingChannel("m1")) == 1 &&
			manager.subscriberCount(MeetingChannel("m2")) == 1
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(NewSummaryUpdate("m1"))
	manager.Broadcast(MeetingChannel("m1"), payload)

	msg := readJSON(t, conn1)
	assert.Equal(t, "m1", msg["meeting_id"])

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn2.Read(readCtx)
	assert.Error(t, err, "conn2 should not receive m1 broadcast")
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	manager, server := setupTestManager(t, "meeting-conc")
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := MeetingChannel("meeting-conc")
	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 1
	}, 2*time.Second, 10*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payload, _ := json.Marshal(NewSummaryUpdate("meeting-conc"))
			manager.Broadcast(channel, payload)
		}()
	}
	wg.Wait()

	received := 0
	var firstErr error
	for i := 0; i < 20; i++ {
		readCtx, readCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			firstErr = err
			break
		}
		received++
	}
	assert.Equal(t, 20, received, "should receive all 20 broadcast messages; first error: %v", firstErr)
}

func TestConnectionManager_BroadcastToNonExistentChannel(t *testing.T) {
	manager := NewConnectionManager(5 * time.Second)

	// Should not panic
	payload, _ := json.Marshal(NewSummaryUpdate("nobody-home"))
	manager.Broadcast(MeetingChannel("nobody-home"), payload)
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t, "meeting-val")
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: ""})
	conn.Write(ctx, websocket.MessageText, subMsg)
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	unsubMsg, _ := json.Marshal(ClientMessage{Action: "unsubscribe", Channel: ""})
	conn.Write(ctx, websocket.MessageText, unsubMsg)
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	// Connection should still be alive after validation errors
	pingMsg, _ := json.Marshal(ClientMessage{Action: "ping"})
	conn.Write(ctx, websocket.MessageText, pingMsg)
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t, "meeting-cleanup")

	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	_, _, err = conn.Read(ctx) // connection.established
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 1
	}, 2*time.Second, 10*time.Millisecond)

	conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, manager.subscriberCount(MeetingChannel("meeting-cleanup")))

	// Broadcast should not panic
	payload, _ := json.Marshal(NewSummaryUpdate("meeting-cleanup"))
	assert.NotPanics(t, func() {
		manager.Broadcast(MeetingChannel("meeting-cleanup"), payload)
	})
}
