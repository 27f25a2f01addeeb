package events

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Dispatch routing is pure in-process logic; the LISTEN connection
// itself is covered by the database-backed tests in integration_test.go.

func TestNotifyListener_DispatchRoutesByMeetingID(t *testing.T) {
	manager := NewConnectionManager(5 * time.Second)
	listener := NewNotifyListener("host=localhost", manager)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		manager.HandleMeetingStream(r.Context(), conn, "meeting-route")
	}))
	defer server.Close()

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	require.Eventually(t, func() bool {
		return manager.subscriberCount(MeetingChannel("meeting-route")) == 1
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(NewSummaryUpdate("meeting-route"))
	listener.dispatch(NotifyChannel, payload)

	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeSummaryUpdate, msg["type"])
	assert.Equal(t, "meeting-route", msg["meeting_id"])
}

func TestNotifyListener_DispatchDropsPayloadWithoutMeetingID(t *testing.T) {
	manager := NewConnectionManager(5 * time.Second)
	listener := NewNotifyListener("host=localhost", manager)

	assert.NotPanics(t, func() {
		listener.dispatch(NotifyChannel, []byte(`{"type":"summary_update"}`))
		listener.dispatch(NotifyChannel, []byte(`not json`))
	})
}

func TestNotifyListener_SubscribeRequiresStart(t *testing.T) {
	manager := NewConnectionManager(5 * time.Second)
	listener := NewNotifyListener("host=localhost", manager)

	err := listener.Subscribe(t.Context(), NotifyChannel)
	assert.ErrorContains(t, err, "not established")
}
