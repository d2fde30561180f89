package inspect

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/milk9111/physics2d/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := NewServer(Config{})
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		s.Close()
		srv.Close()
	})
	return s, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if resp != nil {
		resp.Body.Close()
	}
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) physics.Snapshot {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	var snap physics.Snapshot
	require.NoError(t, json.Unmarshal(payload, &snap))
	return snap
}

func waitClients(t *testing.T, s *Server, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return s.Clients() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestSnapshotEndpoint(t *testing.T) {
	s, srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/snapshot")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	s.Publish(physics.Snapshot{WorldID: "w", Frame: 7, Bodies: []physics.BodySnapshot{{Name: "crate", X: 10}}})

	resp, err = http.Get(srv.URL + "/snapshot")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var snap physics.Snapshot
	require.NoError(t, json.Unmarshal(body, &snap))
	assert.Equal(t, uint64(7), snap.Frame)
	require.Len(t, snap.Bodies, 1)
	assert.Equal(t, "crate", snap.Bodies[0].Name)
}

func TestWebsocketStreamsSnapshots(t *testing.T) {
	s, srv := newTestServer(t)
	s.Publish(physics.Snapshot{Frame: 1})

	conn := dial(t, srv)
	assert.Equal(t, uint64(1), readSnapshot(t, conn).Frame, "new clients get the latest snapshot")

	waitClients(t, s, 1)
	s.Publish(physics.Snapshot{Frame: 2})
	assert.Equal(t, uint64(2), readSnapshot(t, conn).Frame)
}

func TestWebsocketClientDisconnect(t *testing.T) {
	s, srv := newTestServer(t)
	conn := dial(t, srv)
	waitClients(t, s, 1)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()
	waitClients(t, s, 0)
	assert.NotPanics(t, func() { s.Publish(physics.Snapshot{Frame: 3}) })
}

func TestServerClose(t *testing.T) {
	s, srv := newTestServer(t)
	conn := dial(t, srv)
	waitClients(t, s, 1)

	s.Close()
	assert.Equal(t, 0, s.Clients())
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestPublishFromWorld(t *testing.T) {
	s, srv := newTestServer(t)
	w := physics.NewWorld(physics.DefaultWorldConfig())
	t.Cleanup(w.Destroy)

	conn := dial(t, srv)
	waitClients(t, s, 1)
	s.Publish(w.Snapshot())
	assert.Equal(t, w.ID().String(), readSnapshot(t, conn).WorldID)
}
