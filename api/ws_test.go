package api_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wsSuggestMsg struct {
	Seq   uint64   `json:"seq"`
	Query string   `json:"query"`
	Items []string `json:"items"`
}

func dialSuggestWS(t *testing.T, e *testEnv) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(e.srv.URL, "http") + "/api/suggest/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWSSuggest(t *testing.T) {
	ac := acServer(t, "trending topics")
	e := newTestEnv(t, ac.URL)
	conn := dialSuggestWS(t, e)

	require.NoError(t, conn.WriteJSON(map[string]any{"seq": 1, "query": "y tr"}))

	var msg wsSuggestMsg
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, uint64(1), msg.Seq)
	assert.Equal(t, "y tr", msg.Query)
	assert.Equal(t, []string{"y trending", "y trending topics"}, msg.Items)
}

func TestWSSuggestStaleReplySuppressed(t *testing.T) {
	release := make(chan struct{})
	arrived := make(chan struct{})
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-release
		fmt.Fprint(w, `[{"phrase":"slow answer"}]`)
	}))
	defer slow.Close()

	e := newTestEnv(t, slow.URL)
	conn := dialSuggestWS(t, e)

	// First query hangs in autocomplete; the second resolves to an exact
	// key and answers immediately without touching the external source.
	require.NoError(t, conn.WriteJSON(map[string]any{"seq": 1, "query": "y a"}))
	<-arrived
	require.NoError(t, conn.WriteJSON(map[string]any{"seq": 2, "query": "y"}))

	var msg wsSuggestMsg
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, uint64(2), msg.Seq)
	assert.Equal(t, []string{"y trending", "y music"}, msg.Items)

	// Let the slow lookup finish; its reply must be dropped. A short
	// read window catching nothing is the pass condition.
	close(release)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	var extra wsSuggestMsg
	err := conn.ReadJSON(&extra)
	assert.Error(t, err, "stale reply should never arrive, got %+v", extra)
}
