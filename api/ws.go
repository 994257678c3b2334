package api

import (
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	// The daemon binds to loopback; the page is served from the browser's
	// own new tab origin, so origin checking is not useful here.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// suggestRequest is one keystroke's query. Seq increases monotonically
// on the client; it is echoed back so stale replies can be dropped on
// both ends.
type suggestRequest struct {
	Seq   uint64 `json:"seq"`
	Query string `json:"query"`
}

type suggestResponse struct {
	Seq   uint64   `json:"seq"`
	Query string   `json:"query"`
	Items []string `json:"items"`
}

// suggestWS serves the live suggestion channel. Each request is answered
// asynchronously; a reply is suppressed when a newer request has already
// arrived, so a slow autocomplete round trip for "a" can never overwrite
// the results for "ab".
func (h *handler) suggestWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Debug("suggest ws upgrade failed")
		return
	}
	defer conn.Close()

	// gorilla/websocket forbids concurrent writes.
	var writeMu sync.Mutex
	writeMsg := func(msg suggestResponse) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(msg)
	}

	var latestSeq atomic.Uint64

	for {
		var req suggestRequest
		if err := conn.ReadJSON(&req); err != nil {
			// Client went away; in-flight lookups just get dropped.
			return
		}
		latestSeq.Store(req.Seq)

		go func(req suggestRequest) {
			items, err := h.provider.Suggest(r.Context(), req.Query, h.mgr, h.rt.Settings())
			if err != nil {
				// Unresolvable input; nothing worth rendering.
				return
			}
			if latestSeq.Load() != req.Seq {
				return
			}
			if items == nil {
				items = []string{}
			}
			if err := writeMsg(suggestResponse{Seq: req.Seq, Query: req.Query, Items: items}); err != nil {
				logrus.WithError(err).Debug("suggest ws write failed")
			}
		}(req)
	}
}
