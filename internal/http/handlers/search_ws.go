package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mindwell/intake-platform/internal/catalog"
	"github.com/mindwell/intake-platform/internal/observability/metrics"
	"github.com/mindwell/intake-platform/internal/search"
	"github.com/mindwell/intake-platform/pkg/logging"
)

// LiveSearchHandler streams debounced search results over a websocket.
// The client sends {"query": "..."} on every keystroke; the server runs
// the quiescence debounce and pushes results for the most recent query
// only.
type LiveSearchHandler struct {
	index    *search.Index
	debounce time.Duration
	metrics  *metrics.SearchMetrics
	logger   *logging.Logger
	upgrader websocket.Upgrader
}

// NewLiveSearchHandler creates the websocket search handler. Origin
// checks are left to the CORS layer; websockets from the rendering
// shell are accepted as-is.
func NewLiveSearchHandler(index *search.Index, debounce time.Duration, m *metrics.SearchMetrics, logger *logging.Logger) *LiveSearchHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &LiveSearchHandler{
		index:    index,
		debounce: debounce,
		metrics:  m,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

type liveQuery struct {
	Query string `json:"query"`
}

// Serve upgrades the connection and runs the session loop.
// GET /api/search/live
func (h *LiveSearchHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	// Gorilla allows one concurrent writer, so deliveries from the
	// debounce timer goroutine are funneled through a channel drained
	// by this goroutine's sibling below.
	out := make(chan SearchResponse, 8)
	done := make(chan struct{})
	defer close(done)

	deliver := func(query string, results []catalog.SearchDocument) {
		if results == nil {
			results = []catalog.SearchDocument{}
		}
		outcome := "hit"
		switch {
		case len(strings.TrimSpace(query)) < search.MinQueryLength:
			outcome = "short"
		case len(results) == 0:
			outcome = "miss"
		}
		h.metrics.ObserveQuery(outcome, len(results))
		select {
		case out <- SearchResponse{Query: query, Results: results}:
		case <-done:
		}
	}

	d := search.NewDebouncer(h.index, h.debounce, nil, deliver)
	defer d.Stop()

	go func() {
		for {
			select {
			case resp := <-out:
				if err := conn.WriteJSON(resp); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		var msg liveQuery
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("live search connection closed", "error", err)
			}
			return
		}
		d.QueryChanged(msg.Query)
	}
}
