package handlers

import (
	"net/http"
	"strings"

	"github.com/mindwell/intake-platform/internal/catalog"
	"github.com/mindwell/intake-platform/internal/observability/metrics"
	"github.com/mindwell/intake-platform/internal/search"
	"github.com/mindwell/intake-platform/pkg/logging"
)

// SearchHandler serves synchronous catalog search.
type SearchHandler struct {
	index   *search.Index
	metrics *metrics.SearchMetrics
	logger  *logging.Logger
}

// NewSearchHandler creates a search handler.
func NewSearchHandler(index *search.Index, m *metrics.SearchMetrics, logger *logging.Logger) *SearchHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SearchHandler{index: index, metrics: m, logger: logger}
}

// SearchResponse is the result envelope shared by the synchronous
// endpoint and the live websocket.
type SearchResponse struct {
	Query   string                   `json:"query"`
	Results []catalog.SearchDocument `json:"results"`
}

// Query matches the q parameter against the catalog.
// GET /api/search?q=...
func (h *SearchHandler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	if len(strings.TrimSpace(q)) < search.MinQueryLength {
		h.metrics.ObserveQuery("short", 0)
		writeJSON(w, http.StatusOK, SearchResponse{Query: q, Results: []catalog.SearchDocument{}})
		return
	}

	results := h.index.Match(q)
	if results == nil {
		results = []catalog.SearchDocument{}
	}
	outcome := "hit"
	if len(results) == 0 {
		outcome = "miss"
	}
	h.metrics.ObserveQuery(outcome, len(results))
	writeJSON(w, http.StatusOK, SearchResponse{Query: q, Results: results})
}
