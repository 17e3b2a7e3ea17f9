package handlers

import (
	"net/http"

	"github.com/mindwell/intake-platform/internal/catalog"
	"github.com/mindwell/intake-platform/internal/match"
	"github.com/mindwell/intake-platform/pkg/logging"
)

// TherapistsHandler serves the preference shortlist and the catalog
// endpoints backing the intake forms.
type TherapistsHandler struct {
	catalog *catalog.Catalog
	logger  *logging.Logger
}

// NewTherapistsHandler creates a therapists handler.
func NewTherapistsHandler(cat *catalog.Catalog, logger *logging.Logger) *TherapistsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &TherapistsHandler{catalog: cat, logger: logger}
}

// Shortlist filters therapists by gender preference. No preference
// yields an empty shortlist rather than the full roster.
// GET /api/therapists?gender=...
func (h *TherapistsHandler) Shortlist(w http.ResponseWriter, r *http.Request) {
	preference := r.URL.Query().Get("gender")
	providers := match.FilterByGender(h.catalog.Providers, preference)
	writeJSON(w, http.StatusOK, map[string]any{
		"preference": preference,
		"therapists": providers,
	})
}

// Services lists the bookable services with prices.
// GET /api/catalog/services
func (h *TherapistsHandler) Services(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"services":  h.catalog.Services,
		"timeSlots": h.catalog.TimeSlots,
	})
}
