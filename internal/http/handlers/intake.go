package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindwell/intake-platform/internal/intake"
	"github.com/mindwell/intake-platform/internal/payments"
	"github.com/mindwell/intake-platform/pkg/logging"
)

// IntakeHandler exposes the wizard lifecycle to the rendering shell.
type IntakeHandler struct {
	registry *intake.Registry
	logger   *logging.Logger
}

// NewIntakeHandler creates an intake handler.
func NewIntakeHandler(registry *intake.Registry, logger *logging.Logger) *IntakeHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &IntakeHandler{registry: registry, logger: logger}
}

// CreateSessionRequest is the request body for opening a flow.
type CreateSessionRequest struct {
	Flow string            `json:"flow"`
	Seed map[string]string `json:"seed,omitempty"`
}

type cardPayload struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Name   string `json:"name"`
}

// eventPayload is the tagged event envelope posted by the shell.
type eventPayload struct {
	Type  string      `json:"type"`
	Field string      `json:"field,omitempty"`
	Value string      `json:"value,omitempty"`
	Card  cardPayload `json:"card,omitempty"`
}

// sessionView is the session state JSON, extended with the on-demand
// booking summary once the review step is reached.
type sessionView struct {
	intake.FormSession
	Summary *intake.BookingSummary `json:"summary,omitempty"`
}

func view(w *intake.Wizard, s intake.FormSession) sessionView {
	out := sessionView{FormSession: s}
	if summary, ok := w.Summary(); ok {
		out.Summary = &summary
	}
	return out
}

// CreateSession opens a new wizard session.
// POST /api/intake/sessions
func (h *IntakeHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	wiz, err := h.registry.Open(intake.FlowKind(req.Flow), req.Seed)
	if err != nil {
		if errors.Is(err, intake.ErrUnknownFlow) {
			jsonError(w, "unknown flow", http.StatusBadRequest)
			return
		}
		h.logger.Error("open session failed", "error", err, "flow", req.Flow)
		jsonError(w, "failed to open session", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, view(wiz, wiz.State()))
}

// GetSession returns the current session state.
// GET /api/intake/sessions/{id}
func (h *IntakeHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	wiz, err := h.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		jsonError(w, "session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, view(wiz, wiz.State()))
}

// DispatchEvent applies one tagged event to the session.
// POST /api/intake/sessions/{id}/events
func (h *IntakeHandler) DispatchEvent(w http.ResponseWriter, r *http.Request) {
	wiz, err := h.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		jsonError(w, "session not found", http.StatusNotFound)
		return
	}

	var payload eventPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	ev, err := decodeEvent(payload)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := wiz.Dispatch(ev)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, view(wiz, state))
	case errors.Is(err, intake.ErrTerminalSession),
		errors.Is(err, intake.ErrEventNotAllowed),
		errors.Is(err, intake.ErrRetryExhausted):
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":   err.Error(),
			"session": view(wiz, state),
		})
	default:
		h.logger.Error("dispatch failed", "error", err, "session_id", state.ID)
		jsonError(w, "dispatch failed", http.StatusInternalServerError)
	}
}

// DismissSession discards the session and cancels its scheduled work.
// DELETE /api/intake/sessions/{id}
func (h *IntakeHandler) DismissSession(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Dismiss(chi.URLParam(r, "id")); err != nil {
		jsonError(w, "session not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeEvent(p eventPayload) (intake.Event, error) {
	switch p.Type {
	case "edit_field":
		if p.Field == "" {
			return nil, errors.New("edit_field requires a field")
		}
		return intake.EditField{Field: p.Field, Value: p.Value}, nil
	case "next":
		return intake.Next{}, nil
	case "back":
		return intake.Back{}, nil
	case "cancel":
		return intake.Cancel{}, nil
	case "retry":
		return intake.Retry{}, nil
	case "submit_payment":
		return intake.SubmitPayment{Card: payments.CardDetails{
			Number: p.Card.Number,
			Expiry: p.Card.Expiry,
			CVV:    p.Card.CVV,
			Name:   p.Card.Name,
		}}, nil
	default:
		return nil, errors.New("unknown event type")
	}
}
