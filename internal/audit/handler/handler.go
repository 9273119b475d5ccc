// Package handler exposes the in-memory audit trail for inspection.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"roster/internal/audit"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/httputil"
)

// Reader lists retained events.
type Reader interface {
	ListRecent(ctx context.Context, limit int) ([]audit.Event, error)
}

const defaultLimit = 50

type Handler struct {
	events Reader
}

func New(events Reader) *Handler {
	return &Handler{events: events}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/audit/events", h.HandleList)
}

// HandleList returns the most recent events first; ?limit= caps the count.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			httputil.WriteError(w, dErrors.NewField(dErrors.CodeInvalidInput, "limit", "limit must be a positive integer"))
			return
		}
		limit = n
	}
	events, err := h.events.ListRecent(r.Context(), limit)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit events"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}
