package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roster/internal/country/models"
	"roster/internal/platform/middleware"
	id "roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/httputil"
	"roster/pkg/platform/sanitize"
)

// Service defines the country operations exposed over HTTP.
type Service interface {
	AddCountry(ctx context.Context, req *models.AddCountryRequest) (*models.CountryResponse, error)
	GetAllCountries(ctx context.Context) []models.CountryResponse
	GetCountryByCountryID(ctx context.Context, countryID id.CountryID) *models.CountryResponse
}

// Handler serves /countries.
type Handler struct {
	countries Service
	logger    *slog.Logger
}

func New(countries Service, logger *slog.Logger) *Handler {
	return &Handler{countries: countries, logger: logger}
}

// Register mounts the country routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/countries", h.HandleList)
	r.Post("/countries", h.HandleAdd)
	r.Get("/countries/{countryID}", h.HandleGet)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.countries.GetAllCountries(r.Context()))
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.AddCountryRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.logger.WarnContext(ctx, "invalid add country request",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	sanitize.Struct(&req)

	resp, err := h.countries.AddCountry(ctx, &req)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "failed to add country",
				"request_id", requestID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, resp)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	countryID, err := id.ParseCountryID(chi.URLParam(r, "countryID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	resp := h.countries.GetCountryByCountryID(r.Context(), countryID)
	if resp == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "country not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
