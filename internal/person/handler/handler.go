package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roster/internal/person/export"
	"roster/internal/person/models"
	"roster/internal/person/query"
	"roster/internal/platform/middleware"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/httputil"
	"roster/pkg/platform/sanitize"
)

// Service defines the person operations exposed over HTTP.
type Service interface {
	AddPerson(ctx context.Context, req *models.AddPersonRequest) (*models.PersonResponse, error)
	GetAllPersons(ctx context.Context) []models.PersonResponse
	GetPersonByPersonID(ctx context.Context, personID domain.PersonID) *models.PersonResponse
	UpdatePerson(ctx context.Context, req *models.UpdatePersonRequest) (*models.PersonResponse, error)
	DeletePerson(ctx context.Context, personID domain.PersonID) bool
	GetFilteredPersons(ctx context.Context, field query.Field, search string) []models.PersonResponse
	GetSortedPersons(ctx context.Context, list []models.PersonResponse, field query.Field, order domain.SortOrder) []models.PersonResponse
}

// Handler serves /persons.
type Handler struct {
	persons Service
	logger  *slog.Logger
}

func New(persons Service, logger *slog.Logger) *Handler {
	return &Handler{persons: persons, logger: logger}
}

// Register mounts the person routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/persons", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleAdd)
		r.Get("/search-fields", h.HandleSearchFields)
		r.Get("/export.csv", h.HandleExportCSV)
		r.Get("/export.xlsx", h.HandleExportXLSX)
		r.Get("/{personID}", h.HandleGet)
		r.Put("/{personID}", h.HandleUpdate)
		r.Delete("/{personID}", h.HandleDelete)
	})
}

// HandleList filters by search_by/search_string, then sorts by
// sort_by/sort_order (default person_name ascending).
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	order, err := domain.ParseSortOrder(q.Get("sort_order"))
	if err != nil {
		httputil.WriteError(w, dErrors.NewField(dErrors.CodeInvalidInput, "sort_order", "sort_order must be ASC or DESC"))
		return
	}
	sortBy := query.FieldPersonName
	if v := q.Get("sort_by"); v != "" {
		sortBy = query.ParseField(v)
	}

	filtered := h.persons.GetFilteredPersons(ctx, query.ParseField(q.Get("search_by")), q.Get("search_string"))
	httputil.WriteJSON(w, http.StatusOK, h.persons.GetSortedPersons(ctx, filtered, sortBy, order))
}

func (h *Handler) HandleSearchFields(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, query.SearchFields())
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req models.AddPersonRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.persons.AddPerson(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, r, "failed to add person", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, resp)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	personID, ok := parsePersonID(w, r)
	if !ok {
		return
	}
	resp := h.persons.GetPersonByPersonID(r.Context(), personID)
	if resp == nil {
		httputil.WriteError(w, errPersonNotFound)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdate replaces every mutable field. The id in the path wins over any
// id in the body.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	personID, ok := parsePersonID(w, r)
	if !ok {
		return
	}
	var req models.UpdatePersonRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.ID = personID

	resp, err := h.persons.UpdatePerson(r.Context(), &req)
	if err != nil {
		if dErrors.FieldOf(err) == "person_id" {
			httputil.WriteError(w, errPersonNotFound)
			return
		}
		h.writeServiceError(w, r, "failed to update person", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	personID, ok := parsePersonID(w, r)
	if !ok {
		return
	}
	if !h.persons.DeletePerson(r.Context(), personID) {
		httputil.WriteError(w, errPersonNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	persons := h.persons.GetAllPersons(r.Context())
	w.Header().Set("Content-Type", export.ContentTypeCSV)
	w.Header().Set("Content-Disposition", "attachment; filename=persons.csv")
	w.WriteHeader(http.StatusOK)
	if err := export.WriteCSV(w, persons); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write persons csv",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
	}
}

func (h *Handler) HandleExportXLSX(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data, err := export.XLSX(h.persons.GetAllPersons(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build persons workbook",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to export persons"))
		return
	}
	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", "attachment; filename=persons.xlsx")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

var errPersonNotFound = dErrors.New(dErrors.CodeNotFound, "person not found")

func parsePersonID(w http.ResponseWriter, r *http.Request) (domain.PersonID, bool) {
	personID, err := domain.ParsePersonID(chi.URLParam(r, "personID"))
	if err != nil {
		httputil.WriteError(w, err)
		return domain.PersonID{}, false
	}
	return personID, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httputil.DecodeJSON(r, dst); err != nil {
		h.logger.WarnContext(r.Context(), "invalid person request",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
		httputil.WriteError(w, err)
		return false
	}
	sanitize.Struct(dst)
	return true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(r.Context(), msg,
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
