package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"roster/internal/audit"
	"roster/internal/person/models"
	"roster/internal/person/query"
	"roster/internal/platform/metrics"
	"roster/internal/platform/tracing"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/sentinel"
	"roster/pkg/requestcontext"
)

type Store interface {
	Create(ctx context.Context, person *models.Person) error
	FindByID(ctx context.Context, personID domain.PersonID) (*models.Person, error)
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, personID domain.PersonID) error
	List(ctx context.Context) []models.Person
}

// CountryLookup resolves a country reference to its display name.
type CountryLookup interface {
	CountryName(ctx context.Context, countryID domain.CountryID) (string, bool)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service validates and records persons and answers filtered, sorted reads.
type Service struct {
	persons        Store
	countries      CountryLookup
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service. countries may be nil, in which case responses
// carry no country name.
func New(persons Store, countries CountryLookup, opts ...Option) *Service {
	s := &Service{
		persons:   persons,
		countries: countries,
		logger:    slog.New(slog.DiscardHandler),
		tracer:    tracing.Tracer("roster/internal/person/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddPerson validates req and appends a new person.
//
// Errors: CodeBadRequest for a nil request, CodeValidation for a missing
// name or an unsupported gender.
func (s *Service) AddPerson(ctx context.Context, req *models.AddPersonRequest) (resp *models.PersonResponse, err error) {
	ctx, span := tracing.Start(ctx, s.tracer, "person.AddPerson")
	defer func() { tracing.End(span, err) }()

	req.Normalize()
	if err := req.Validate(); err != nil {
		s.rejected(ctx, err)
		return nil, err
	}

	person := req.ToPerson(domain.NewPersonID())
	if err := s.persons.Create(ctx, person); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to add person")
	}
	span.SetAttributes(attribute.String("person.id", person.ID.String()))

	s.logger.InfoContext(ctx, "person created", "person_id", person.ID)
	s.emitAudit(ctx, audit.Event{
		Action:   audit.ActionPersonCreated,
		Entity:   audit.EntityPerson,
		EntityID: person.ID.String(),
		Subject:  person.Name,
	})
	if s.metrics != nil {
		s.metrics.IncrementPersonsCreated()
	}

	out := s.toResponse(ctx, person, requestcontext.Now(ctx))
	return &out, nil
}

// GetAllPersons returns every person in insertion order. All ages in the
// result are computed against the same instant.
func (s *Service) GetAllPersons(ctx context.Context) []models.PersonResponse {
	ctx, span := tracing.Start(ctx, s.tracer, "person.GetAllPersons")
	defer span.End()

	persons := s.persons.List(ctx)
	now := requestcontext.Now(ctx)
	out := make([]models.PersonResponse, 0, len(persons))
	for i := range persons {
		out = append(out, s.toResponse(ctx, &persons[i], now))
	}
	return out
}

// GetPersonByPersonID returns nil when personID is nil or unknown.
func (s *Service) GetPersonByPersonID(ctx context.Context, personID domain.PersonID) *models.PersonResponse {
	if personID.IsNil() {
		return nil
	}
	ctx, span := tracing.Start(ctx, s.tracer, "person.GetPersonByPersonID",
		attribute.String("person.id", personID.String()))
	defer span.End()

	person, err := s.persons.FindByID(ctx, personID)
	if err != nil {
		s.logLookupFailure(ctx, personID, err)
		return nil
	}
	out := s.toResponse(ctx, person, requestcontext.Now(ctx))
	return &out
}

// UpdatePerson overwrites every mutable field of the person named by req.ID.
//
// Errors: CodeBadRequest for a nil request, CodeValidation (field person_id)
// when no such person exists, CodeValidation for a missing name or an
// unsupported gender.
func (s *Service) UpdatePerson(ctx context.Context, req *models.UpdatePersonRequest) (resp *models.PersonResponse, err error) {
	ctx, span := tracing.Start(ctx, s.tracer, "person.UpdatePerson")
	defer func() { tracing.End(span, err) }()

	if req == nil {
		err := req.Validate()
		s.rejected(ctx, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("person.id", req.ID.String()))

	if _, err := s.persons.FindByID(ctx, req.ID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			unknown := errUnknownPerson()
			s.rejected(ctx, unknown)
			return nil, unknown
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load person")
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		s.rejected(ctx, err)
		return nil, err
	}

	person := req.ToPerson()
	if err := s.persons.Update(ctx, person); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, errUnknownPerson()
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update person")
	}

	s.logger.InfoContext(ctx, "person updated", "person_id", person.ID)
	s.emitAudit(ctx, audit.Event{
		Action:   audit.ActionPersonUpdated,
		Entity:   audit.EntityPerson,
		EntityID: person.ID.String(),
		Subject:  person.Name,
	})
	if s.metrics != nil {
		s.metrics.IncrementPersonsUpdated()
	}

	out := s.toResponse(ctx, person, requestcontext.Now(ctx))
	return &out, nil
}

// DeletePerson removes the person and reports whether anything was removed.
func (s *Service) DeletePerson(ctx context.Context, personID domain.PersonID) bool {
	if personID.IsNil() {
		return false
	}
	ctx, span := tracing.Start(ctx, s.tracer, "person.DeletePerson",
		attribute.String("person.id", personID.String()))
	defer span.End()

	if err := s.persons.Delete(ctx, personID); err != nil {
		s.logLookupFailure(ctx, personID, err)
		return false
	}

	s.logger.InfoContext(ctx, "person deleted", "person_id", personID)
	s.emitAudit(ctx, audit.Event{
		Action:   audit.ActionPersonDeleted,
		Entity:   audit.EntityPerson,
		EntityID: personID.String(),
	})
	if s.metrics != nil {
		s.metrics.IncrementPersonsDeleted()
	}
	return true
}

// GetFilteredPersons filters every person by field. See query.Filter.
func (s *Service) GetFilteredPersons(ctx context.Context, field query.Field, search string) []models.PersonResponse {
	all := s.GetAllPersons(ctx)

	_, span := tracing.Start(ctx, s.tracer, "person.GetFilteredPersons",
		attribute.String("query.field", string(field)))
	defer span.End()
	defer s.observeQuery("filter", time.Now())

	return query.Filter(all, field, search)
}

// GetSortedPersons orders list by field. See query.Sort.
func (s *Service) GetSortedPersons(ctx context.Context, list []models.PersonResponse, field query.Field, order domain.SortOrder) []models.PersonResponse {
	_, span := tracing.Start(ctx, s.tracer, "person.GetSortedPersons",
		attribute.String("query.field", string(field)),
		attribute.String("query.order", order.String()))
	defer span.End()
	defer s.observeQuery("sort", time.Now())

	return query.Sort(list, field, order)
}

func (s *Service) toResponse(ctx context.Context, person *models.Person, now time.Time) models.PersonResponse {
	country := ""
	if person.CountryID != nil && s.countries != nil {
		if name, ok := s.countries.CountryName(ctx, *person.CountryID); ok {
			country = name
		}
	}
	return person.ToResponse(country, now)
}

func errUnknownPerson() error {
	return dErrors.NewField(dErrors.CodeValidation, "person_id", "given person id doesn't exist")
}

func (s *Service) logLookupFailure(ctx context.Context, personID domain.PersonID, err error) {
	if !errors.Is(err, sentinel.ErrNotFound) {
		s.logger.ErrorContext(ctx, "person lookup failed", "person_id", personID, "error", err)
	}
}

func (s *Service) rejected(ctx context.Context, err error) {
	s.logger.WarnContext(ctx, "person rejected", "error", err)
	if s.metrics != nil {
		s.metrics.IncrementValidationFailure("person", dErrors.FieldOf(err))
	}
}

func (s *Service) observeQuery(op string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveQuery(op, start)
	}
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", event.Action, "error", err)
	}
}
