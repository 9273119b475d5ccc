package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"roster/internal/audit"
	"roster/internal/country/models"
	"roster/internal/platform/metrics"
	"roster/internal/platform/tracing"
	id "roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/sentinel"
)

type Store interface {
	CreateIfNameAvailable(ctx context.Context, country *models.Country) error
	FindByID(ctx context.Context, countryID id.CountryID) (*models.Country, error)
	List(ctx context.Context) []models.Country
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service validates and records countries.
type Service struct {
	countries      Store
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

// New constructs a Service.
func New(countries Store, opts ...Option) *Service {
	s := &Service{
		countries: countries,
		logger:    slog.New(slog.DiscardHandler),
		tracer:    tracing.Tracer("roster/internal/country/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddCountry validates req and appends a new country.
//
// Errors: CodeBadRequest for a nil request, CodeValidation for a missing or
// duplicate name.
func (s *Service) AddCountry(ctx context.Context, req *models.AddCountryRequest) (resp *models.CountryResponse, err error) {
	ctx, span := tracing.Start(ctx, s.tracer, "country.AddCountry")
	defer func() { tracing.End(span, err) }()

	req.Normalize()
	if err := req.Validate(); err != nil {
		s.rejected(ctx, err)
		return nil, err
	}

	country := req.ToCountry(id.NewCountryID())
	if err := s.countries.CreateIfNameAvailable(ctx, country); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			dup := dErrors.NewField(dErrors.CodeValidation, "country_name", "given country name already exists: "+country.Name)
			s.rejected(ctx, dup)
			return nil, dup
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to add country")
	}
	span.SetAttributes(attribute.String("country.id", country.ID.String()))

	s.logger.InfoContext(ctx, "country created",
		"country_id", country.ID,
		"country_name", country.Name,
	)
	s.emitAudit(ctx, audit.Event{
		Action:   audit.ActionCountryCreated,
		Entity:   audit.EntityCountry,
		EntityID: country.ID.String(),
		Subject:  country.Name,
	})
	if s.metrics != nil {
		s.metrics.IncrementCountriesCreated()
	}

	out := country.ToResponse()
	return &out, nil
}

// GetAllCountries returns every country in insertion order.
func (s *Service) GetAllCountries(ctx context.Context) []models.CountryResponse {
	ctx, span := tracing.Start(ctx, s.tracer, "country.GetAllCountries")
	defer span.End()

	countries := s.countries.List(ctx)
	out := make([]models.CountryResponse, 0, len(countries))
	for i := range countries {
		out = append(out, countries[i].ToResponse())
	}
	return out
}

// GetCountryByCountryID returns nil when countryID is nil or unknown.
func (s *Service) GetCountryByCountryID(ctx context.Context, countryID id.CountryID) *models.CountryResponse {
	if countryID.IsNil() {
		return nil
	}
	ctx, span := tracing.Start(ctx, s.tracer, "country.GetCountryByCountryID",
		attribute.String("country.id", countryID.String()))
	defer span.End()

	country, err := s.countries.FindByID(ctx, countryID)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.ErrorContext(ctx, "country lookup failed", "country_id", countryID, "error", err)
		}
		return nil
	}
	out := country.ToResponse()
	return &out
}

func (s *Service) rejected(ctx context.Context, err error) {
	s.logger.WarnContext(ctx, "country rejected", "error", err)
	if s.metrics != nil {
		s.metrics.IncrementValidationFailure("country", dErrors.FieldOf(err))
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
