package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"roster/internal/audit"
	audithandler "roster/internal/audit/handler"
	auditkafka "roster/internal/audit/kafka"
	countryhandler "roster/internal/country/handler"
	countryservice "roster/internal/country/service"
	countrystore "roster/internal/country/store"
	"roster/internal/person/adapters"
	personhandler "roster/internal/person/handler"
	personservice "roster/internal/person/service"
	personstore "roster/internal/person/store"
	"roster/internal/platform/config"
	"roster/internal/platform/metrics"
	"roster/internal/platform/middleware"
	"roster/pkg/platform/middleware/requesttime"
)

// app holds the wired object graph.
type app struct {
	cfg       config.Server
	logger    *slog.Logger
	registry  *prometheus.Registry
	metrics   *metrics.Metrics
	trail     *audit.InMemoryStore
	kafkaSink *auditkafka.Sink
	countries *countryservice.Service
	persons   *personservice.Service
}

func newApp(ctx context.Context, cfg config.Server, logger *slog.Logger) (*app, error) {
	a := &app{
		cfg:      cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		trail:    audit.NewInMemoryStore(audit.DefaultMemoryCapacity),
	}
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.metrics = metrics.New(a.registry)

	sinks := []audit.Sink{a.trail}
	if len(cfg.Audit.KafkaBrokers) > 0 {
		sink, err := auditkafka.NewSink(ctx, cfg.Audit.KafkaBrokers, cfg.Audit.KafkaTopic, logger)
		if err != nil {
			return nil, fmt.Errorf("audit kafka sink: %w", err)
		}
		a.kafkaSink = sink
		sinks = append(sinks, sink)
	}
	publisher := audit.NewPublisher(sinks, audit.WithLogger(logger))

	countries := countrystore.NewInMemory()
	if cfg.SeedCountries {
		if err := countrystore.SeedReferenceCountries(ctx, countries); err != nil {
			return nil, fmt.Errorf("seed countries: %w", err)
		}
	}
	a.countries = countryservice.New(countries,
		countryservice.WithLogger(logger),
		countryservice.WithMetrics(a.metrics),
		countryservice.WithAuditPublisher(publisher),
	)
	a.persons = personservice.New(personstore.NewInMemory(),
		adapters.NewCountryAdapter(a.countries),
		personservice.WithLogger(logger),
		personservice.WithMetrics(a.metrics),
		personservice.WithAuditPublisher(publisher),
	)
	return a, nil
}

func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(a.logger))
	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(a.logger))
	r.Use(middleware.LatencyMiddleware(a.metrics))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{Registry: a.registry}))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(a.cfg.RequestTimeout))
		r.Use(middleware.ContentTypeJSON)
		countryhandler.New(a.countries, a.logger).Register(r)
		personhandler.New(a.persons, a.logger).Register(r)
		audithandler.New(a.trail).Register(r)
	})
	return r
}

// close flushes the Kafka sink, if any.
func (a *app) close(ctx context.Context) error {
	if a.kafkaSink == nil {
		return nil
	}
	return a.kafkaSink.Close(ctx)
}
