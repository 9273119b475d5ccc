package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"roster/internal/audit"
	"roster/internal/country/models"
	"roster/internal/country/store"
	"roster/internal/platform/metrics"
	id "roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
)

type CountryServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *store.InMemory
	trail   *audit.InMemoryStore
	metrics *metrics.Metrics
	service *Service
}

func (s *CountryServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = store.NewInMemory()
	s.trail = audit.NewInMemoryStore(0)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = New(s.store,
		WithAuditPublisher(audit.NewPublisher([]audit.Sink{s.trail})),
		WithMetrics(s.metrics),
	)
}

func TestCountryServiceSuite(t *testing.T) {
	suite.Run(t, new(CountryServiceSuite))
}

func (s *CountryServiceSuite) TestAddCountry() {
	s.Run("nil request fails with bad request", func() {
		resp, err := s.service.AddCountry(s.ctx, nil)
		s.Nil(resp)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("missing name fails validation", func() {
		resp, err := s.service.AddCountry(s.ctx, &models.AddCountryRequest{})
		s.Nil(resp)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("country_name", dErrors.FieldOf(err))
	})

	s.Run("valid request gets a fresh id and can be looked up", func() {
		resp, err := s.service.AddCountry(s.ctx, &models.AddCountryRequest{Name: "Japan"})
		s.Require().NoError(err)
		s.False(resp.ID.IsNil())
		s.Equal("Japan", resp.Name)

		found := s.service.GetCountryByCountryID(s.ctx, resp.ID)
		s.Require().NotNil(found)
		s.Equal(*resp, *found)
	})

	s.Run("duplicate name fails validation naming the duplicate", func() {
		resp, err := s.service.AddCountry(s.ctx, &models.AddCountryRequest{Name: "Japan"})
		s.Nil(resp)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Contains(err.Error(), "Japan")
	})

	s.Run("distinct name succeeds", func() {
		_, err := s.service.AddCountry(s.ctx, &models.AddCountryRequest{Name: "Kenya"})
		s.Require().NoError(err)
	})

	s.Equal(2.0, testutil.ToFloat64(s.metrics.CountriesCreated))
	// missing name and duplicate name both reject on country_name
	s.Equal(2.0, testutil.ToFloat64(s.metrics.ValidationFailures.WithLabelValues("country", "country_name")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ValidationFailures.WithLabelValues("country", "request")))

	events, err := s.trail.ListRecent(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(audit.ActionCountryCreated, events[0].Action)
	s.Equal("Kenya", events[0].Subject)
}

func (s *CountryServiceSuite) TestGetAllCountries() {
	s.Run("fresh unseeded store is empty", func() {
		s.Empty(s.service.GetAllCountries(s.ctx))
	})

	s.Run("insertion order and independent copies", func() {
		for _, name := range []string{"Japan", "Kenya", "Peru"} {
			_, err := s.service.AddCountry(s.ctx, &models.AddCountryRequest{Name: name})
			s.Require().NoError(err)
		}
		all := s.service.GetAllCountries(s.ctx)
		s.Require().Len(all, 3)
		s.Equal([]string{"Japan", "Kenya", "Peru"}, []string{all[0].Name, all[1].Name, all[2].Name})

		all[0].Name = "mutated"
		s.Equal("Japan", s.service.GetAllCountries(s.ctx)[0].Name)
	})
}

func (s *CountryServiceSuite) TestGetCountryByCountryID() {
	s.Nil(s.service.GetCountryByCountryID(s.ctx, id.CountryID{}))
	s.Nil(s.service.GetCountryByCountryID(s.ctx, id.NewCountryID()))

	s.Require().NoError(store.SeedReferenceCountries(s.ctx, s.store))
	usa := s.service.GetCountryByCountryID(s.ctx, store.ReferenceCountries[0].ID)
	s.Require().NotNil(usa)
	s.Equal("USA", usa.Name)
}
