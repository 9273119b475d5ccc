package main

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/internal/audit"
	countrymodels "roster/internal/country/models"
	personmodels "roster/internal/person/models"
	"roster/internal/platform/config"
	"roster/internal/platform/logger"
	"roster/internal/platform/middleware"
	"roster/pkg/testutil"
)

func newTestRouter(t *testing.T, seed bool) (*app, http.Handler) {
	t.Helper()
	cfg := config.Server{SeedCountries: seed, RequestTimeout: 5 * time.Second}
	a, err := newApp(context.Background(), cfg, logger.Discard())
	require.NoError(t, err)
	return a, a.router()
}

func TestPersonLifecycleOverHTTP(t *testing.T) {
	a, router := newTestRouter(t, true)

	var created personmodels.PersonResponse

	testutil.Given(t, "the reference countries are seeded", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/countries"))
		testutil.AssertStatusOK(t, rr)
		countries := *testutil.UnmarshalResponse[[]countrymodels.CountryResponse](t, rr)
		require.Len(t, countries, 5)
		assert.Equal(t, "USA", countries[0].Name)
	})

	testutil.When(t, "a person is added in India", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/persons", map[string]any{
			"person_name":   "Mary",
			"email":         "mary@example.com",
			"date_of_birth": "1999-01-20T00:00:00Z",
			"gender":        "female",
			"country_id":    "15889048-AF93-412C-B8F3-22103E943A6D",
		})
		req.Header.Set(middleware.HeaderRequestID, "req-42")
		rr := testutil.DoRequest(router, req)

		testutil.Then(t, "the response is enriched", func(t *testing.T) {
			testutil.AssertStatus(t, rr, http.StatusCreated)
			assert.Equal(t, "req-42", rr.Header().Get(middleware.HeaderRequestID))
			created = *testutil.UnmarshalResponse[personmodels.PersonResponse](t, rr)
			assert.Equal(t, "India", created.Country)
			assert.NotNil(t, created.Age)
		})
	})

	testutil.When(t, "persons are searched by country", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/persons?search_by=country&search_string=ind"))

		testutil.Then(t, "the person is found", func(t *testing.T) {
			testutil.AssertStatusOK(t, rr)
			list := *testutil.UnmarshalResponse[[]personmodels.PersonResponse](t, rr)
			require.Len(t, list, 1)
			assert.True(t, created.Equal(list[0]))
		})
	})

	testutil.When(t, "the person is deleted", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodDelete, "/persons/"+created.ID.String()))
		testutil.AssertStatus(t, rr, http.StatusNoContent)

		testutil.Then(t, "lookups report not found", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/persons/"+created.ID.String()))
			testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
		})
	})

	testutil.Then(t, "the audit trail records both mutations", func(t *testing.T) {
		events, err := a.trail.ListByEntity(context.Background(), audit.EntityPerson, created.ID.String())
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "req-42", events[0].RequestID)
		assert.Equal(t, audit.ActionPersonDeleted, events[1].Action)
	})
}

func TestUnseededStartsEmpty(t *testing.T) {
	_, router := newTestRouter(t, false)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/countries"))
	testutil.AssertStatusOK(t, rr)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/persons"))
	testutil.AssertStatusOK(t, rr)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestRejectsNonJSONBodies(t *testing.T) {
	_, router := newTestRouter(t, false)

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/countries", `{"country_name":"Japan"}`)
	req.Header.Set("Content-Type", "text/plain")
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusUnsupportedMediaType)
}

func TestMetricsEndpoint(t *testing.T) {
	_, router := newTestRouter(t, false)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/countries", map[string]string{"country_name": "Japan"}))
	testutil.AssertStatus(t, rr, http.StatusCreated)

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatusOK(t, rr)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, "roster_countries_created_total 1"))
	assert.Contains(t, body, `route="/countries"`)
}
