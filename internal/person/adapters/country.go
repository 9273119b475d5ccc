// Package adapters connects the person service to other modules.
package adapters

import (
	"context"

	countrymodels "roster/internal/country/models"
	"roster/pkg/domain"
)

// CountryService is the slice of the country service persons depend on.
type CountryService interface {
	GetCountryByCountryID(ctx context.Context, countryID domain.CountryID) *countrymodels.CountryResponse
}

// CountryAdapter resolves country names through the country service so the
// person module never reads the country store directly.
type CountryAdapter struct {
	countries CountryService
}

func NewCountryAdapter(countries CountryService) *CountryAdapter {
	return &CountryAdapter{countries: countries}
}

// CountryName reports false for a dangling reference.
func (a *CountryAdapter) CountryName(ctx context.Context, countryID domain.CountryID) (string, bool) {
	c := a.countries.GetCountryByCountryID(ctx, countryID)
	if c == nil {
		return "", false
	}
	return c.Name, true
}
