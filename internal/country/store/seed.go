package store

import (
	"context"
	"errors"

	"roster/internal/country/models"
	id "roster/pkg/domain"
	"roster/pkg/platform/sentinel"
)

// ReferenceCountries is the fixed demo set, each bound to a well-known id.
var ReferenceCountries = []models.Country{
	{ID: id.MustCountryID("000C76EB-62E9-4465-96D1-2C41FDB64C3B"), Name: "USA"},
	{ID: id.MustCountryID("32DA506B-3EBA-48A4-BD86-5F93A2E19E3F"), Name: "Canada"},
	{ID: id.MustCountryID("DF7C89CE-3341-4246-84AE-E01AB7BA476E"), Name: "UK"},
	{ID: id.MustCountryID("15889048-AF93-412C-B8F3-22103E943A6D"), Name: "India"},
	{ID: id.MustCountryID("80DF255C-EFE7-49E5-A7F9-C35D7C701CAB"), Name: "Australia"},
}

// SeedReferenceCountries adds ReferenceCountries to s. Countries whose name is
// already taken are skipped, so seeding twice is harmless.
func SeedReferenceCountries(ctx context.Context, s *InMemory) error {
	for _, c := range ReferenceCountries {
		country := c
		if err := s.CreateIfNameAvailable(ctx, &country); err != nil && !errors.Is(err, sentinel.ErrAlreadyUsed) {
			return err
		}
	}
	return nil
}
