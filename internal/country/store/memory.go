// Package store owns the backing list of countries.
package store

import (
	"context"
	"sync"

	"roster/internal/country/models"
	id "roster/pkg/domain"
	"roster/pkg/platform/sentinel"
)

// ErrNotFound is returned when a country does not exist.
var ErrNotFound = sentinel.ErrNotFound

// InMemory keeps countries in insertion order behind an RWMutex. Records
// never leave the store by reference.
type InMemory struct {
	mu        sync.RWMutex
	countries []models.Country
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

// CreateIfNameAvailable appends country unless a country with exactly the
// same name exists, in which case it returns sentinel.ErrAlreadyUsed.
func (s *InMemory) CreateIfNameAvailable(_ context.Context, country *models.Country) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.countries {
		if c.Name == country.Name {
			return sentinel.ErrAlreadyUsed
		}
	}
	s.countries = append(s.countries, *country)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, countryID id.CountryID) (*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.countries {
		if c.ID == countryID {
			found := c
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// List returns a copy of every country in insertion order.
func (s *InMemory) List(_ context.Context) []models.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Country, len(s.countries))
	copy(out, s.countries)
	return out
}

func (s *InMemory) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.countries)
}
