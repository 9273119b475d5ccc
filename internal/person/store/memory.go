// Package store owns the backing list of persons.
package store

import (
	"context"
	"sync"

	"roster/internal/person/models"
	"roster/pkg/domain"
	"roster/pkg/platform/sentinel"
)

// ErrNotFound is returned when a person does not exist.
var ErrNotFound = sentinel.ErrNotFound

// InMemory keeps persons in insertion order behind an RWMutex. Every record
// crossing the store boundary is a deep copy.
type InMemory struct {
	mu      sync.RWMutex
	persons []models.Person
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Create(_ context.Context, person *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persons = append(s.persons, person.Clone())
	return nil
}

func (s *InMemory) FindByID(_ context.Context, personID domain.PersonID) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(personID); i >= 0 {
		found := s.persons[i].Clone()
		return &found, nil
	}
	return nil, ErrNotFound
}

// Update overwrites every mutable field of the stored person with the same ID.
func (s *InMemory) Update(_ context.Context, person *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(person.ID)
	if i < 0 {
		return ErrNotFound
	}
	s.persons[i] = person.Clone()
	return nil
}

func (s *InMemory) Delete(_ context.Context, personID domain.PersonID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(personID)
	if i < 0 {
		return ErrNotFound
	}
	s.persons = append(s.persons[:i], s.persons[i+1:]...)
	return nil
}

// List returns deep copies of every person in insertion order.
func (s *InMemory) List(_ context.Context) []models.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Person, len(s.persons))
	for i := range s.persons {
		out[i] = s.persons[i].Clone()
	}
	return out
}

func (s *InMemory) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.persons)
}

func (s *InMemory) indexOf(personID domain.PersonID) int {
	for i := range s.persons {
		if s.persons[i].ID == personID {
			return i
		}
	}
	return -1
}
