// Package domain holds the value types shared across modules: typed
// identifiers and closed enumerations parsed at trust boundaries.
package domain

import (
	"github.com/google/uuid"

	dErrors "roster/pkg/domain-errors"
)

// Typed identifiers keep person and country IDs from being swapped at compile
// time. The zero value (nil UUID) means "absent".
type (
	PersonID  uuid.UUID
	CountryID uuid.UUID
)

// NewPersonID generates a fresh random person identifier.
func NewPersonID() PersonID { return PersonID(uuid.New()) }

// NewCountryID generates a fresh random country identifier.
func NewCountryID() CountryID { return CountryID(uuid.New()) }

// ParsePersonID parses a person identifier from external input.
//
// Errors: CodeInvalidInput when the value is empty, malformed, or the nil UUID.
func ParsePersonID(s string) (PersonID, error) {
	u, err := parseUUID(s, "person_id")
	return PersonID(u), err
}

// ParseCountryID parses a country identifier from external input.
//
// Errors: CodeInvalidInput when the value is empty, malformed, or the nil UUID.
func ParseCountryID(s string) (CountryID, error) {
	u, err := parseUUID(s, "country_id")
	return CountryID(u), err
}

// MustCountryID parses a hard-coded identifier and panics on failure.
// Only for package-level fixtures such as seed data.
func MustCountryID(s string) CountryID {
	c, err := ParseCountryID(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseUUID(s, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.NewField(dErrors.CodeInvalidInput, field, field+" cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.NewField(dErrors.CodeInvalidInput, field, "invalid "+field)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.NewField(dErrors.CodeInvalidInput, field, field+" cannot be nil")
	}
	return u, nil
}

func (id PersonID) String() string { return uuid.UUID(id).String() }
func (id PersonID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id PersonID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PersonID) UnmarshalText(b []byte) error {
	parsed, err := ParsePersonID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id CountryID) String() string { return uuid.UUID(id).String() }
func (id CountryID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id CountryID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *CountryID) UnmarshalText(b []byte) error {
	parsed, err := ParseCountryID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
