// Package models holds the person record and its request and response shapes.
package models

import (
	"math"
	"time"

	"roster/pkg/domain"
)

// Person is a stored person record.
//
// Invariants:
//   - ID is generated on creation and never reassigned
//   - Name is non-empty once validated for add or update
//   - Gender is empty or one of domain.Genders()
//   - CountryID may dangle; nothing enforces that the country exists
type Person struct {
	ID                 domain.PersonID
	Name               string
	Email              string
	DateOfBirth        *time.Time
	Gender             domain.Gender
	CountryID          *domain.CountryID
	Address            string
	ReceiveNewsLetters bool
}

// Clone returns a deep copy so callers never share pointers with the store.
func (p Person) Clone() Person {
	if p.DateOfBirth != nil {
		dob := *p.DateOfBirth
		p.DateOfBirth = &dob
	}
	if p.CountryID != nil {
		c := *p.CountryID
		p.CountryID = &c
	}
	return p
}

// ToResponse converts the record into its response shape. country is the
// resolved country name ("" when the reference is absent or dangling); now
// is the instant age is computed against.
func (p *Person) ToResponse(country string, now time.Time) PersonResponse {
	c := p.Clone()
	return PersonResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Email:              c.Email,
		DateOfBirth:        c.DateOfBirth,
		Gender:             c.Gender,
		CountryID:          c.CountryID,
		Country:            country,
		Address:            c.Address,
		ReceiveNewsLetters: c.ReceiveNewsLetters,
		Age:                ComputeAge(c.DateOfBirth, now),
	}
}

const daysPerYear = 365.25

// ComputeAge returns whole days between dob and now divided by 365.25,
// rounded half away from zero to two decimals. A nil dob yields nil.
func ComputeAge(dob *time.Time, now time.Time) *float64 {
	if dob == nil {
		return nil
	}
	days := math.Floor(now.Sub(*dob).Hours() / 24)
	age := math.Round(days/daysPerYear*100) / 100
	return &age
}
