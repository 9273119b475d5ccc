package models

import (
	"fmt"
	"time"

	"roster/pkg/domain"
)

// PersonResponse is the caller-facing person shape. Country and Age are
// derived: Country from the country reference, Age from DateOfBirth.
type PersonResponse struct {
	ID                 domain.PersonID   `json:"person_id"`
	Name               string            `json:"person_name"`
	Email              string            `json:"email,omitempty"`
	DateOfBirth        *time.Time        `json:"date_of_birth,omitempty"`
	Gender             domain.Gender     `json:"gender,omitempty"`
	CountryID          *domain.CountryID `json:"country_id,omitempty"`
	Country            string            `json:"country,omitempty"`
	Address            string            `json:"address,omitempty"`
	ReceiveNewsLetters bool              `json:"receive_news_letters"`
	Age                *float64          `json:"age,omitempty"`
}

// Equal compares every field except Age, which depends on when it was
// computed.
func (r PersonResponse) Equal(other PersonResponse) bool {
	return r.ID == other.ID &&
		r.Name == other.Name &&
		r.Email == other.Email &&
		equalTime(r.DateOfBirth, other.DateOfBirth) &&
		r.Gender == other.Gender &&
		equalCountryID(r.CountryID, other.CountryID) &&
		r.Country == other.Country &&
		r.Address == other.Address &&
		r.ReceiveNewsLetters == other.ReceiveNewsLetters
}

// ToUpdateRequest seeds an update with the current values.
func (r PersonResponse) ToUpdateRequest() *UpdatePersonRequest {
	req := &UpdatePersonRequest{
		ID:                 r.ID,
		Name:               r.Name,
		Email:              r.Email,
		Gender:             r.Gender,
		Address:            r.Address,
		ReceiveNewsLetters: r.ReceiveNewsLetters,
	}
	if r.DateOfBirth != nil {
		dob := *r.DateOfBirth
		req.DateOfBirth = &dob
	}
	if r.CountryID != nil {
		c := *r.CountryID
		req.CountryID = &c
	}
	return req
}

func (r PersonResponse) String() string {
	dob := ""
	if r.DateOfBirth != nil {
		dob = r.DateOfBirth.Format("02 01 2006")
	}
	return fmt.Sprintf("Person %s: %s <%s>, born %s, %s, %s", r.ID, r.Name, r.Email, dob, r.Gender, r.Country)
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func equalCountryID(a, b *domain.CountryID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
