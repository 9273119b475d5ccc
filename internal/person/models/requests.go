package models

import (
	"strings"
	"time"

	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
)

// AddPersonRequest is the input to AddPerson.
type AddPersonRequest struct {
	Name               string            `json:"person_name"`
	Email              string            `json:"email"`
	DateOfBirth        *time.Time        `json:"date_of_birth,omitempty"`
	Gender             domain.Gender     `json:"gender,omitempty"`
	CountryID          *domain.CountryID `json:"country_id,omitempty"`
	Address            string            `json:"address,omitempty"`
	ReceiveNewsLetters bool              `json:"receive_news_letters"`
}

// Normalize trims free-text fields.
func (r *AddPersonRequest) Normalize() {
	if r == nil {
		return
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Address = strings.TrimSpace(r.Address)
}

// Validate reports CodeBadRequest for a nil request and CodeValidation for a
// missing name or an unsupported gender. Call Normalize first.
func (r *AddPersonRequest) Validate() error {
	if r == nil {
		return errRequestRequired
	}
	return validateFields(r.Name, r.Gender)
}

// ToPerson builds a record under the given identifier.
func (r *AddPersonRequest) ToPerson(personID domain.PersonID) *Person {
	p := Person{
		ID:                 personID,
		Name:               r.Name,
		Email:              r.Email,
		DateOfBirth:        r.DateOfBirth,
		Gender:             r.Gender,
		CountryID:          r.CountryID,
		Address:            r.Address,
		ReceiveNewsLetters: r.ReceiveNewsLetters,
	}.Clone()
	return &p
}

// UpdatePersonRequest replaces every mutable field of an existing person.
// Partial updates are not supported: unchanged fields must be resent.
type UpdatePersonRequest struct {
	ID                 domain.PersonID   `json:"person_id"`
	Name               string            `json:"person_name"`
	Email              string            `json:"email"`
	DateOfBirth        *time.Time        `json:"date_of_birth,omitempty"`
	Gender             domain.Gender     `json:"gender,omitempty"`
	CountryID          *domain.CountryID `json:"country_id,omitempty"`
	Address            string            `json:"address,omitempty"`
	ReceiveNewsLetters bool              `json:"receive_news_letters"`
}

// Normalize trims free-text fields.
func (r *UpdatePersonRequest) Normalize() {
	if r == nil {
		return
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Address = strings.TrimSpace(r.Address)
}

// Validate checks the request shape only; whether ID exists is the service's
// concern.
func (r *UpdatePersonRequest) Validate() error {
	if r == nil {
		return errRequestRequired
	}
	return validateFields(r.Name, r.Gender)
}

// ToPerson converts the request into the record it describes.
func (r *UpdatePersonRequest) ToPerson() *Person {
	p := Person{
		ID:                 r.ID,
		Name:               r.Name,
		Email:              r.Email,
		DateOfBirth:        r.DateOfBirth,
		Gender:             r.Gender,
		CountryID:          r.CountryID,
		Address:            r.Address,
		ReceiveNewsLetters: r.ReceiveNewsLetters,
	}.Clone()
	return &p
}

var errRequestRequired = dErrors.New(dErrors.CodeBadRequest, "request is required")

func validateFields(name string, gender domain.Gender) error {
	if name == "" {
		return dErrors.NewField(dErrors.CodeValidation, "person_name", "person name is required")
	}
	if gender != "" && !gender.IsValid() {
		return dErrors.NewField(dErrors.CodeValidation, "gender", "gender must be one of Male, Female, Others")
	}
	return nil
}
