package models

import (
	"fmt"
	"strings"

	id "roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
)

// Country is a stored country record.
//
// Invariants:
//   - ID is generated on creation and never reassigned
//   - Name is non-empty and unique across the store (exact, case-sensitive)
type Country struct {
	ID   id.CountryID
	Name string
}

// ToResponse copies the record into its response shape.
func (c *Country) ToResponse() CountryResponse {
	return CountryResponse{ID: c.ID, Name: c.Name}
}

// AddCountryRequest is the input to AddCountry.
type AddCountryRequest struct {
	Name string `json:"country_name"`
}

// Normalize trims surrounding whitespace.
func (r *AddCountryRequest) Normalize() {
	if r == nil {
		return
	}
	r.Name = strings.TrimSpace(r.Name)
}

// Validate reports CodeBadRequest for a nil request and CodeValidation for a
// missing name. Call Normalize first.
func (r *AddCountryRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Name == "" {
		return dErrors.NewField(dErrors.CodeValidation, "country_name", "country name is required")
	}
	return nil
}

// ToCountry builds a record under the given identifier.
func (r *AddCountryRequest) ToCountry(countryID id.CountryID) *Country {
	return &Country{ID: countryID, Name: r.Name}
}

// CountryResponse is the caller-facing country shape. It is comparable with ==.
type CountryResponse struct {
	ID   id.CountryID `json:"country_id"`
	Name string       `json:"country_name"`
}

func (c CountryResponse) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.ID)
}
