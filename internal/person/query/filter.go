package query

import (
	"strings"

	"roster/internal/person/models"
)

// textOf extracts a field's text form; ok is false when the value is absent.
type textOf func(p models.PersonResponse) (text string, ok bool)

var filterFields = map[Field]textOf{
	FieldPersonName: func(p models.PersonResponse) (string, bool) { return p.Name, p.Name != "" },
	FieldEmail:      func(p models.PersonResponse) (string, bool) { return p.Email, p.Email != "" },
	FieldDateOfBirth: func(p models.PersonResponse) (string, bool) {
		if p.DateOfBirth == nil {
			return "", false
		}
		return p.DateOfBirth.Format(DateLayout), true
	},
	FieldGender: func(p models.PersonResponse) (string, bool) { return string(p.Gender), p.Gender != "" },
	FieldCountryID: func(p models.PersonResponse) (string, bool) {
		if p.CountryID == nil {
			return "", false
		}
		return p.CountryID.String(), true
	},
	FieldCountry: func(p models.PersonResponse) (string, bool) { return p.Country, p.Country != "" },
	FieldAddress: func(p models.PersonResponse) (string, bool) { return p.Address, p.Address != "" },
}

// Filter returns the persons whose field contains search, ignoring case, in
// input order. An empty search or an unknown field returns a copy of list.
// Absent values never match.
func Filter(list []models.PersonResponse, field Field, search string) []models.PersonResponse {
	extract, ok := filterFields[field]
	if search == "" || !ok {
		return clone(list)
	}

	needle := strings.ToLower(search)
	out := make([]models.PersonResponse, 0, len(list))
	for _, p := range list {
		text, present := extract(p)
		if present && strings.Contains(strings.ToLower(text), needle) {
			out = append(out, p)
		}
	}
	return out
}

func clone(list []models.PersonResponse) []models.PersonResponse {
	out := make([]models.PersonResponse, len(list))
	copy(out, list)
	return out
}
