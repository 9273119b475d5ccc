// Package query filters and sorts person responses by a named field.
// Unknown fields are a no-op: the input comes back unchanged.
package query

import "strings"

// Field names one PersonResponse field for filtering or sorting.
type Field string

const (
	FieldPersonName         Field = "person_name"
	FieldEmail              Field = "email"
	FieldDateOfBirth        Field = "date_of_birth"
	FieldGender             Field = "gender"
	FieldCountryID          Field = "country_id"
	FieldCountry            Field = "country"
	FieldAddress            Field = "address"
	FieldAge                Field = "age"
	FieldReceiveNewsLetters Field = "receive_news_letters"
)

// DateLayout is how dates of birth are rendered for text search.
const DateLayout = "02 January 2006"

// ParseField normalizes s ("PersonName", "person_name", " PERSON_NAME ") to
// a Field. Unrecognized input is returned as-is and treated as unknown by
// Filter and Sort.
func ParseField(s string) Field {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "")
	if f, ok := fieldsByKey[key]; ok {
		return f
	}
	return Field(s)
}

var fieldsByKey = func() map[string]Field {
	all := []Field{
		FieldPersonName, FieldEmail, FieldDateOfBirth, FieldGender, FieldCountryID,
		FieldCountry, FieldAddress, FieldAge, FieldReceiveNewsLetters,
	}
	m := make(map[string]Field, len(all))
	for _, f := range all {
		m[strings.ReplaceAll(string(f), "_", "")] = f
	}
	return m
}()

// SearchField is one entry of the search-by menu.
type SearchField struct {
	Field Field  `json:"field"`
	Label string `json:"label"`
}

// SearchFields lists the filterable fields offered to callers, in display
// order.
func SearchFields() []SearchField {
	return []SearchField{
		{Field: FieldPersonName, Label: "Person Name"},
		{Field: FieldEmail, Label: "Email"},
		{Field: FieldDateOfBirth, Label: "Date of Birth"},
		{Field: FieldGender, Label: "Gender"},
		{Field: FieldCountry, Label: "Country"},
		{Field: FieldAddress, Label: "Address"},
	}
}
