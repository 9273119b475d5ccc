package domain

import (
	"strings"

	dErrors "roster/pkg/domain-errors"
)

// Gender is a closed enumeration stored and exchanged as its text form.
// Invariant: a non-empty Gender is one of the supported values; the empty
// value means "not provided".
//
// Usage: construct via ParseGender (or JSON/text unmarshalling) at trust
// boundaries; direct casting bypasses validation.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOthers Gender = "Others"
)

var validGenders = map[Gender]bool{
	GenderMale:   true,
	GenderFemale: true,
	GenderOthers: true,
}

// ParseGender matches s case-insensitively against the supported values and
// returns the canonical spelling.
//
// Errors: CodeInvalidInput when s is empty or not a supported value.
func ParseGender(s string) (Gender, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.NewField(dErrors.CodeInvalidInput, "gender", "gender cannot be empty")
	}
	for g := range validGenders {
		if strings.EqualFold(string(g), s) {
			return g, nil
		}
	}
	return "", dErrors.NewField(dErrors.CodeInvalidInput, "gender", "gender must be one of Male, Female, Others")
}

// IsValid reports whether g is one of the supported values.
func (g Gender) IsValid() bool {
	return validGenders[g]
}

func (g Gender) String() string {
	return string(g)
}

// UnmarshalText accepts an empty value as "not provided" and rejects anything
// outside the enumeration.
func (g *Gender) UnmarshalText(b []byte) error {
	if strings.TrimSpace(string(b)) == "" {
		*g = ""
		return nil
	}
	parsed, err := ParseGender(string(b))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Genders lists the supported values in display order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOthers}
}
