package query

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"roster/internal/person/models"
	"roster/pkg/domain"
)

type compareFunc func(a, b models.PersonResponse) int

var sortFields = map[Field]compareFunc{
	FieldPersonName: byText(func(p models.PersonResponse) string { return p.Name }),
	FieldEmail:      byText(func(p models.PersonResponse) string { return p.Email }),
	FieldDateOfBirth: func(a, b models.PersonResponse) int {
		return comparePtr(a.DateOfBirth, b.DateOfBirth, time.Time.Compare)
	},
	FieldGender: byText(func(p models.PersonResponse) string { return string(p.Gender) }),
	FieldAge: func(a, b models.PersonResponse) int {
		return comparePtr(a.Age, b.Age, cmp.Compare[float64])
	},
	FieldCountry: byText(func(p models.PersonResponse) string { return p.Country }),
	FieldAddress: byText(func(p models.PersonResponse) string { return p.Address }),
	FieldReceiveNewsLetters: func(a, b models.PersonResponse) int {
		return compareBool(a.ReceiveNewsLetters, b.ReceiveNewsLetters)
	},
}

// Sort returns a new slice ordered by field. Equal keys keep their input
// order in both directions; absent values sort first when ascending. An
// unknown field returns a copy in input order. list is never modified.
func Sort(list []models.PersonResponse, field Field, order domain.SortOrder) []models.PersonResponse {
	out := clone(list)
	compare, ok := sortFields[field]
	if !ok {
		return out
	}
	if order.IsDescending() {
		slices.SortStableFunc(out, func(a, b models.PersonResponse) int { return compare(b, a) })
		return out
	}
	slices.SortStableFunc(out, compare)
	return out
}

func byText(get func(models.PersonResponse) string) compareFunc {
	return func(a, b models.PersonResponse) int {
		return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}

func comparePtr[T any](a, b *T, compare func(T, T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return compare(*a, *b)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
