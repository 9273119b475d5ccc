// Package sanitize cleans free-text request fields at the HTTP boundary.
package sanitize

import (
	"html"
	"reflect"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every HTML element; free-text fields are plain text.
var strict = bluemonday.StrictPolicy()

// Text trims whitespace and strips markup from s. Entities escaped by the
// policy are decoded again so "R&D" survives unchanged.
func Text(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Struct applies Text to every settable string and []string field of the
// struct pointed to by v. Other kinds are left alone.
func Struct(v any) {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return
	}

	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(Text(field.String()))
		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					elem := field.Index(j)
					elem.SetString(Text(elem.String()))
				}
			}
		}
	}
}
