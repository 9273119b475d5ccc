package domain

import (
	"fmt"
	"strings"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortAscending  SortOrder = "ASC"
	SortDescending SortOrder = "DESC"
)

// ParseSortOrder accepts "asc"/"desc" in any case. An empty value yields the
// default ascending order.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(SortAscending):
		return SortAscending, nil
	case string(SortDescending):
		return SortDescending, nil
	default:
		return "", fmt.Errorf("unknown sort order: %s", s)
	}
}

func (o SortOrder) String() string {
	return string(o)
}

// IsDescending reports whether o is DESC. Any other value sorts ascending.
func (o SortOrder) IsDescending() bool {
	return o == SortDescending
}
