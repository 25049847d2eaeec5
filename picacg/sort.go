package picacg

import (
	"strings"

	apperrors "github.com/kbukum/picacg/errors"
)

// Sort is a list ordering understood by the API.
type Sort string

// Orderings.
const (
	SortDefault    Sort = "ua"
	SortNewest     Sort = "dd"
	SortOldest     Sort = "da"
	SortMostLiked  Sort = "ld"
	SortMostViewed Sort = "vd"
)

var sortNames = map[string]Sort{
	"default":     SortDefault,
	"newest":      SortNewest,
	"oldest":      SortOldest,
	"most-liked":  SortMostLiked,
	"most-viewed": SortMostViewed,
}

// String returns the wire value.
func (s Sort) String() string {
	return string(s)
}

// OrDefault returns SortDefault for the zero value.
func (s Sort) OrDefault() Sort {
	if s == "" {
		return SortDefault
	}
	return s
}

// Valid reports whether s is a known ordering.
func (s Sort) Valid() bool {
	switch s {
	case SortDefault, SortNewest, SortOldest, SortMostLiked, SortMostViewed:
		return true
	}
	return false
}

// ParseSort accepts a wire value (dd) or a name (newest).
func ParseSort(s string) (Sort, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return SortDefault, nil
	}
	if sort := Sort(v); sort.Valid() {
		return sort, nil
	}
	if sort, ok := sortNames[v]; ok {
		return sort, nil
	}
	return "", apperrors.Newf(apperrors.KindParameter, "unknown sort %q", s)
}
