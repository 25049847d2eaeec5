// Package page decodes the paged list shape shared by list endpoints.
//
// The four counters arrive as JSON integers or as numeric strings depending
// on the endpoint; both decode to the same int. Anything else is a
// ParseError.
package page

import (
	"encoding/json"
	"strconv"

	"github.com/tidwall/gjson"

	apperrors "github.com/kbukum/picacg/errors"
)

// Page is one page of a list result.
type Page[T any] struct {
	Total int `json:"total"`
	Limit int `json:"limit"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Docs  []T `json:"docs"`
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool {
	return p.Page < p.Pages
}

// Decode reads a page from v, decoding each document with elem. Documents
// keep the order they were received in.
func Decode[T any](v gjson.Result, elem func(gjson.Result) (T, error)) (Page[T], error) {
	var p Page[T]
	if !v.IsObject() {
		return p, apperrors.Parse("pagedata expected an object")
	}

	counters := []struct {
		name string
		dst  *int
	}{
		{"total", &p.Total},
		{"limit", &p.Limit},
		{"page", &p.Page},
		{"pages", &p.Pages},
	}
	for _, c := range counters {
		n, err := Int(v.Get(c.name))
		if err != nil {
			return Page[T]{}, err.(*apperrors.Error).WithDetail("field", c.name)
		}
		*c.dst = n
	}

	docs := v.Get("docs")
	if !docs.IsArray() {
		return Page[T]{}, apperrors.Parse("pagedata expected docs to be an array")
	}
	p.Docs = make([]T, 0, len(docs.Array()))
	var docErr error
	docs.ForEach(func(_, d gjson.Result) bool {
		item, err := elem(d)
		if err != nil {
			docErr = err
			return false
		}
		p.Docs = append(p.Docs, item)
		return true
	})
	if docErr != nil {
		if _, ok := apperrors.As(docErr); ok {
			return Page[T]{}, docErr
		}
		return Page[T]{}, apperrors.Wrap(apperrors.KindParseJSON, "Failed to decode page document", docErr)
	}
	return p, nil
}

// JSON decodes each document with encoding/json.
func JSON[T any](d gjson.Result) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(d.Raw), &v); err != nil {
		return v, err
	}
	return v, nil
}

// Int parses a counter encoded as a JSON integer or a numeric string. The
// value must fit in 32 bits.
func Int(v gjson.Result) (int, error) {
	var raw string
	switch v.Type {
	case gjson.Number:
		raw = v.Raw
	case gjson.String:
		raw = v.Str
	default:
		return 0, apperrors.Parse("pagedata expected i32 or string")
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, apperrors.Parse("pagedata failed to parse i32 from string").WithCause(err)
	}
	return int(n), nil
}

// UnmarshalJSON decodes a page with the same counter tolerance as Decode.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return apperrors.ParseJSON("pagedata is not valid JSON")
	}
	decoded, err := Decode(gjson.ParseBytes(data), JSON[T])
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}
