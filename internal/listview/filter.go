// Package listview derives the filtered, paginated slice a list page shows
// from the last collection fetched from the backend. Nothing here mutates
// the fetched collection.
package listview

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
)

// AllValue in a categorical filter means "no filter".
const AllValue = "all"

type Filter[T any] struct {
	Name  string
	Field func(T) string
}

// Spec describes how one resource is searched and filtered.
type Spec[T any] struct {
	Search  func(T) []string
	Filters []Filter[T]
}

func (s Spec[T]) FilterNames() []string {
	names := make([]string, len(s.Filters))
	for i, f := range s.Filters {
		names[i] = f.Name
	}
	return names
}

// Criteria is the user's current search term and categorical filter values.
type Criteria struct {
	Search  string
	Filters map[string]string
}

func (c Criteria) Active() bool {
	if strings.TrimSpace(c.Search) != "" {
		return true
	}
	for _, v := range c.Filters {
		if isSet(v) {
			return true
		}
	}
	return false
}

// Values encodes c (and page when > 1) as query parameters.
func (c Criteria) Values(page int) url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(c.Search); s != "" {
		v.Set("q", s)
	}
	for name, val := range c.Filters {
		if isSet(val) {
			v.Set(name, val)
		}
	}
	if page > 1 {
		v.Set("page", itoa(page))
	}
	return v
}

func isSet(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, AllValue)
}

// Apply returns the items matching c, in their original order. A search term
// matches when any search field contains it, ignoring case.
func Apply[T any](items []T, spec Spec[T], c Criteria) []T {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(c.Search))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle != "" && !searchMatches(fold, spec, item, needle) {
			continue
		}
		if !filtersMatch(fold, spec, item, c.Filters) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func searchMatches[T any](fold cases.Caser, spec Spec[T], item T, needle string) bool {
	if spec.Search == nil {
		return false
	}
	for _, field := range spec.Search(item) {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}

func filtersMatch[T any](fold cases.Caser, spec Spec[T], item T, values map[string]string) bool {
	for _, f := range spec.Filters {
		want := values[f.Name]
		if !isSet(want) {
			continue
		}
		if fold.String(strings.TrimSpace(f.Field(item))) != fold.String(strings.TrimSpace(want)) {
			return false
		}
	}
	return true
}
