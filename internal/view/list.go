package view

import (
	"net/url"
	"sort"
	"strings"

	"recruai-web/internal/listview"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type FilterControl struct {
	Name    string
	Label   string
	Options []Option
}

// Modal is an open dialog with the values (and errors) of its last submission.
// Name is the dialog kind ("edit"); Target the record it acts on, if any.
type Modal struct {
	Name   string
	Target string
	Action string
	Values map[string]string
	Errors map[string]string
}

func (m *Modal) Is(name string) bool {
	return m != nil && m.Name == name
}

// ParseModal reads the "modal" query value, e.g. "schedule" or "edit:42".
func ParseModal(v string) (name, target string) {
	name, target, _ = strings.Cut(v, ":")
	return name, target
}

func (m *Modal) Value(key string) string {
	if m == nil {
		return ""
	}
	return m.Values[key]
}

func (m *Modal) Error(key string) string {
	if m == nil {
		return ""
	}
	return m.Errors[key]
}

// List is the content of a list/filter view.
type List[R any] struct {
	BasePath string
	Page     listview.Page[R]
	Criteria listview.Criteria
	Filters  []FilterControl
	RawCount int
	Modal    *Modal
}

func (l List[R]) Search() string { return l.Criteria.Search }

// PageURL links to page n with the current criteria.
func (l List[R]) PageURL(n int) string {
	return withQuery(l.BasePath, l.Criteria.Values(n))
}

// ModalURL opens a dialog on the current page.
func (l List[R]) ModalURL(name string) string {
	v := l.Criteria.Values(l.Page.Number)
	v.Set("modal", name)
	return withQuery(l.BasePath, v)
}

// CloseURL is the current page with no dialog open.
func (l List[R]) CloseURL() string {
	return l.PageURL(l.Page.Number)
}

// ReturnQuery is carried by forms so the redirect after a mutation lands on
// the same filters and page.
func (l List[R]) ReturnQuery() string {
	return l.Criteria.Values(l.Page.Number).Encode()
}

func (l List[R]) Pages() []int {
	out := make([]int, l.Page.TotalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func withQuery(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

// Label turns a backend value such as "in_progress" into "In Progress".
func Label(v string) string {
	v = strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(v))
	return cases.Title(language.English).String(v)
}

// FilterFrom builds a select from the distinct values in raw plus any fixed
// values, sorted, with the current selection marked.
func FilterFrom[T any](name, label string, raw []T, field func(T) string, selected string, fixed ...string) FilterControl {
	seen := map[string]bool{}
	var values []string
	add := func(v string) {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			return
		}
		seen[key] = true
		values = append(values, v)
	}
	for _, v := range fixed {
		add(v)
	}
	for _, item := range raw {
		add(field(item))
	}
	sort.Strings(values)

	options := []Option{{Value: listview.AllValue, Label: "All", Selected: selected == "" || selected == listview.AllValue}}
	for _, v := range values {
		options = append(options, Option{Value: v, Label: Label(v), Selected: strings.EqualFold(v, selected)})
	}
	return FilterControl{Name: name, Label: label, Options: options}
}
