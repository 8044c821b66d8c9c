package listview

// State is one list view's local state: the raw collection from the last
// successful fetch, the criteria, and the current page. The filtered list is
// always recomputed from raw, and any change of criteria resets the page to 1.
type State[T any] struct {
	spec     Spec[T]
	size     int
	raw      []T
	filtered []T
	criteria Criteria
	page     int
}

func NewState[T any](spec Spec[T], size int) *State[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	s := &State[T]{
		spec:     spec,
		size:     size,
		criteria: Criteria{Filters: map[string]string{}},
		page:     1,
	}
	s.recompute()
	return s
}

// Replace swaps in a freshly fetched collection. The page is kept and clamped
// when the result is read.
func (s *State[T]) Replace(raw []T) {
	s.raw = append([]T(nil), raw...)
	s.recompute()
}

func (s *State[T]) SetSearch(term string) {
	if term == s.criteria.Search {
		return
	}
	s.criteria.Search = term
	s.page = 1
	s.recompute()
}

func (s *State[T]) SetFilter(name, value string) {
	if s.criteria.Filters[name] == value {
		return
	}
	s.criteria.Filters[name] = value
	s.page = 1
	s.recompute()
}

// SetCriteria replaces the whole criteria set, resetting the page if anything
// changed. Filters absent from c are cleared.
func (s *State[T]) SetCriteria(c Criteria) {
	s.SetSearch(c.Search)
	for name, value := range s.criteria.Filters {
		if _, ok := c.Filters[name]; ok {
			continue
		}
		delete(s.criteria.Filters, name)
		if isSet(value) {
			s.page = 1
			s.recompute()
		}
	}
	for name, value := range c.Filters {
		s.SetFilter(name, value)
	}
}

func (s *State[T]) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	s.page = n
}

func (s *State[T]) Raw() []T           { return s.raw }
func (s *State[T]) Filtered() []T      { return s.filtered }
func (s *State[T]) Criteria() Criteria { return s.criteria }

func (s *State[T]) Current() Page[T] {
	return Paginate(s.filtered, s.page, s.size)
}

func (s *State[T]) recompute() {
	s.filtered = Apply(s.raw, s.spec, s.criteria)
}
