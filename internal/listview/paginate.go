package listview

import "strconv"

// DefaultPageSize is the fixed page size of every list view.
const DefaultPageSize = 10

type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	Total      int
	TotalPages int
}

func (p Page[T]) HasPrev() bool { return p.Number > 1 }
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }
func (p Page[T]) Prev() int     { return p.Number - 1 }
func (p Page[T]) Next() int     { return p.Number + 1 }

// From and To are the 1-based positions shown in "Showing From–To of Total".
func (p Page[T]) From() int {
	if p.Total == 0 {
		return 0
	}
	return (p.Number-1)*p.Size + 1
}

func (p Page[T]) To() int {
	return p.From() + len(p.Items) - 1
}

// Paginate returns items[(page-1)*size : page*size]. The page is clamped to
// [1, TotalPages]; an empty list still has one (empty) page.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	slice := make([]T, end-start)
	copy(slice, items[start:end])

	return Page[T]{
		Items:      slice,
		Number:     page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}
}

func itoa(n int) string { return strconv.Itoa(n) }

// MapPage converts the items of p, keeping its position.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	items := make([]R, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Page[R]{
		Items:      items,
		Number:     p.Number,
		Size:       p.Size,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}
