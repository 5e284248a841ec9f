package models

import "math"

// PageSize is the fixed number of items in a list page.
const PageSize = 30

// MaxPage is the largest page number whose offset fits in an int64.
const MaxPage = math.MaxInt64 / PageSize

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Number     int64
	TotalPages int64
	PerPage    int64
	Total      int64
	Items      []T
}

// NewPage fills the page counters for total matching items.
func NewPage[T any](number, total int64, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Number:     number,
		TotalPages: (total + PageSize - 1) / PageSize,
		PerPage:    PageSize,
		Total:      total,
		Items:      items,
	}
}

// Offset is the number of items before page number.
func Offset(number int64) int64 {
	if number < 1 {
		number = 1
	}
	if number > MaxPage {
		number = MaxPage
	}
	return (number - 1) * PageSize
}
