// Package paging slices ordered result sets into fixed-size pages.
package paging

import (
	"errors"
	"fmt"
)

// ErrInvalidPageSize is returned for a page size below 1. It signals a
// configuration mistake, not a bad request.
var ErrInvalidPageSize = errors.New("page size must be positive")

// Page is one page of a result set together with its position metadata.
type Page[T any] struct {
	Items     []T `json:"items"`
	Number    int `json:"page"`
	Size      int `json:"page_size"`
	PageCount int `json:"total_pages"`
	Total     int `json:"total"`
}

// Paginate returns the requested page of items. Requests below 1 or past the
// last page are clamped; an empty input still has one (empty) page.
func Paginate[T any](items []T, page, size int) (Page[T], error) {
	if size < 1 {
		return Page[T]{}, fmt.Errorf("%w: got %d", ErrInvalidPageSize, size)
	}

	total := len(items)
	pageCount := max(1, (total+size-1)/size)
	page = min(max(page, 1), pageCount)

	offset := (page - 1) * size
	end := min(offset+size, total)
	slice := items[offset:end:end]
	if slice == nil {
		slice = []T{}
	}

	return Page[T]{
		Items:     slice,
		Number:    page,
		Size:      size,
		PageCount: pageCount,
		Total:     total,
	}, nil
}

// HasPrev reports whether a page precedes this one.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool { return p.Number < p.PageCount }
