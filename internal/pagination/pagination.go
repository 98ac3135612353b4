// Package pagination implements offset/limit windows and the page descriptor
// returned alongside every list response.
package pagination

import (
	"errors"
	"strconv"
)

const DefaultLimit = 10

var (
	ErrInvalidLimit  = errors.New("limit must be at least 1")
	ErrInvalidOffset = errors.New("offset must not be negative")
)

// Window selects a slice of an ordered result set.
type Window struct {
	Limit  int
	Offset int
}

// DefaultWindow returns the first page with the default size.
func DefaultWindow() Window {
	return Window{Limit: DefaultLimit}
}

func (w Window) Validate() error {
	if w.Limit < 1 {
		return ErrInvalidLimit
	}
	if w.Offset < 0 {
		return ErrInvalidOffset
	}
	return nil
}

// Page describes where a returned window sits in the full result set.
// Next and Previous are offsets rendered as strings and omitted when there is
// no such page.
type Page struct {
	Next     *string `json:"next,omitempty"`
	Limit    int     `json:"limit"`
	Previous *string `json:"previous,omitempty"`
}

// NewPage computes the page boundaries. Limit reports the number of items
// actually returned, not the requested window size.
func NewPage(total int64, w Window, returned int) Page {
	page := Page{Limit: returned}

	// Compared as remaining room so offset+limit is only formed when it fits.
	if offset := int64(w.Offset); offset < total && int64(w.Limit) < total-offset {
		page.Next = offsetString(w.Offset + w.Limit)
	}
	if prev := w.Offset - w.Limit; prev >= 0 {
		page.Previous = offsetString(prev)
	}

	return page
}

func offsetString(n int) *string {
	s := strconv.Itoa(n)
	return &s
}

// Result is the envelope for paginated list responses.
type Result[T any] struct {
	Data []T  `json:"data"`
	Page Page `json:"page"`
}

// NewResult wraps items with their page descriptor. Data is never nil so it
// always serializes as an array.
func NewResult[T any](items []T, total int64, w Window) *Result[T] {
	if items == nil {
		items = []T{}
	}
	return &Result[T]{
		Data: items,
		Page: NewPage(total, w, len(items)),
	}
}
