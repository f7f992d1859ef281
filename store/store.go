package store

import (
	"errors"
	"fmt"
)

// ErrUnavailable reports a backing container or dataset that cannot be read.
var ErrUnavailable = errors.New("store: data store unavailable")

// Table holds the named numeric columns of one dataset, keyed by the CSV
// header names. Columns of one table always share a length.
type Table map[string][]float64

// Reader is a read-only keyed container of tabulated datasets.
type Reader interface {
	// Read returns the named columns stored under key.
	Read(key string) (Table, error)

	// Keys lists every dataset key available in the container, sorted.
	Keys() ([]string, error)
}

// Column returns the named column. A missing column wraps ErrUnavailable.
func (t Table) Column(name string) ([]float64, error) {
	col, ok := t[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrUnavailable)
	}
	return col, nil
}

// Rows returns the shared column length, 0 for an empty table.
func (t Table) Rows() int {
	for _, col := range t {
		return len(col)
	}
	return 0
}
