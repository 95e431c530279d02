package table

import (
	"errors"
	"strings"
)

var (
	ErrEmptyTableID     = errors.New("table id cannot be empty")
	ErrInvalidCapacity  = errors.New("table capacity must be positive")
	ErrEmptyLocation    = errors.New("table location cannot be empty")
	ErrDuplicateTableID = errors.New("duplicate table id")
)

// Table is a seating unit. Tables are fixed at startup and never mutated.
type Table struct {
	id       string
	capacity int
	location string
}

func NewTable(id string, capacity int, location string) (*Table, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyTableID
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if strings.TrimSpace(location) == "" {
		return nil, ErrEmptyLocation
	}

	return &Table{
		id:       id,
		capacity: capacity,
		location: location,
	}, nil
}

func (t *Table) ID() string       { return t.id }
func (t *Table) Capacity() int    { return t.capacity }
func (t *Table) Location() string { return t.location }
