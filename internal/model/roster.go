package model

import (
	"fmt"
	"io"
)

// Roster is an ordered sequence of Records. Insertion order is display order
// and ids are not required to be unique.
type Roster struct {
	records []Record
}

// NewRoster returns a Roster holding records in argument order.
func NewRoster(records ...Record) *Roster {
	rs := make([]Record, len(records))
	copy(rs, records)
	return &Roster{records: rs}
}

// DefaultRoster returns the fixed two-student roster printed by the roster command.
func DefaultRoster() *Roster {
	return NewRoster(
		NewRecord("Alex", 101),
		NewRecord("Sam", 102),
	)
}

// Len returns the number of records.
func (r *Roster) Len() int {
	return len(r.records)
}

// Records returns a copy of the records in display order.
func (r *Roster) Records() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Display writes one line per record to w, in order. It stops at the first
// write error.
func (r *Roster) Display(w io.Writer) error {
	for i, rec := range r.records {
		if err := rec.Display(w); err != nil {
			return fmt.Errorf("display record %d: %w", i, err)
		}
	}
	return nil
}
