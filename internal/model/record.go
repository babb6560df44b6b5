package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// Record is a single roster entry: a student name and roll number.
// Fields are unexported so a Record cannot change after NewRecord.
type Record struct {
	name string
	id   int
}

// NewRecord returns a Record for the given name and roll number.
// No validation is performed; empty names and duplicate ids are accepted.
func NewRecord(name string, id int) Record {
	return Record{name: name, id: id}
}

// Name returns the student name.
func (r Record) Name() string {
	return r.name
}

// ID returns the roll number.
func (r Record) ID() int {
	return r.id
}

// String formats the record as a single display line without a terminator.
func (r Record) String() string {
	return fmt.Sprintf("Name: %s | Roll: %d", r.name, r.id)
}

// Display writes the record's display line followed by a newline to w.
func (r Record) Display(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.String())
	return err
}

type recordJSON struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// MarshalJSON encodes the record as {"name": ..., "id": ...}.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{Name: r.name, ID: r.id})
}
