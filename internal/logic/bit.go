// Package logic implements boolean gates over two-valued bits.
package logic

import "fmt"

// Bit is a boolean value encoded as Low (0) or High (1).
type Bit uint8

const (
	Low  Bit = 0
	High Bit = 1
)

// FromInt converts an integer to a Bit, treating any nonzero value as High.
func FromInt(n int) Bit {
	if n != 0 {
		return High
	}
	return Low
}

// FromBool converts a bool to a Bit.
func FromBool(b bool) Bit {
	if b {
		return High
	}
	return Low
}

// Bool reports whether b is High.
func (b Bit) Bool() bool {
	return b == High
}

// Int returns 0 or 1.
func (b Bit) Int() int {
	if b == High {
		return 1
	}
	return 0
}

// String returns "0" or "1".
func (b Bit) String() string {
	return fmt.Sprint(b.Int())
}

// MarshalJSON encodes b as the number 0 or 1. Without it a []Bit would be
// encoded as a base64 byte string.
func (b Bit) MarshalJSON() ([]byte, error) {
	return []byte(b.String()), nil
}

// IsValid reports whether b is one of Low or High.
func (b Bit) IsValid() bool {
	switch b {
	case Low, High:
		return true
	}
	return false
}
