// Package errs declares error types used across the query algebra.
package errs

import (
	"fmt"
	"strconv"
)

// Absent is returned when extracting a value from a null wrapper, or when a
// requirement placed on a wrapper is violated.
type Absent struct {
	// What describes what was required or extracted.
	What string
}

// Error implements the error interface.
func (e Absent) Error() string {
	if e.What == "" {
		return "absent value"
	}
	return "absent value: " + e.What
}

// LengthMismatch is returned when combining sequences whose lengths must
// agree but don't.
type LengthMismatch struct {
	What string
	Want int
	Got  int
}

// Error implements the error interface.
func (e LengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: %s must have %d elements, but has %d",
		e.What, e.Want, e.Got)
}

// NotAWrapper is returned when a collection is built from a sequence that
// contains a value which is not a wrapper.
type NotAWrapper struct {
	Index int
	Value any
}

// Error implements the error interface.
func (e NotAWrapper) Error() string {
	return fmt.Sprintf("collection element %d is not a wrapper, but %T",
		e.Index, e.Value)
}

// OutOfRange is returned when indexing a sequence with an index outside its
// valid range.
type OutOfRange struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    string
}

// Error implements the error interface.
func (e OutOfRange) Error() string {
	if e.ValidHigh < e.ValidLow {
		return fmt.Sprintf("out of range: %s has no valid value, but is %s",
			e.What, e.Actual)
	}
	return fmt.Sprintf("out of range: %s must be from %s to %s, but is %s",
		e.What, strconv.Itoa(e.ValidLow), strconv.Itoa(e.ValidHigh), e.Actual)
}
