package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for dataset decoding. Every failure is fatal to the
// load as a whole; there is no partial table.
var (
	// ErrMissingKeywordColumn is returned when the header lacks the
	// mandatory "Keyword" column
	ErrMissingKeywordColumn = errors.New(`kwtable: header is missing required "Keyword" column`)

	// ErrInvalidValue is returned when a numeric cell is not a finite number
	ErrInvalidValue = errors.New("kwtable: invalid numeric value")

	// ErrInvalidListEntry is returned when one comma-separated token in a
	// list cell is not a finite number
	ErrInvalidListEntry = errors.New("kwtable: invalid list entry")

	// ErrTrendsLength is returned when a Trends cell does not contain
	// exactly 12 values
	ErrTrendsLength = errors.New("kwtable: trends must contain exactly 12 values")

	// ErrEmptyKeyword is returned when a data line has a blank keyword cell
	ErrEmptyKeyword = errors.New("kwtable: keyword must not be empty")
)

// ParseError reports a line-scoped decode failure with enough context to
// render a precise user-facing message. It wraps one of the sentinel
// errors above.
type ParseError struct {
	// Line is the 1-based physical line number in the source text.
	Line int
	// Column is the column label, when the failure is column-scoped.
	Column Column
	// Raw is the offending raw text, when applicable.
	Raw string
	// Err is the sentinel error kind.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Column != "" && e.Raw != "":
		return fmt.Sprintf("%v (line %d, column %q, value %q)", e.Err, e.Line, e.Column, e.Raw)
	case e.Column != "":
		return fmt.Sprintf("%v (line %d, column %q)", e.Err, e.Line, e.Column)
	default:
		return fmt.Sprintf("%v (line %d)", e.Err, e.Line)
	}
}

// Unwrap returns the sentinel error kind for errors.Is matching.
func (e *ParseError) Unwrap() error {
	return e.Err
}
