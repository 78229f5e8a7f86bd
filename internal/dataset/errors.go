package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn indicates the CSV header lacks a required column.
	ErrMissingColumn = errors.New("dataset: missing required column")

	// ErrMalformed indicates a value or record that could not be parsed.
	ErrMalformed = errors.New("dataset: malformed csv")

	// ErrUnknownDimension indicates a dimension reference that matches no name or label.
	ErrUnknownDimension = errors.New("dataset: unknown dimension")

	// ErrNotNumeric indicates a numeric operation on a text dimension.
	ErrNotNumeric = errors.New("dataset: dimension is not numeric")

	// ErrEmpty indicates there are no usable values.
	ErrEmpty = errors.New("dataset: no values")
)

// LoadError wraps a load failure with the file and column it concerns.
type LoadError struct {
	Path    string
	Column  string
	Wrapped error
}

func (e *LoadError) Error() string {
	msg := e.Wrapped.Error()
	if e.Column != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Column)
	}
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Wrapped
}
