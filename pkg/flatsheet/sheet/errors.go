package sheet

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by sheet construction, validation, and conversion.
// Callers match them with errors.Is.
var (
	// ErrCSVReader indicates an I/O or malformed-record failure from the
	// underlying decoder of a file-backed builder.
	ErrCSVReader = errors.New("csv reader error")
	// ErrInvalidPrimaryKey indicates a primary index outside the row range.
	ErrInvalidPrimaryKey = errors.New("invalid primary key")
	// ErrInvalidColumnType indicates a declared column type conflicting with
	// an observed cell value.
	ErrInvalidColumnType = errors.New("invalid column type")
	// ErrInvalidColumnLength indicates a ragged row or an out-of-range column.
	ErrInvalidColumnLength = errors.New("invalid column length")
	// ErrInvalidColumnSort indicates a sort requested on a column without a
	// uniform value type.
	ErrInvalidColumnSort = errors.New("invalid column sort")
	// ErrTranspose indicates a sheet that cannot be transposed into a
	// rectangular result.
	ErrTranspose = errors.New("transpose error")
	// ErrLineGraphConversion indicates a sheet whose shape is unsuitable for
	// a line chart.
	ErrLineGraphConversion = errors.New("line graph conversion error")
	// ErrLineGraph wraps a graph-construction failure from the models
	// package.
	ErrLineGraph = errors.New("line graph error")
)

// Error carries a failure kind together with its location context and, for
// reader-sourced failures, the underlying decoder error.
type Error struct {
	Kind    error
	Context string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Context, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Context)
}

// Is matches the error against its sentinel kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Context: fmt.Sprintf(format, args...)}
}

// WrapReader wraps a decoder or I/O failure from a format builder.
func WrapReader(err error, context string) *Error {
	return &Error{Kind: ErrCSVReader, Context: context, Err: err}
}

func wrapLineGraph(err error) *Error {
	return &Error{Kind: ErrLineGraph, Context: err.Error(), Err: err}
}
