package props

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a required argument is missing,
	// such as an empty key or a nil mapper.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateKey is returned when a property key already exists.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrOutOfRange is returned for an entry position outside the sequence.
	ErrOutOfRange = errors.New("position out of range")

	// ErrEmptyKey is returned when a property line has nothing before '='.
	ErrEmptyKey = errors.New("empty key")

	// ErrMalformedLine is returned for a line that is not a property,
	// comment or blank line.
	ErrMalformedLine = errors.New("malformed line")
)

// ParseError reports a line that could not be loaded.
type ParseError struct {
	Line int    // 1-based line number
	Text string // raw line content
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MappingError reports a stored value that could not be converted to the
// requested type. Key is empty when the mapper is called directly.
type MappingError struct {
	Key   string
	Value string
	Type  string
	Err   error
}

func (e *MappingError) Error() string {
	msg := fmt.Sprintf("%q is not a valid %s", e.Value, e.Type)
	if e.Key != "" {
		msg = fmt.Sprintf("property %q: %s", e.Key, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MappingError) Unwrap() error { return e.Err }

// TransformError reports a failure inside a Transform.
type TransformError struct {
	Key string
	Op  string // "read" or "write"
	Err error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform %s of property %q: %v", e.Op, e.Key, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }
