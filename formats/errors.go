package formats

import "fmt"

// MalformedInputError reports input with the wrong number of values.
type MalformedInputError struct {
	Expected int
	Got      int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("incorrect number of values: expected %d, got %d", e.Expected, e.Got)
}

// FieldParseError reports a value that is not a valid number for its field.
type FieldParseError struct {
	// Field is the name of the field, e.g. "x_min".
	Field string
	// Value is the offending token.
	Value string
	// Kind is the expected numeric type, "u32" or "f32".
	Kind string
	// Err is the underlying strconv error.
	Err error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("can't parse %s to %s: %q", e.Field, e.Kind, e.Value)
}

func (e *FieldParseError) Unwrap() error {
	return e.Err
}
