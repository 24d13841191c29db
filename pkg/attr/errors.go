package attr

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotCoercible is returned when a value matches no known shape and
	// offers no way to render itself as text.
	ErrNotCoercible = errors.New("attr: value cannot be coerced to text")

	// ErrInvalidShape is returned when a value has a recognised shape in a
	// position where that shape is not allowed.
	ErrInvalidShape = errors.New("attr: invalid attribute shape")

	// ErrTooDeep is returned when nesting exceeds the configured depth.
	ErrTooDeep = errors.New("attr: value nested too deeply")

	// ErrEmptyName is returned when an attribute or composed name is empty.
	ErrEmptyName = errors.New("attr: empty attribute name")
)

// CoercionError reports a value that cannot be turned into attribute text.
type CoercionError struct {
	// Name is the attribute name the value was declared under.
	Name string

	// Type is the dynamic Go type of the rejected value.
	Type reflect.Type
}

// Error implements the error interface.
func (e *CoercionError) Error() string {
	typ := "<nil>"
	if e.Type != nil {
		typ = e.Type.String()
	}
	if e.Name == "" {
		return fmt.Sprintf("attr: cannot coerce value of type %s to text", typ)
	}
	return fmt.Sprintf("attr %q: cannot coerce value of type %s to text", e.Name, typ)
}

// Unwrap returns ErrNotCoercible.
func (e *CoercionError) Unwrap() error {
	return ErrNotCoercible
}

// ShapeError reports a value whose structure is not allowed where it appears.
type ShapeError struct {
	// Name is the (possibly composed) attribute name.
	Name string

	// Kind is the offending value's shape.
	Kind Kind

	// Reason is a short human readable explanation.
	Reason string

	// Err is the sentinel describing the failure class.
	Err error
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Name == "" {
		return "attr: " + e.Reason
	}
	return fmt.Sprintf("attr %q: %s", e.Name, e.Reason)
}

// Unwrap returns the failure class sentinel.
func (e *ShapeError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidShape
	}
	return e.Err
}

// Is reports every ShapeError as ErrInvalidShape in addition to its class.
func (e *ShapeError) Is(target error) bool {
	return target == ErrInvalidShape
}

func shapeErr(name string, kind Kind, err error, format string, args ...any) *ShapeError {
	return &ShapeError{
		Name:   name,
		Kind:   kind,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}

func coercionErr(name string, v any) *CoercionError {
	return &CoercionError{Name: name, Type: reflect.TypeOf(v)}
}
