package errors

import (
	"bufio"
	"bytes"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/vango-dev/attrs/pkg/attr"
	"github.com/vango-dev/attrs/pkg/attrio"
	"github.com/vango-dev/attrs/pkg/render"
)

// Category represents the type of error.
type Category string

const (
	CategoryNormalize Category = "normalize"
	CategoryRender    Category = "render"
	CategoryInput     Category = "input"
	CategoryConfig    Category = "config"
	CategoryServer    Category = "server"
	CategoryCLI       Category = "cli"
)

// Location represents a position in an input document.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// AttrsError is a structured error with a code, input location and a hint.
type AttrsError struct {
	// Code is a unique error identifier (e.g., "A001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the input position where the error occurred.
	Location *Location

	// Context contains surrounding input lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example shows the correct approach.
	Example string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *AttrsError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *AttrsError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds an input location, reading context lines from file.
func (e *AttrsError) WithLocation(file string, line, column int) *AttrsError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line)
	return e
}

// WithOffset adds a location computed from a byte offset into data, which
// is the content of file. Context lines come from data, not from disk.
func (e *AttrsError) WithOffset(file string, data []byte, offset int64) *AttrsError {
	if offset < 0 || offset > int64(len(data)) {
		return e
	}
	line, col := lineColumn(data, int(offset))
	e.Location = &Location{File: file, Line: line, Column: col}
	e.Context = contextLines(data, line)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *AttrsError) WithSuggestion(s string) *AttrsError {
	e.Suggestion = s
	return e
}

// WithExample adds an example to the error.
func (e *AttrsError) WithExample(ex string) *AttrsError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *AttrsError) WithDetail(d string) *AttrsError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *AttrsError) Wrap(err error) *AttrsError {
	e.Wrapped = err
	return e
}

// contextRadius is the number of lines kept on each side of an error line.
const contextRadius = 2

// contextStart is the line number of the first context line for targetLine.
func contextStart(targetLine int) int {
	return max(targetLine-contextRadius, 1)
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine int) []string {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil
	}
	return contextLines(data, targetLine)
}

func contextLines(data []byte, targetLine int) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0
	startLine := contextStart(targetLine)
	endLine := targetLine + contextRadius

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// lineColumn converts a byte offset to a 1-based line and column.
func lineColumn(data []byte, offset int) (int, int) {
	line, col := 1, 1
	for _, c := range data[:offset] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// New creates an AttrsError from a registered error code.
func New(code string) *AttrsError {
	template, ok := registry[code]
	if !ok {
		return &AttrsError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &AttrsError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
		Example:    template.Example,
	}
}

// Newf creates a new AttrsError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *AttrsError {
	return &AttrsError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an AttrsError.
func FromError(err error, code string) *AttrsError {
	if err == nil {
		return nil
	}
	var ae *AttrsError
	if stderrors.As(err, &ae) {
		return ae
	}
	return New(code).Wrap(err)
}

// Classify maps errors from the attr, attrio and render packages to coded
// errors.
// Unrecognised errors get fallback.
func Classify(err error, fallback string) *AttrsError {
	if err == nil {
		return nil
	}

	var ae *AttrsError
	if stderrors.As(err, &ae) {
		return ae
	}

	var coercion *attr.CoercionError
	if stderrors.As(err, &coercion) {
		return New("A001").Wrap(err)
	}
	switch {
	case stderrors.Is(err, attr.ErrTooDeep):
		return New("A003").Wrap(err)
	case stderrors.Is(err, attr.ErrEmptyName):
		return New("A004").Wrap(err)
	case stderrors.Is(err, attr.ErrInvalidShape):
		return New("A002").Wrap(err)
	case stderrors.Is(err, render.ErrUnsafeAttributeName):
		return New("A010").Wrap(err)
	case stderrors.Is(err, render.ErrInvalidTag), stderrors.Is(err, render.ErrVoidChildren):
		return New("A011").Wrap(err)
	case stderrors.Is(err, attrio.ErrNotObject):
		return New("A021").Wrap(err)
	case stderrors.Is(err, attrio.ErrDecode):
		return New("A020").Wrap(err)
	}
	return New(fallback).Wrap(err)
}
