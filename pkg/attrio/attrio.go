package attrio

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/attrs/pkg/attr"
)

// SymbolPrefix marks an identifier-style key.
const SymbolPrefix = ":"

// ErrDecode is wrapped by every decoding failure.
var ErrDecode = errors.New("attrio: decode failed")

// ErrNotObject is returned when a document's top level is not an object.
var ErrNotObject = errors.New("attrio: top level must be an object")

// Format is a document format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks a format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("attrio: unknown format %q (want json or yaml)", s)
}

// Option configures decoding.
type Option func(*options)

type options struct {
	maxDepth int
}

// WithMaxDepth limits how deeply documents may nest. It should match the
// depth limit of the Normalizer the result is passed to. Values below 1 are
// ignored.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

func newOptions(opts []Option) options {
	o := options{maxDepth: attr.DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Decode reads a single value in the given format.
func Decode(r io.Reader, format Format, opts ...Option) (attr.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, decodeErr(err)
	}
	switch format {
	case FormatYAML:
		return DecodeYAML(data, opts...)
	default:
		return DecodeJSON(data, opts...)
	}
}

// DecodeAttrs reads a top-level object in the given format as attributes.
func DecodeAttrs(r io.Reader, format Format, opts ...Option) ([]attr.Attr, error) {
	v, err := Decode(r, format, opts...)
	if err != nil {
		return nil, err
	}
	return Attrs(v)
}

// Attrs turns a decoded top-level object into attribute declarations.
func Attrs(v attr.Value) ([]attr.Attr, error) {
	m, ok := v.(attr.Map)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, attr.KindOf(v))
	}
	attrs := make([]attr.Attr, 0, len(m))
	for _, f := range m {
		attrs = append(attrs, attr.Attr{Name: f.Key.Segment(), Value: f.Value})
	}
	return attrs, nil
}

// ParseKey interprets a document key, honouring SymbolPrefix.
func ParseKey(s string) attr.Key {
	if len(s) > len(SymbolPrefix) && strings.HasPrefix(s, SymbolPrefix) {
		return attr.SymKey(s[len(SymbolPrefix):])
	}
	return attr.StrKey(s)
}

func decodeErr(err error) error {
	return fmt.Errorf("%w: %w", ErrDecode, err)
}
