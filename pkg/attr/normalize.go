package attr

import (
	"slices"
	"strings"
)

// DefaultMaxDepth is the default limit on nested Maps and containers.
const DefaultMaxDepth = 64

// Emitted is the value half of an Entry: either no value (presence-only)
// or a text value.
type Emitted struct {
	text string
	ok   bool
}

// NoValue marks a presence-only attribute such as `disabled`.
var NoValue = Emitted{}

// Text returns an Emitted carrying s.
func Text(s string) Emitted {
	return Emitted{text: s, ok: true}
}

// Value returns the text and whether there is one.
func (e Emitted) Value() (string, bool) {
	return e.text, e.ok
}

// Entry is a single flattened attribute ready to be written into a tag.
// Name and text are raw; the writer escapes them.
type Entry struct {
	Name  string
	Value Emitted
}

// HasValue reports whether the entry carries text, as opposed to being a
// presence-only attribute.
func (e Entry) HasValue() bool {
	return e.Value.ok
}

// Text returns the entry's text, or "" for presence-only entries.
func (e Entry) Text() string {
	return e.Value.text
}

// String formats the entry as name="text" or name, without escaping.
// It is meant for logs and debugging.
func (e Entry) String() string {
	if !e.Value.ok {
		return e.Name
	}
	return e.Name + `="` + e.Value.text + `"`
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithMaxDepth limits how deeply values may nest. Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(n *Normalizer) {
		if depth > 0 {
			n.maxDepth = depth
		}
	}
}

// Normalizer flattens attribute values into entries.
// The zero value is not usable; create one with New.
type Normalizer struct {
	maxDepth int
}

// New creates a Normalizer with the given options.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// MaxDepth returns the configured nesting limit.
func (n *Normalizer) MaxDepth() int {
	return n.maxDepth
}

var defaultNormalizer = New()

// Normalize flattens v declared under name using default options.
func Normalize(name string, v Value) ([]Entry, error) {
	return defaultNormalizer.Normalize(name, v)
}

// NormalizeAny classifies v with From and flattens it under name.
func NormalizeAny(name string, v any) ([]Entry, error) {
	return defaultNormalizer.NormalizeAny(name, v)
}

// NormalizeAll flattens each attribute in order and concatenates the results.
func NormalizeAll(attrs ...Attr) ([]Entry, error) {
	return defaultNormalizer.NormalizeAll(attrs...)
}

// Normalize flattens v declared under name into entries.
//
// The rules, first match wins:
//   - Absent produces nothing.
//   - Present produces the bare name.
//   - Map produces one entry per key, in order, named name-key. Symbol keys
//     have their underscores replaced by dashes. Nested Maps extend the name.
//   - List and Set produce one entry whose text is the element texts joined
//     by a single space.
//   - Everything else produces one entry with the value's text.
func (n *Normalizer) Normalize(name string, v Value) ([]Entry, error) {
	if name == "" {
		return nil, shapeErr("", KindOf(v), ErrEmptyName, "attribute name is empty")
	}
	return n.appendEntries(nil, name, v)
}

// NormalizeAny classifies v with the Normalizer's depth limit and flattens it.
func (n *Normalizer) NormalizeAny(name string, v any) ([]Entry, error) {
	if name == "" {
		return nil, shapeErr("", KindAbsent, ErrEmptyName, "attribute name is empty")
	}
	val, err := n.classify(name, v, 0)
	if err != nil {
		return nil, err
	}
	return n.appendEntries(nil, name, val)
}

// NormalizeAll flattens each attribute in order and concatenates the results.
func (n *Normalizer) NormalizeAll(attrs ...Attr) ([]Entry, error) {
	var entries []Entry
	for _, a := range attrs {
		if a.Name == "" {
			return nil, shapeErr("", KindAbsent, ErrEmptyName, "attribute name is empty")
		}
		val, err := n.classify(a.Name, a.Value, 0)
		if err != nil {
			return nil, err
		}
		entries, err = n.appendEntries(entries, a.Name, val)
		if err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// frame is one pending value on the work stack.
type frame struct {
	name  string
	value Value
	depth int
}

// appendEntries walks v depth first with an explicit stack so that deeply
// nested input cannot exhaust the goroutine stack.
func (n *Normalizer) appendEntries(dst []Entry, name string, v Value) ([]Entry, error) {
	stack := []frame{{name: name, value: v}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch val := f.value.(type) {
		case nil, Absent:
			// Nothing to emit.

		case Present:
			dst = append(dst, Entry{Name: f.name, Value: NoValue})

		case Map:
			if f.depth >= n.maxDepth {
				return nil, shapeErr(f.name, KindMap, ErrTooDeep, "nesting exceeds %d levels", n.maxDepth)
			}
			if err := checkKeys(f.name, val); err != nil {
				return nil, err
			}
			// Push in reverse so the first key is popped first.
			for i := len(val) - 1; i >= 0; i-- {
				stack = append(stack, frame{
					name:  f.name + "-" + val[i].Key.Segment(),
					value: val[i].Value,
					depth: f.depth + 1,
				})
			}

		case List:
			text, err := joinElements(f.name, val, false)
			if err != nil {
				return nil, err
			}
			dst = append(dst, Entry{Name: f.name, Value: Text(text)})

		case Set:
			text, err := joinElements(f.name, val, true)
			if err != nil {
				return nil, err
			}
			dst = append(dst, Entry{Name: f.name, Value: Text(text)})

		default:
			text, err := scalarText(f.name, val)
			if err != nil {
				return nil, err
			}
			dst = append(dst, Entry{Name: f.name, Value: Text(text)})
		}
	}

	return dst, nil
}

// checkKeys rejects empty and duplicate keys.
func checkKeys(name string, m Map) error {
	var seen map[Key]struct{}
	if len(m) > 8 {
		seen = make(map[Key]struct{}, len(m))
	}
	for i, f := range m {
		if f.Key.Name == "" {
			return shapeErr(name, KindMap, ErrEmptyName, "map key %d is empty", i)
		}
		if seen != nil {
			if _, dup := seen[f.Key]; dup {
				return shapeErr(name, KindMap, ErrInvalidShape, "duplicate map key %q", f.Key.Name)
			}
			seen[f.Key] = struct{}{}
			continue
		}
		for _, prev := range m[:i] {
			if prev.Key == f.Key {
				return shapeErr(name, KindMap, ErrInvalidShape, "duplicate map key %q", f.Key.Name)
			}
		}
	}
	return nil
}

// joinElements renders collection elements and joins them with a space.
// Absent elements are skipped. Nested containers and Present are rejected.
func joinElements(name string, elems []Value, sorted bool) (string, error) {
	parts := make([]string, 0, len(elems))
	for _, el := range elems {
		switch el.(type) {
		case nil, Absent:
			continue
		case Present, List, Set, Map:
			kind := KindOf(el)
			return "", shapeErr(name, kind, ErrInvalidShape, "%s is not allowed inside a collection", kind)
		}
		text, err := scalarText(name, el)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	if sorted {
		slices.Sort(parts)
		parts = slices.Compact(parts)
	}
	return strings.Join(parts, " "), nil
}

// dasherize replaces every underscore with a dash.
func dasherize(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}
