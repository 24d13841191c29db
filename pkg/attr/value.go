package attr

import "fmt"

// Value is an attribute value. The set of implementations is closed.
type Value interface {
	isValue()
}

// Kind identifies the shape of a Value.
type Kind uint8

const (
	KindAbsent    Kind = iota // false or nil
	KindPresent               // true
	KindString                // plain text
	KindSymbol                // identifier-style name
	KindInt                   // signed integer
	KindUint                  // unsigned integer
	KindFloat                 // floating point
	KindCoercible             // converts itself to text
	KindList                  // ordered collection
	KindSet                   // unordered collection
	KindMap                   // nested attributes
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "Absent"
	case KindPresent:
		return "Present"
	case KindString:
		return "String"
	case KindSymbol:
		return "Symbol"
	case KindInt:
		return "Int"
	case KindUint:
		return "Uint"
	case KindFloat:
		return "Float"
	case KindCoercible:
		return "Coercible"
	case KindList:
		return "List"
	case KindSet:
		return "Set"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// Absent is a value that produces no attribute at all.
type Absent struct{}

// Present is a boolean attribute that is switched on.
type Present struct{}

// String is plain attribute text.
type String string

// Symbol is an identifier-style name. As a Map key its underscores are
// rendered as dashes; as a value it renders unchanged.
type Symbol string

// Int is a signed integer value.
type Int int64

// Uint is an unsigned integer value.
type Uint uint64

// Float is a floating point value.
type Float float64

// Coercible wraps a value that renders itself to text.
type Coercible struct {
	V ToText
}

// List is an ordered collection. Its elements are joined with a single space.
type List []Value

// Set is an unordered collection. Its elements are joined with a single space
// in ascending text order, with duplicates removed.
type Set []Value

// Map is an ordered sequence of nested attributes. Keys must be unique.
type Map []Field

func (Absent) isValue()    {}
func (Present) isValue()   {}
func (String) isValue()    {}
func (Symbol) isValue()    {}
func (Int) isValue()       {}
func (Uint) isValue()      {}
func (Float) isValue()     {}
func (Coercible) isValue() {}
func (List) isValue()      {}
func (Set) isValue()       {}
func (Map) isValue()       {}

// ToText is implemented by custom types that know their attribute text.
type ToText interface {
	AttributeText() string
}

// stringerText adapts fmt.Stringer to ToText.
type stringerText struct {
	s fmt.Stringer
}

func (t stringerText) AttributeText() string { return t.s.String() }

// Bool returns Present for true and Absent for false.
func Bool(b bool) Value {
	if b {
		return Present{}
	}
	return Absent{}
}

// Coerce wraps t as a Coercible value.
func Coerce(t ToText) Value {
	if t == nil {
		return Absent{}
	}
	return Coercible{V: t}
}

// Stringer wraps s as a Coercible value.
func Stringer(s fmt.Stringer) Value {
	if s == nil {
		return Absent{}
	}
	return Coercible{V: stringerText{s: s}}
}

// KindOf returns the Kind of v. A nil Value is Absent.
func KindOf(v Value) Kind {
	switch v.(type) {
	case nil, Absent:
		return KindAbsent
	case Present:
		return KindPresent
	case String:
		return KindString
	case Symbol:
		return KindSymbol
	case Int:
		return KindInt
	case Uint:
		return KindUint
	case Float:
		return KindFloat
	case Coercible:
		return KindCoercible
	case List:
		return KindList
	case Set:
		return KindSet
	case Map:
		return KindMap
	default:
		return KindAbsent
	}
}

// Key is a Map key.
type Key struct {
	// Name is the key text as supplied.
	Name string

	// Symbolic marks identifier-style keys whose underscores become dashes.
	Symbolic bool
}

// SymKey creates an identifier-style key.
func SymKey(name string) Key { return Key{Name: name, Symbolic: true} }

// StrKey creates a literal key used verbatim.
func StrKey(name string) Key { return Key{Name: name} }

// Segment returns the text the key contributes to a composed attribute name.
func (k Key) Segment() string {
	if k.Symbolic {
		return dasherize(k.Name)
	}
	return k.Name
}

// Field is one entry of a Map.
type Field struct {
	Key   Key
	Value Value
}

// SymField creates a Field with an identifier-style key.
func SymField(name string, v Value) Field { return Field{Key: SymKey(name), Value: v} }

// StrField creates a Field with a literal key.
func StrField(name string, v Value) Field { return Field{Key: StrKey(name), Value: v} }

// Get returns the value stored under key, if any.
func (m Map) Get(key Key) (Value, bool) {
	for _, f := range m {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// With replaces the value under key, or appends a new field keeping order.
func (m Map) With(key Key, v Value) Map {
	for i, f := range m {
		if f.Key == key {
			m[i].Value = v
			return m
		}
	}
	return append(m, Field{Key: key, Value: v})
}

// Attr is a single attribute as declared by a caller building an element.
// Value may be any Go value accepted by From.
type Attr struct {
	Name  string
	Value any
}
