// Package attr normalizes structured HTML attribute values into the flat,
// ordered list of entries written into an element's opening tag.
//
// A caller declares an attribute as a name plus a value of almost any shape.
// The normalizer classifies the value and produces entries:
//
//	false, nil          → nothing
//	true                → bare name (presence-only attribute)
//	string, Symbol      → text unchanged
//	integers, floats    → canonical decimal text
//	List, Set           → element texts joined by a single space
//	Map                 → one attribute per key, names joined with "-"
//	ToText, fmt.Stringer → text returned by the value itself
//
// # Value Model
//
// Value is a closed union. Absent, Present, String, Symbol, Int, Uint, Float,
// Coercible, List, Set and Map are its only members. From converts arbitrary
// Go values into a Value so callers rarely build the union by hand:
//
//	v, err := attr.From(map[attr.Symbol]any{"name": map[attr.Symbol]any{"first_name": "Joel"}})
//	entries, err := attr.Normalize("data", v)
//	// data-name-first-name="Joel"
//
// # Map Keys
//
// Symbol keys are identifier-style: their underscores become dashes when the
// name is composed. String keys are used verbatim:
//
//	attr.Map{attr.SymField("first_name", attr.String("Joel"))} → data-first-name
//	attr.Map{attr.StrField("first_name", attr.String("Joel"))} → data-first_name
//
// # Escaping
//
// Entries carry raw text. Escaping names and values for HTML is the job of the
// code that writes the tag (see package render).
//
// # Concurrency
//
// Normalize is pure and holds no shared state. A *Normalizer is immutable once
// built and may be shared across goroutines.
package attr
