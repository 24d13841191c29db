// Package attrio decodes attribute declarations from JSON and YAML documents.
//
// Documents are objects whose keys are attribute names and whose values are
// attribute values. Key order is preserved, so flattened output follows the
// order written in the document.
//
// A key written with a leading colon is an identifier-style (symbol) key:
//
//	{"data": {":user_id": 7, "raw_key": "x"}}
//
// flattens to data-user-id="7" data-raw_key="x". At the top level a symbol
// key has its underscores replaced too, so ":aria_label" declares aria-label.
//
// Integral JSON numbers decode as integers; all other numbers as floats.
package attrio
