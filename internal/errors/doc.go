// Package errors provides structured, actionable error messages for the
// attrs tools.
//
// Every error carries a code that maps to a short message, an explanation and
// usually a hint. Errors raised while reading an input document also carry
// the document position and the surrounding lines.
//
// # Error Categories
//
//   - normalize: attribute values that cannot be flattened
//   - render: flattened names or elements that cannot be written
//   - input: documents that cannot be decoded
//   - config: attrs.json problems
//   - server: HTTP listener problems
//
// # Usage
//
//	err := errors.Classify(normalizeErr, "A002").
//	    WithOffset("attrs.json", data, 42)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR A001: Attribute value cannot be converted to text
//	//
//	//   attrs.json:3:12
//	//
//	//       1 │ {
//	//       2 │   "class": "btn",
//	//   →   3 │   "title": {}
//	//         │            ^
//	//
//	//   Hint: Implement AttributeText() string on the type, ...
package errors
