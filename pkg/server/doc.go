// Package server provides the HTTP preview service for attribute
// normalization.
//
// Routes:
//
//	POST /v1/normalize  {"name": "data", "value": {":user_id": 7}}
//	POST /v1/render     {"tag": "input", "attributes": {"disabled": true}}
//	GET  /healthz
//	GET  /metrics
//
// Object keys written with a leading ":" are identifier-style keys and
// have their underscores dasherized. Other keys are used verbatim.
//
// Normalization and render failures answer 422 with a coded error body,
// malformed JSON answers 400 and oversized bodies answer 413:
//
//	{"error": {"code": "A001", "category": "normalize", "message": "..."}}
//
// The server shuts down gracefully when the context passed to Run or Serve
// is cancelled.
package server
