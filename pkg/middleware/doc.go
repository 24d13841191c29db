// Package middleware provides net/http middleware for the attrs server.
//
// This package includes:
//   - OpenTelemetry tracing middleware
//   - Prometheus metrics middleware
//   - Request logging and panic recovery on log/slog
//
// Every middleware has the func(http.Handler) http.Handler shape, so it
// plugs into chi or any other router:
//
//	metrics := middleware.NewMetrics(middleware.WithRegistry(reg))
//
//	r := chi.NewRouter()
//	r.Use(chimw.RequestID)
//	r.Use(middleware.Recover(logger))
//	r.Use(middleware.Logger(logger))
//	r.Use(metrics.Middleware)
//	r.Use(middleware.OpenTelemetry(middleware.WithTracerName("attrs")))
//
// # Prometheus Metrics
//
// NewMetrics registers these collectors:
//   - attrs_http_requests_total
//   - attrs_http_request_duration_seconds
//   - attrs_entries_emitted_total
//   - attrs_normalize_errors_total
//
// Expose them with promhttp.HandlerFor on the same registry.
//
// # Context Propagation
//
// The OpenTelemetry middleware stores the span in the request context.
// Handlers annotate it with RecordError and RecordEntries.
package middleware
