package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsMiddleware_RecordsRouteAndStatus(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Post("/fail", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	for _, path := range []string{"/items/1", "/items/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/fail", nil))

	if got := metricCounterValue(t, m.requestsTotal.WithLabelValues("/items/{id}", "GET", "200")); got != 2 {
		t.Errorf("requests_total(/items/{id})=%v, want 2", got)
	}
	if got := metricCounterValue(t, m.requestsTotal.WithLabelValues("/fail", "POST", "422")); got != 1 {
		t.Errorf("requests_total(/fail)=%v, want 1", got)
	}
	if got := metricHistogramCount(t, m.requestDuration.WithLabelValues("/items/{id}", "GET")); got != 2 {
		t.Errorf("duration count=%d, want 2", got)
	}
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anything", nil))

	if got := metricCounterValue(t, m.requestsTotal.WithLabelValues("unmatched", "GET", "200")); got != 1 {
		t.Errorf("requests_total(unmatched)=%v, want 1", got)
	}
}

func TestMetrics_RecordEntriesAndErrors(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))

	m.RecordEntries(3)
	m.RecordEntries(0)
	m.RecordEntries(-1)
	m.RecordError("shape")
	m.RecordError("shape")

	if got := metricCounterValue(t, m.entriesEmitted); got != 3 {
		t.Errorf("entries_emitted_total=%v, want 3", got)
	}
	if got := metricCounterValue(t, m.normalizeErrors.WithLabelValues("shape")); got != 2 {
		t.Errorf("normalize_errors_total(shape)=%v, want 2", got)
	}
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordEntries(1)
	m.RecordError("coercion")

	called := false
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Error("nil Metrics middleware should call next")
	}
}

func TestNewMetrics_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithConstLabels(prometheus.Labels{"instance": "a"}))
	m.RecordEntries(1)
	m.RecordError("coercion")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{"attrs_entries_emitted_total", "attrs_normalize_errors_total"} {
		if !names[want] {
			t.Errorf("missing metric family %q", want)
		}
	}
}
