package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strings"

	"github.com/vango-dev/attrs/internal/errors"
	"github.com/vango-dev/attrs/pkg/attr"
	"github.com/vango-dev/attrs/pkg/attrio"
	"github.com/vango-dev/attrs/pkg/middleware"
	"github.com/vango-dev/attrs/pkg/render"
)

type normalizeRequest struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

type entryJSON struct {
	Name    string  `json:"name"`
	Value   *string `json:"value,omitempty"`
	Present bool    `json:"present"`
}

type normalizeResponse struct {
	Entries []entryJSON `json:"entries"`
	HTML    string      `json:"html"`
}

type renderRequest struct {
	Tag        string          `json:"tag"`
	Attributes json.RawMessage `json:"attributes"`
	Text       string          `json:"text"`
}

type errorResponse struct {
	Error *errors.AttrsError `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// handleNormalize flattens one attribute and returns its entries.
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	value, err := s.decodeValue(req.Value)
	if err != nil {
		s.writeError(w, r, errors.Classify(err, "A020"))
		return
	}

	entries, err := s.config.Normalizer.Normalize(req.Name, value)
	if err != nil {
		s.writeError(w, r, errors.Classify(err, "A002"))
		return
	}

	var html strings.Builder
	if err := render.WriteEntries(&html, entries); err != nil {
		s.writeError(w, r, errors.Classify(err, "A010"))
		return
	}

	s.metrics.RecordEntries(len(entries))
	middleware.RecordEntries(r.Context(), len(entries))

	resp := normalizeResponse{
		Entries: make([]entryJSON, 0, len(entries)),
		HTML:    html.String(),
	}
	for _, e := range entries {
		out := entryJSON{Name: e.Name, Present: !e.HasValue()}
		if text, ok := e.Value.Value(); ok {
			out.Value = &text
		}
		resp.Entries = append(resp.Entries, out)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleRender renders a single element with the given attributes.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	var attrs []attr.Attr
	if len(req.Attributes) > 0 && string(req.Attributes) != "null" {
		var err error
		attrs, err = attrio.DecodeJSONAttrs(req.Attributes, s.decodeOptions()...)
		if err != nil {
			s.writeError(w, r, errors.Classify(err, "A020"))
			return
		}
	}

	var children []*render.Node
	if req.Text != "" {
		children = append(children, render.Text(req.Text))
	}

	html, err := s.renderer.RenderToString(render.El(req.Tag, attrs, children...))
	if err != nil {
		s.writeError(w, r, errors.Classify(err, "A011"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, html)
}

// decodeBody reads a size-limited JSON body into dst.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) *errors.AttrsError {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.New("S004").Wrap(err)
		}
		return errors.New("A022").Wrap(err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return errors.New("S003").WithDetail(err.Error())
	}
	return nil
}

// decodeValue decodes a raw JSON value. A missing value is Absent.
func (s *Server) decodeValue(raw json.RawMessage) (attr.Value, error) {
	if len(raw) == 0 {
		return attr.Absent{}, nil
	}
	return attrio.DecodeJSON(raw, s.decodeOptions()...)
}

// decodeOptions keeps document decoding within the normalizer's depth limit.
func (s *Server) decodeOptions() []attrio.Option {
	return []attrio.Option{attrio.WithMaxDepth(s.config.Normalizer.MaxDepth())}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, ae *errors.AttrsError) {
	status := statusFor(ae.Code)
	if kind := errorKind(ae.Code); kind != "" {
		s.metrics.RecordError(kind)
	}
	middleware.RecordError(r.Context(), ae)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", ae.Code, "error", ae)
	} else {
		s.logger.Debug("request rejected", "code", ae.Code, "error", ae)
	}
	s.writeJSON(w, status, errorResponse{Error: ae})
}

// statusFor maps an error code to an HTTP status.
func statusFor(code string) int {
	switch code {
	case "A001", "A002", "A003", "A004", "A010", "A011":
		return http.StatusUnprocessableEntity
	case "A020", "A021", "S003":
		return http.StatusBadRequest
	case "S004":
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// errorKind is the metrics label for normalization failures.
func errorKind(code string) string {
	switch code {
	case "A001":
		return "coercion"
	case "A002":
		return "shape"
	case "A003":
		return "depth"
	case "A004":
		return "empty_name"
	case "A010":
		return "unsafe_name"
	case "A011":
		return "element"
	case "A020", "A021":
		return "decode"
	}
	return ""
}
