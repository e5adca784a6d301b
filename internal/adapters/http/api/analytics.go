package api

import (
	"bytes"
	"net/http"
)

// AnalyticsHandler serves the latest analytics result and its views.
type AnalyticsHandler struct {
	deps Dependencies
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(deps Dependencies) *AnalyticsHandler {
	return &AnalyticsHandler{deps: deps}
}

// HandleAnalytics handles GET /analytics requests with the full artifact.
func (h *AnalyticsHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_analytics"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	a, err := h.deps.Snapshot(r.Context())
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// HandleHighlights handles GET /highlights requests.
func (h *AnalyticsHandler) HandleHighlights(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_highlights"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	hl, err := h.deps.Highlights(r.Context())
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, hl)
}

// HandleRecords handles GET /records requests.
func (h *AnalyticsHandler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_records"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	recs, err := h.deps.Records(r.Context())
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// HandleReport handles GET /report.md requests with the Markdown report.
func (h *AnalyticsHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_report"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Render fully before writing so a failure still gets a clean status.
	var buf bytes.Buffer
	if err := h.deps.Report(r.Context(), &buf); err != nil {
		writeServiceError(w, op, err)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
