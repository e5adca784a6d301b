// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/report"
	service "github.com/renatmannanov/ayda-run-v2-sub001/internal/app"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/records"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Snapshot(ctx context.Context) (*types.Analytics, error)
	Highlights(ctx context.Context) (report.Highlights, error)
	Report(ctx context.Context, w io.Writer) error
	Records(ctx context.Context) ([]*records.Entry, error)

	StandingsDependencies
}

// Server wires HTTP routes for the analytics API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	analyticsHandler *AnalyticsHandler
	clubsHandler     *StandingsHandler
	distancesHandler *StandingsHandler
}

// NewServer creates a new API server with all handlers. maxLimit caps the
// limit query parameter of the standings routes.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		analyticsHandler: NewAnalyticsHandler(deps),
		clubsHandler:     NewStandingsHandler(deps.ClubStandings, maxLimit),
		distancesHandler: NewStandingsHandler(deps.DistanceStandings, maxLimit),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/analytics", MetricsMiddleware(s.analyticsHandler.HandleAnalytics, "analytics"))
	mux.HandleFunc("/highlights", MetricsMiddleware(s.analyticsHandler.HandleHighlights, "highlights"))
	mux.HandleFunc("/records", MetricsMiddleware(s.analyticsHandler.HandleRecords, "records"))
	mux.HandleFunc("/report.md", MetricsMiddleware(s.analyticsHandler.HandleReport, "report"))
	mux.HandleFunc("/clubs", MetricsMiddleware(s.clubsHandler.HandleGetStandings, "clubs"))
	mux.HandleFunc("/distances", MetricsMiddleware(s.distancesHandler.HandleGetStandings, "distances"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates service errors to status codes.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNotReady):
		writeError(w, http.StatusServiceUnavailable, "not_ready", Wrap(op, err))
	case errors.Is(err, service.ErrUnknownYear):
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
