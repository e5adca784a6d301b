package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/standings"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/types"
)

// StandingsDependencies defines the interface for per-year tables.
type StandingsDependencies interface {
	ClubStandings(ctx context.Context, year, limit int) (types.YearStandings, error)
	DistanceStandings(ctx context.Context, year, limit int) (types.YearStandings, error)
}

// StandingsFunc reads one year's table, the final year when year is zero.
type StandingsFunc func(ctx context.Context, year, limit int) (types.YearStandings, error)

// StandingsHandler handles club and distance table requests.
type StandingsHandler struct {
	read     StandingsFunc
	maxLimit int
}

// NewStandingsHandler creates a new standings handler.
func NewStandingsHandler(read StandingsFunc, maxLimit int) *StandingsHandler {
	return &StandingsHandler{read: read, maxLimit: maxLimit}
}

// HandleGetStandings handles GET /clubs?year=Y&limit=N requests. Both
// parameters are optional; limit defaults to the configured maximum.
func (h *StandingsHandler) HandleGetStandings(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_standings"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()

	year := 0
	if s := q.Get("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		year = y
	}

	n := h.maxLimit
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if v > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		n = v
	}

	ys, err := h.read(r.Context(), year, n)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	if ys.Standings == nil {
		ys.Standings = []standings.Row{}
	}
	writeJSON(w, http.StatusOK, ys)
}
