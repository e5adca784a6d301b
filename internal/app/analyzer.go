// Package service runs the analytics pipeline over a dataset source and
// serves its latest result to the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/identity"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/normalize"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/types"
	"github.com/renatmannanov/ayda-run-v2-sub001/pkg/logger"
	"github.com/renatmannanov/ayda-run-v2-sub001/pkg/metrics"
)

// Default bounds for emitted tables.
const (
	defaultTopN        = 10
	defaultHomeCountry = "KAZ"
)

// Analyzer loads every configured edition and computes the analytics
// result in one synchronous pass.
type Analyzer struct {
	source model.Source
	kind   string

	years        []int
	policy       identity.ClubPolicy
	homeCountry  string
	aliases      map[string]string
	topClubs     int
	topDistances int
	topCountries int
	topCities    int

	logger logger.Logger
}

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithLogger sets a custom logger for the analyzer.
func WithLogger(l logger.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithYears sets the ascending edition sequence.
func WithYears(years []int) Option {
	return func(a *Analyzer) {
		a.years = append([]int(nil), years...)
	}
}

// WithClubPolicy selects which clubs a finisher counts for.
func WithClubPolicy(p identity.ClubPolicy) Option {
	return func(a *Analyzer) {
		if p != "" {
			a.policy = p
		}
	}
}

// WithHomeCountry sets the nationality treated as domestic.
func WithHomeCountry(code string) Option {
	return func(a *Analyzer) {
		if code = strings.TrimSpace(code); code != "" {
			a.homeCountry = code
		}
	}
}

// WithDistanceAliases layers extra labels over the built-in distance table.
func WithDistanceAliases(aliases map[string]string) Option {
	return func(a *Analyzer) {
		a.aliases = aliases
	}
}

// WithTopN bounds the club, distance, nationality and city tables.
// Non-positive values keep the default.
func WithTopN(clubs, distances, countries, cities int) Option {
	return func(a *Analyzer) {
		if clubs > 0 {
			a.topClubs = clubs
		}
		if distances > 0 {
			a.topDistances = distances
		}
		if countries > 0 {
			a.topCountries = countries
		}
		if cities > 0 {
			a.topCities = cities
		}
	}
}

// WithSourceKind names the source in metrics when it cannot name itself.
func WithSourceKind(kind string) Option {
	return func(a *Analyzer) {
		if kind != "" {
			a.kind = kind
		}
	}
}

// NewAnalyzer constructs an Analyzer reading from src.
func NewAnalyzer(src model.Source, opts ...Option) (*Analyzer, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	a := &Analyzer{
		source:       src,
		kind:         "custom",
		years:        []int{2022, 2023, 2024, 2025, 2026},
		policy:       identity.ClubPolicySingle,
		homeCountry:  defaultHomeCountry,
		topClubs:     defaultTopN,
		topDistances: defaultTopN,
		topCountries: defaultTopN,
		topCities:    defaultTopN,
	}
	if k, ok := src.(interface{ Kind() string }); ok {
		a.kind = k.Kind()
	}

	for _, opt := range opts {
		opt(a)
	}

	if err := model.ValidateYears(a.years); err != nil {
		return nil, err
	}
	if _, err := identity.ParseClubPolicy(string(a.policy)); err != nil {
		return nil, err
	}
	if a.logger == nil {
		a.logger = logger.Get().Named("analyzer")
	}
	return a, nil
}

// Years returns the configured edition sequence.
func (a *Analyzer) Years() []int { return append([]int(nil), a.years...) }

// Run loads every edition and computes the analytics result. It fails
// without a partial result when an edition is missing, empty or lacks a
// required field.
func (a *Analyzer) Run(ctx context.Context) (res *types.Analytics, err error) {
	start := time.Now()
	defer func() {
		status := metrics.StatusSuccess
		if err != nil {
			status = metrics.StatusFailure
			metrics.RecordError("analyzer", errorType(err))
			a.logger.Error(ctx, "analytics run failed", logger.Error(err))
		}
		metrics.RecordRun(status, time.Since(start).Seconds())
	}()

	raw, err := a.load(ctx)
	if err != nil {
		return nil, err
	}

	ds := normalize.Dataset(a.years, raw, normalize.NewDistanceTable(a.aliases))

	resolver, err := identity.NewResolver(a.years, identity.WithClubPolicy(a.policy))
	if err != nil {
		return nil, err
	}
	ids, err := resolver.Resolve(ds)
	if err != nil {
		return nil, fmt.Errorf("resolve identities: %w", err)
	}

	res, excluded := a.assemble(ds, ids)
	res.Meta.DatasetID = Fingerprint(a.years, raw)

	for _, reason := range exclusionReasons {
		if n := excluded[reason]; n > 0 {
			metrics.AddRecordsExcluded(reason, n)
			a.logger.Debug(ctx, "records excluded", logger.String("reason", reason), logger.Int("count", n))
		}
	}
	metrics.SetParticipants(ids.Len(), ds.Editions())

	a.logger.Info(ctx, "analytics run completed",
		logger.Int("editions", ds.Editions()),
		logger.Int("participants", ids.Len()),
		logger.String("datasetID", res.Meta.DatasetID),
		logger.Duration("duration", time.Since(start)),
	)
	return res, nil
}

// load reads the editions in ascending order and checks each one.
func (a *Analyzer) load(ctx context.Context) (map[int][]model.YearlyResultRecord, error) {
	raw := make(map[int][]model.YearlyResultRecord, len(a.years))
	for _, year := range a.years {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t0 := time.Now()
		recs, err := a.source.Load(ctx, year)
		metrics.ObserveSourceLoad(a.kind, float64(time.Since(t0).Microseconds())/1000)
		if err != nil {
			return nil, fmt.Errorf("load %d: %w", year, err)
		}
		if len(recs) == 0 {
			return nil, fmt.Errorf("load %d: %w", year, model.ErrEmptyDataset)
		}
		if err := requireFields(year, recs); err != nil {
			return nil, err
		}

		metrics.SetRecordsLoaded(year, len(recs))
		a.logger.Info(ctx, "dataset loaded",
			logger.Int("year", year),
			logger.Int("records", len(recs)),
			logger.String("source", a.kind),
		)
		raw[year] = recs
	}
	return raw, nil
}

// requireFields fails when no record of the edition carries a name or a
// distance, which means the column is absent from the set.
func requireFields(year int, recs []model.YearlyResultRecord) error {
	var hasName, hasDistance bool
	for _, r := range recs {
		hasName = hasName || strings.TrimSpace(r.Name) != ""
		hasDistance = hasDistance || strings.TrimSpace(r.Distance) != ""
		if hasName && hasDistance {
			return nil
		}
	}
	if !hasName {
		return fmt.Errorf("load %d: %w: name", year, model.ErrMissingField)
	}
	return fmt.Errorf("load %d: %w: distance", year, model.ErrMissingField)
}

func errorType(err error) string {
	switch {
	case errors.Is(err, model.ErrYearMissing):
		return "year_missing"
	case errors.Is(err, model.ErrEmptyDataset):
		return "empty_dataset"
	case errors.Is(err, model.ErrMissingField):
		return "missing_field"
	case errors.Is(err, model.ErrYearOrder):
		return "year_order"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "other"
	}
}
