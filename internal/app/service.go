package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/report"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/records"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/standings"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/types"
	"github.com/renatmannanov/ayda-run-v2-sub001/pkg/logger"
)

// Service keeps the latest analytics result in memory and serves views of
// it to the HTTP API.
type Service struct {
	mu    sync.RWMutex
	runMu sync.Mutex

	analyzer *Analyzer

	// Configuration
	refreshInterval time.Duration
	reportOpts      []report.Option

	// State
	snapshot   *types.Analytics
	computedAt time.Time
	runs       int
	failures   int
	lastErr    error
	started    bool
	stopCh     chan struct{}
	done       chan struct{}

	logger logger.Logger
}

// ServiceOption applies a configuration option to the Service.
type ServiceOption func(*Service)

// WithRefreshInterval re-runs the analytics in the background while the
// service is started. Zero disables refreshing.
func WithRefreshInterval(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d >= 0 {
			s.refreshInterval = d
		}
	}
}

// WithReportOptions sets the options used to build highlights and the
// Markdown report.
func WithReportOptions(opts ...report.Option) ServiceOption {
	return func(s *Service) {
		s.reportOpts = append([]report.Option(nil), opts...)
	}
}

// WithServiceLogger sets a custom logger for the service.
func WithServiceLogger(l logger.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service around a.
func New(a *Analyzer, opts ...ServiceOption) *Service {
	s := &Service{analyzer: a}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		if a != nil {
			s.logger = a.logger
		} else {
			s.logger = logger.Nop()
		}
	}
	return s
}

// Start computes the first result and, when configured, starts the
// background refresh loop. A failed first run leaves the service stopped.
func (s *Service) Start(ctx context.Context) error {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if started {
		return nil
	}
	if s.analyzer == nil {
		return ErrNoSource
	}

	s.logger.Info(ctx, "starting analytics service...")
	if err := s.Refresh(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}
	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})
	if s.refreshInterval > 0 {
		go s.refreshLoop(s.stopCh, s.done)
	} else {
		close(s.done)
	}
	s.started = true

	s.logger.Info(ctx, "analytics service started",
		logger.Int("editions", s.snapshot.Meta.Editions),
		logger.Duration("refreshInterval", s.refreshInterval),
	)
	return nil
}

// Stop halts the refresh loop and waits for an in-flight refresh to end.
// The last result stays readable.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	stop, done := s.stopCh, s.done
	s.mu.Unlock()

	close(stop)
	<-done
	s.logger.Info(context.Background(), "analytics service stopped")
}

// Refresh runs the analyzer and swaps in the new result. On failure the
// previous result is kept.
func (s *Service) Refresh(ctx context.Context) error {
	if s.analyzer == nil {
		return ErrNoSource
	}
	s.runMu.Lock()
	defer s.runMu.Unlock()

	res, err := s.analyzer.Run(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs++
	if err != nil {
		s.failures++
		s.lastErr = err
		return err
	}
	s.snapshot = res
	s.computedAt = time.Now()
	s.lastErr = nil
	return nil
}

func (s *Service) refreshLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), s.refreshInterval)
			if err := s.Refresh(ctx); err != nil {
				s.logger.Warn(ctx, "analytics refresh failed, keeping previous result", logger.Error(err))
			}
			cancel()
		}
	}
}

// Snapshot returns the latest analytics result.
func (s *Service) Snapshot(ctx context.Context) (*types.Analytics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, ErrNotReady
	}
	return s.snapshot, nil
}

// Highlights extracts the publication summary from the latest result.
func (s *Service) Highlights(ctx context.Context) (report.Highlights, error) {
	a, err := s.Snapshot(ctx)
	if err != nil {
		return report.Highlights{}, err
	}
	return report.ExtractHighlights(a, s.reportOpts...), nil
}

// Report renders the Markdown report of the latest result into w.
func (s *Service) Report(ctx context.Context, w io.Writer) error {
	a, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}
	return report.RenderMarkdown(w, a, s.reportOpts...)
}

// ClubStandings returns the club table of year, the final edition when
// year is zero, cut to limit rows. A non-positive limit returns every row.
func (s *Service) ClubStandings(ctx context.Context, year, limit int) (types.YearStandings, error) {
	a, err := s.Snapshot(ctx)
	if err != nil {
		return types.YearStandings{}, err
	}
	return yearRows(a, a.Clubs, year, limit)
}

// DistanceStandings is ClubStandings for distances.
func (s *Service) DistanceStandings(ctx context.Context, year, limit int) (types.YearStandings, error) {
	a, err := s.Snapshot(ctx)
	if err != nil {
		return types.YearStandings{}, err
	}
	return yearRows(a, a.Distances, year, limit)
}

// Records returns the course records of the latest result.
func (s *Service) Records(ctx context.Context) ([]*records.Entry, error) {
	a, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return a.Records, nil
}

func yearRows(a *types.Analytics, st types.Standings, year, limit int) (types.YearStandings, error) {
	if year == 0 {
		year = a.FinalYear()
	}
	rows, ok := st.Year(year)
	if !ok {
		return types.YearStandings{}, fmt.Errorf("%w: %d", ErrUnknownYear, year)
	}
	if limit > 0 {
		rows = standings.TopN(rows, limit)
	}
	return types.YearStandings{Year: year, Standings: rows}, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"runs":            s.runs,
		"failures":        s.failures,
		"refreshInterval": s.refreshInterval.String(),
	}
	if s.analyzer != nil {
		stats["years"] = s.analyzer.Years()
	}
	if s.lastErr != nil {
		stats["lastError"] = s.lastErr.Error()
	}
	if s.snapshot != nil {
		stats["computedAt"] = s.computedAt.UTC().Format(time.RFC3339)
		stats["datasetID"] = s.snapshot.Meta.DatasetID
		stats["participants"] = s.snapshot.Participants.Total
	}
	return stats
}
