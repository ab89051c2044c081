package validate

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/scenewright/sceneqc/log"
	"github.com/scenewright/sceneqc/metrics"
	"github.com/scenewright/sceneqc/stage"
	"github.com/scenewright/sceneqc/types"
)

// Scanner is one scan session over a single stage. It is constructed
// explicitly by the caller and passed by reference; there is no package
// singleton. The stage is only read, so a Scanner needs no locking, but a
// Scanner itself is single-use per Run.
type Scanner struct {
	st      stage.Stage
	log     *log.Logger
	metrics *metrics.Collector
	checks  types.CheckSet
	scanID  string
	now     func() time.Time
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the diagnostic logger. Defaults to a no-op logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Scanner) { s.log = l }
}

// WithMetrics sets the scan counter collector. Defaults to none.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Scanner) { s.metrics = c }
}

// WithChecks selects which validators Run executes. Defaults to all.
func WithChecks(set types.CheckSet) Option {
	return func(s *Scanner) { s.checks = set }
}

// WithScanID overrides the generated scan identifier.
func WithScanID(id string) Option {
	return func(s *Scanner) { s.scanID = id }
}

// NewScanner creates a scan session over st.
func NewScanner(st stage.Stage, opts ...Option) *Scanner {
	s := &Scanner{
		st:     st,
		log:    log.Nop(),
		checks: types.AllChecks(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.scanID == "" {
		s.scanID = uuid.NewString()
	}
	return s
}

// ScanID returns the session's scan identifier.
func (s *Scanner) ScanID() string { return s.scanID }

// Run executes the enabled validators in canonical order (references,
// materials, render, attributes), concatenates their error sequences, and
// assembles the scan report.
//
// An empty check set yields a report with no ChecksRun entries: the
// "all checks disabled" state, which presentation layers must report
// differently from a clean scan.
func (s *Scanner) Run(ctx context.Context) (*types.Report, error) {
	report := &types.Report{
		SchemaVersion: types.ReportSchemaVersion,
		ScanID:        s.scanID,
		Stage:         s.st.Identifier(),
		StartedAt:     s.now().UTC().Format(time.RFC3339),
	}

	for _, check := range s.checks.Ordered() {
		errs, err := s.runCheck(ctx, check)
		report.Errors = append(report.Errors, errs...)
		report.ChecksRun = append(report.ChecksRun, check)
		if err != nil {
			report.Summary = s.metrics.Summary()
			return report, err
		}
	}

	for _, e := range report.Errors {
		s.metrics.ErrorDetected(e.Kind)
	}
	report.Summary = s.metrics.Summary()
	return report, nil
}

func (s *Scanner) runCheck(ctx context.Context, check types.Check) ([]types.ValidationError, error) {
	switch check {
	case types.CheckReferences:
		return s.References(ctx)
	case types.CheckMaterials:
		return s.MaterialBindings(ctx)
	case types.CheckRender:
		return s.RenderConfig(ctx)
	case types.CheckAttributes:
		return s.Attributes(ctx)
	default:
		return nil, nil
	}
}
