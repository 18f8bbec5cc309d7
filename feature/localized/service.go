package localized

import (
	"context"
	"errors"

	"l10n-manager/core/errs"
	"l10n-manager/core/logger"
	"l10n-manager/core/reconcile"
	"l10n-manager/core/record"
	"l10n-manager/core/resource"
	"l10n-manager/core/translation"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Recorder stores written records.
type Recorder interface {
	Record(ctx context.Context, runID, locale string, records []record.TextRecord) error
}

// Publisher uploads a written locale file.
type Publisher interface {
	Publish(ctx context.Context, locale, file string) error
}

// PoolProvider returns the canonical pool.
type PoolProvider interface {
	Pool(ctx context.Context) ([]record.TextRecord, error)
}

// LocaleReport is the outcome of one mapping.
type LocaleReport struct {
	Name      string   `json:"name"`
	Locale    string   `json:"locale"`
	Path      string   `json:"path"`
	Source    string   `json:"source"`
	Records   int      `json:"records"`
	Updated   []string `json:"updated"`
	Added     []string `json:"added"`
	Matched   int      `json:"matched"`
	Unmatched int      `json:"unmatched"`
	Pending   int      `json:"pending"`
	Written   bool     `json:"written"`
	Error     string   `json:"error,omitempty"`

	err error
}

// Err returns the failure of this locale, if any.
func (r LocaleReport) Err() error {
	return r.err
}

// Report is the outcome of a run.
type Report struct {
	RunID   string         `json:"run_id"`
	DryRun  bool           `json:"dry_run"`
	Locales []LocaleReport `json:"locales"`
}

// Failed returns the reports of failed locales.
func (r *Report) Failed() []LocaleReport {
	var out []LocaleReport
	for _, l := range r.Locales {
		if l.err != nil {
			out = append(out, l)
		}
	}
	return out
}

// Options tunes a run.
type Options struct {
	// DryRun reconciles without writing, recording or publishing.
	DryRun bool
}

// Service runs imports.
type Service struct {
	pools     PoolProvider
	reader    *resource.Reader
	writer    *resource.Writer
	source    translation.Source
	workers   int
	recorder  Recorder
	publisher Publisher
	logger    *zap.Logger
}

// NewService creates a Service. recorder and publisher may be nil.
func NewService(pools PoolProvider, reader *resource.Reader, writer *resource.Writer, source translation.Source, workers int, recorder Recorder, publisher Publisher, logger *zap.Logger) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		pools:     pools,
		reader:    reader,
		writer:    writer,
		source:    source,
		workers:   workers,
		recorder:  recorder,
		publisher: publisher,
		logger:    logger,
	}
}

// Run imports the translations of every mapping. The returned error joins
// the failures of all locales; the report is nil only when the run could not
// start.
func (s *Service) Run(ctx context.Context, mappings []translation.Mapping, opts Options) (*Report, error) {
	if len(mappings) == 0 {
		return nil, errs.Argument("locale mapping can't be empty")
	}

	pool, err := s.pools.Pool(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:   uuid.NewString(),
		DryRun:  opts.DryRun,
		Locales: make([]LocaleReport, len(mappings)),
	}
	s.logger.Info("Import started",
		zap.String("run_id", report.RunID),
		zap.Int("locales", len(mappings)),
		zap.Int("canonical", len(pool)),
		zap.Bool("dry_run", opts.DryRun))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, m := range mappings {
		g.Go(func() error {
			lr := s.runLocale(gctx, report.RunID, pool, m, opts)
			if lr.err != nil {
				lr.Error = lr.err.Error()
			}
			report.Locales[i] = lr
			return nil
		})
	}
	_ = g.Wait()

	var failures []error
	for _, lr := range report.Locales {
		if lr.err != nil {
			failures = append(failures, lr.err)
		}
	}
	return report, errors.Join(failures...)
}

func (s *Service) runLocale(ctx context.Context, runID string, pool []record.TextRecord, m translation.Mapping, opts Options) LocaleReport {
	l := logger.WithLocale(s.logger, m.Name, m.Locale).With(zap.String("run_id", runID))
	lr := LocaleReport{
		Name:   m.Name,
		Locale: m.Locale,
		Path:   s.reader.Layout().LocalePath(m.Locale),
		Source: s.source.Location(m),
	}

	if err := ctx.Err(); err != nil {
		lr.err = err
		return lr
	}

	existing, err := s.reader.ReadLocale(m.Locale)
	if err != nil {
		l.Error("Reading locale failed", zap.Error(err))
		lr.err = err
		return lr
	}

	rows, err := s.source.Load(ctx, m)
	if err != nil {
		l.Error("Reading import failed", zap.Error(err))
		lr.err = err
		return lr
	}

	res := reconcile.Reconcile(pool, existing.Records, rows)
	for _, row := range res.Stats.Unmatched {
		l.Debug("Import row has no canonical match",
			zap.Int("line", row.Line),
			zap.String("hint", row.Hint),
			zap.String("original", row.Original))
	}

	lr.Records = len(res.Records)
	lr.Updated = res.Updated
	lr.Added = res.Added
	lr.Matched = res.Stats.Matched
	lr.Unmatched = len(res.Stats.Unmatched)
	lr.Pending = res.Stats.Untranslated

	if opts.DryRun {
		l.Info("Dry run, locale not written", zap.Int("updated", len(lr.Updated)), zap.Int("added", len(lr.Added)))
		return lr
	}

	path, err := s.writer.WriteLocale(m.Locale, res.Records)
	if err != nil {
		l.Error("Writing locale failed", zap.Error(err))
		lr.err = err
		return lr
	}
	lr.Path = path
	lr.Written = true
	l.Info("Locale written",
		zap.String("path", path),
		zap.Int("records", lr.Records),
		zap.Int("updated", len(lr.Updated)),
		zap.Int("added", len(lr.Added)),
		zap.Int("unmatched", lr.Unmatched),
		zap.Int("pending", lr.Pending))

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, runID, m.Locale, changed(res)); err != nil {
			l.Warn("Recording history failed", zap.Error(err))
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, m.Locale, path); err != nil {
			l.Error("Publishing locale failed", zap.Error(err))
			lr.err = err
		}
	}

	return lr
}

// changed returns the written records that the import updated or added.
func changed(res reconcile.Result) []record.TextRecord {
	names := make(map[string]struct{}, len(res.Updated)+len(res.Added))
	for _, n := range res.Updated {
		names[n] = struct{}{}
	}
	for _, n := range res.Added {
		names[n] = struct{}{}
	}

	var out []record.TextRecord
	for _, r := range res.Records {
		if _, ok := names[r.Name]; ok {
			out = append(out, r)
		}
	}
	return out
}
