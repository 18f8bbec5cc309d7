package localize

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"l10n-manager/core/errs"
	"l10n-manager/core/reconcile"
	"l10n-manager/core/record"
	"l10n-manager/core/resource"
	"l10n-manager/core/translation"

	"go.uber.org/zap"
)

// PoolProvider returns the canonical pool.
type PoolProvider interface {
	Pool(ctx context.Context) ([]record.TextRecord, error)
}

// Export describes one written export file.
type Export struct {
	Name    string `json:"name"`
	Locale  string `json:"locale"`
	Path    string `json:"path"`
	Pending int    `json:"pending"`
}

// Service computes and exports pending strings.
type Service struct {
	pools  PoolProvider
	reader *resource.Reader
	logger *zap.Logger
}

// NewService creates a Service.
func NewService(pools PoolProvider, reader *resource.Reader, logger *zap.Logger) *Service {
	return &Service{pools: pools, reader: reader, logger: logger}
}

// Pending returns the canonical records locale has no entry for.
func (s *Service) Pending(ctx context.Context, locale string) ([]record.TextRecord, error) {
	pool, err := s.pools.Pool(ctx)
	if err != nil {
		return nil, err
	}
	return s.pending(pool, locale)
}

func (s *Service) pending(pool []record.TextRecord, locale string) ([]record.TextRecord, error) {
	existing, err := s.reader.ReadLocale(locale)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		s.logger.Debug("Locale has no strings file yet", zap.String("locale", locale))
	}
	return reconcile.Pending(pool, existing.Records), nil
}

// Export writes one CSV per mapping into outDir.
func (s *Service) Export(ctx context.Context, mappings []translation.Mapping, outDir string) ([]Export, error) {
	if len(mappings) == 0 {
		return nil, errs.Argument("locale mapping can't be empty")
	}

	pool, err := s.pools.Pool(ctx)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, errs.Write(outDir, err)
	}

	exports := make([]Export, 0, len(mappings))
	for _, m := range mappings {
		pending, err := s.pending(pool, m.Locale)
		if err != nil {
			return exports, err
		}

		path := filepath.Join(outDir, m.FileName())
		if err := writeExport(path, pending); err != nil {
			return exports, err
		}

		s.logger.Info("Exported pending strings",
			zap.String("mapping", m.Name),
			zap.String("locale", m.Locale),
			zap.String("path", path),
			zap.Int("pending", len(pending)))
		exports = append(exports, Export{Name: m.Name, Locale: m.Locale, Path: path, Pending: len(pending)})
	}
	return exports, nil
}

func writeExport(path string, pending []record.TextRecord) error {
	rows := make([]translation.Row, 0, len(pending))
	for _, r := range pending {
		rows = append(rows, translation.Row{Hint: r.Name, Original: r.Value})
	}

	f, err := os.Create(path)
	if err != nil {
		return errs.Write(path, err)
	}
	if err := translation.WriteRows(f, rows); err != nil {
		f.Close()
		return errs.Write(path, err)
	}
	if err := f.Close(); err != nil {
		return errs.Write(path, err)
	}
	return nil
}
