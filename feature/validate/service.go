package validate

import (
	"l10n-manager/core/resource"
	"l10n-manager/feature/validate/checks"

	"go.uber.org/zap"
)

// DefaultTarget names the canonical strings file.
const DefaultTarget = "default"

// Report is the outcome of validating one file.
type Report struct {
	Target string         `json:"target"`
	Path   string         `json:"path"`
	Issues []checks.Issue `json:"issues"`
}

// Valid reports whether the file has no error level issue.
func (r *Report) Valid() bool {
	for _, i := range r.Issues {
		if i.Severity == checks.SeverityError {
			return false
		}
	}
	return true
}

// Service validates the strings files of a layout.
type Service struct {
	layout resource.Layout
	logger *zap.Logger
}

// NewService creates a new validation service.
func NewService(layout resource.Layout, logger *zap.Logger) *Service {
	return &Service{layout: layout, logger: logger}
}

// Validate checks one target, either DefaultTarget or a locale.
func (s *Service) Validate(target string) (*Report, error) {
	canonical, err := checks.Load(s.layout.DefaultPath())
	if err != nil {
		return nil, err
	}
	if target == DefaultTarget {
		return s.report(target, canonical, nil), nil
	}

	doc, err := checks.Load(s.layout.LocalePath(target))
	if err != nil {
		return nil, err
	}
	return s.report(target, doc, canonical), nil
}

// ValidateAll checks the default file and every locale of the layout.
func (s *Service) ValidateAll() ([]*Report, error) {
	locales, err := s.layout.Locales()
	if err != nil {
		return nil, err
	}

	reports := make([]*Report, 0, len(locales)+1)
	for _, target := range append([]string{DefaultTarget}, locales...) {
		report, err := s.Validate(target)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (s *Service) report(target string, doc, canonical *checks.Document) *Report {
	issues := checks.MissingName(doc)
	issues = append(issues, checks.DuplicateName(doc)...)
	issues = append(issues, checks.UnescapedApostrophe(doc)...)
	if canonical != nil {
		issues = append(issues, checks.MissingTranslation(canonical, doc)...)
		issues = append(issues, checks.ExtraName(canonical, doc)...)
		issues = append(issues, checks.FormatMismatch(canonical, doc)...)
	}

	s.logger.Debug("Validated strings file",
		zap.String("target", target),
		zap.String("path", doc.Path),
		zap.Int("entries", doc.Len()),
		zap.Int("issues", len(issues)))

	if issues == nil {
		issues = []checks.Issue{}
	}
	return &Report{Target: target, Path: doc.Path, Issues: issues}
}
