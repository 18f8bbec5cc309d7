package resource

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"l10n-manager/core/errs"
)

const (
	DefaultValuesDir   = "values"
	DefaultStringsFile = "strings.xml"
)

// Layout resolves strings file paths inside a res directory.
type Layout struct {
	ResDir      string
	ValuesDir   string
	StringsFile string
}

// NewLayout creates a Layout with the standard Android names.
func NewLayout(resDir string) Layout {
	return Layout{ResDir: resDir, ValuesDir: DefaultValuesDir, StringsFile: DefaultStringsFile}
}

// DefaultPath is the canonical strings file.
func (l Layout) DefaultPath() string {
	return filepath.Join(l.ResDir, l.ValuesDir, l.StringsFile)
}

// LocaleDir is the values directory of locale.
func (l Layout) LocaleDir(locale string) string {
	return filepath.Join(l.ResDir, l.ValuesDir+"-"+locale)
}

// LocalePath is the strings file of locale.
func (l Layout) LocalePath(locale string) string {
	return filepath.Join(l.LocaleDir(locale), l.StringsFile)
}

// RelLocalePath is LocalePath relative to the res directory, with forward slashes.
func (l Layout) RelLocalePath(locale string) string {
	return l.ValuesDir + "-" + locale + "/" + l.StringsFile
}

// Locales lists the locales that have a values directory, sorted by name.
func (l Layout) Locales() ([]string, error) {
	entries, err := os.ReadDir(l.ResDir)
	if err != nil {
		return nil, errs.Resource(l.ResDir, err)
	}
	prefix := l.ValuesDir + "-"
	var out []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), prefix) && len(e.Name()) > len(prefix) {
			out = append(out, strings.TrimPrefix(e.Name(), prefix))
		}
	}
	sort.Strings(out)
	return out, nil
}
