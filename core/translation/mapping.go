package translation

import (
	"regexp"
	"sort"
	"strings"

	"l10n-manager/core/errs"
)

var mappingPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_]*)=([A-Za-z]{2,3}(?:-r?[A-Za-z0-9]+)*)$`)

// Mapping pairs an import file name with a locale identifier.
type Mapping struct {
	// Name is the human friendly name; the import file is <Name>.csv.
	Name string `json:"name"`
	// Locale is the values directory suffix, e.g. "fr" for values-fr.
	Locale string `json:"locale"`
}

// FileName is the import file name of m.
func (m Mapping) FileName() string {
	return m.Name + ".csv"
}

// ParseMapping parses name=locale pairs. Each argument may hold several
// comma separated pairs. Names and locales must be unique.
func ParseMapping(args []string) ([]Mapping, error) {
	var out []Mapping
	names := make(map[string]struct{})
	locales := make(map[string]struct{})

	for _, arg := range args {
		for _, pair := range strings.Split(arg, ",") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			m := mappingPattern.FindStringSubmatch(pair)
			if m == nil {
				return nil, errs.Argument("invalid mapping %q, expected <name>=<locale>", pair)
			}
			if _, dup := names[m[1]]; dup {
				return nil, errs.Argument("duplicate mapping name %q", m[1])
			}
			if _, dup := locales[m[2]]; dup {
				return nil, errs.Argument("duplicate mapping locale %q", m[2])
			}
			names[m[1]] = struct{}{}
			locales[m[2]] = struct{}{}
			out = append(out, Mapping{Name: m[1], Locale: m[2]})
		}
	}
	return out, nil
}

// MappingFromMap converts a name to locale map, ordered by name.
func MappingFromMap(m map[string]string) ([]Mapping, error) {
	pairs := make([]string, 0, len(m))
	for name, locale := range m {
		pairs = append(pairs, name+"="+locale)
	}
	sort.Strings(pairs)
	return ParseMapping(pairs)
}
