package reconcile

import (
	"l10n-manager/core/record"
	"l10n-manager/core/translation"
)

// Stats describes how an import resolved against the canonical pool.
type Stats struct {
	// Matched is the number of rows that found at least one canonical record.
	Matched int `json:"matched"`
	// Extracted is the number of records produced by the matched rows.
	Extracted int `json:"extracted"`
	// Untranslated is the number of rows skipped for an empty translation.
	Untranslated int `json:"untranslated"`
	// Unmatched holds rows whose original text is not a canonical value.
	Unmatched []translation.Row `json:"unmatched,omitempty"`
}

// Result is the outcome of reconciling one locale.
type Result struct {
	// Records is the deduplicated output, ready to be written.
	Records []record.TextRecord `json:"records"`
	// Stats describes the extraction step.
	Stats Stats `json:"stats"`
	// Updated lists names whose existing value was replaced.
	Updated []string `json:"updated"`
	// Added lists names that were not present in the locale before.
	Added []string `json:"added"`
}

// Reconcile runs extract, merge and dedup for one locale.
func Reconcile(pool, existing []record.TextRecord, rows []translation.Row) Result {
	extracted, stats := Extract(rows, pool)
	merged := Dedup(Merge(extracted, existing))

	res := Result{Records: merged, Stats: stats, Updated: []string{}, Added: []string{}}
	before := record.Index(existing)
	fresh := record.Index(extracted)
	for _, r := range merged {
		if _, ok := fresh[r.Name]; !ok {
			continue
		}
		if old, ok := before[r.Name]; !ok {
			res.Added = append(res.Added, r.Name)
		} else if old.Value != r.Value {
			res.Updated = append(res.Updated, r.Name)
		}
	}
	return res
}

// Pending returns the pool records that have no entry in the locale yet.
func Pending(pool, existing []record.TextRecord) []record.TextRecord {
	have := record.Index(existing)
	var out []record.TextRecord
	for _, r := range pool {
		if _, ok := have[r.Name]; !ok {
			out = append(out, r)
		}
	}
	return out
}
