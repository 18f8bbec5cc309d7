package reconcile

import (
	"l10n-manager/core/record"
	"l10n-manager/core/translation"
)

// Filter returns the translatable records in their original order.
func Filter(records []record.TextRecord) []record.TextRecord {
	out := make([]record.TextRecord, 0, len(records))
	for _, r := range records {
		if r.Translatable {
			out = append(out, r)
		}
	}
	return out
}

// Extract resolves import rows against the canonical pool. Every pool record
// whose value equals the row's original text receives the translation, in
// pool order. The row hint is not consulted. Rows with an empty translation
// are left for a later import and only counted.
func Extract(rows []translation.Row, pool []record.TextRecord) ([]record.TextRecord, Stats) {
	byValue := make(map[string][]record.TextRecord, len(pool))
	for _, r := range pool {
		byValue[r.Value] = append(byValue[r.Value], r)
	}

	var (
		out   []record.TextRecord
		stats Stats
	)
	for _, row := range rows {
		if row.Translated == "" {
			stats.Untranslated++
			continue
		}
		matches, ok := byValue[row.Original]
		if !ok {
			stats.Unmatched = append(stats.Unmatched, row)
			continue
		}
		stats.Matched++
		for _, canonical := range matches {
			out = append(out, record.New(canonical.Name, row.Translated, canonical.Translatable))
		}
	}
	stats.Extracted = len(out)
	return out, stats
}

type group struct {
	existing []record.TextRecord
	fresh    []record.TextRecord
}

// Merge combines newly extracted records with the existing locale records.
// The output may still hold several records per name; see Dedup.
func Merge(newRecords, existing []record.TextRecord) []record.TextRecord {
	var order []string
	groups := make(map[string]*group)

	get := func(name string) *group {
		g, ok := groups[name]
		if !ok {
			g = &group{}
			groups[name] = g
			order = append(order, name)
		}
		return g
	}

	for _, r := range existing {
		g := get(r.Name)
		g.existing = append(g.existing, r)
	}
	for _, r := range newRecords {
		g := get(r.Name)
		g.fresh = append(g.fresh, r)
	}

	out := make([]record.TextRecord, 0, len(existing)+len(newRecords))
	for _, name := range order {
		g := groups[name]
		if len(g.fresh) > 0 {
			out = append(out, g.fresh...)
		} else {
			out = append(out, g.existing...)
		}
	}
	return out
}

// Dedup keeps one record per name at the position of its first occurrence,
// carrying the value of its last occurrence.
func Dedup(records []record.TextRecord) []record.TextRecord {
	pos := make(map[string]int, len(records))
	out := make([]record.TextRecord, 0, len(records))
	for _, r := range records {
		if i, ok := pos[r.Name]; ok {
			out[i] = r
			continue
		}
		pos[r.Name] = len(out)
		out = append(out, r)
	}
	return out
}
