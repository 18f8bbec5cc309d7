// Package reconcile merges newly translated strings into an existing locale.
//
// The pipeline for one locale is:
//
//  1. Filter: the canonical (default locale) records are reduced to the
//     translatable ones. The result is the canonical pool, shared read-only
//     by every locale.
//  2. Extract: every import row is resolved against the pool by comparing its
//     original text with canonical values. A match yields a record carrying
//     the canonical name and translatable flag with the translated text as
//     value. Rows without a match are dropped and reported in Stats.
//  3. Merge: extracted records are grouped with the records already present
//     in the locale. The existing order is kept, names only present in the
//     import are appended in extraction order, and a name with extracted
//     records loses its existing ones.
//  4. Dedup: exactly one record per name remains, the last merged one.
//
// Every stage is a pure function over slices; none of them mutate their input.
//
// # Cache
//
// PoolCache keeps canonical pools for a TTL with singleflight protection, so
// concurrent HTTP requests do not parse the same default file repeatedly.
//
// # Usage
//
//	pool := reconcile.Filter(defaults.Records)
//	res := reconcile.Reconcile(pool, existing.Records, rows)
//	_, err := writer.WriteLocale("fr", res.Records)
package reconcile
