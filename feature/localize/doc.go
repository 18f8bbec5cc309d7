// Package localize exports the strings a locale still lacks.
//
// For each mapping the translatable canonical entries without a counterpart in
// values-<locale>/strings.xml are written to <output>/<name>.csv, ready to be
// handed to a translator and imported back with the localized feature. A
// locale without a values directory yet gets every canonical entry.
//
// # HTTP Endpoints
//
//   - GET /localize/:locale : returns the pending entries of a locale.
package localize
