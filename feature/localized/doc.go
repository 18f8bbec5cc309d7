// Package localized imports translated strings into the locale resource files.
//
// For every mapping (human friendly name to locale id) the service reads the
// existing values-<locale>/strings.xml, loads <name>.csv from the import
// source, reconciles both against the translatable canonical entries and
// rewrites the locale file. Locales are independent: a failing locale is
// reported and never touches the files of the other locales.
//
// After a locale is written the run is optionally recorded in the history
// database and the file is published to object storage.
//
// # HTTP Endpoints
//
//   - POST /localized : runs an import, body {"mapping": {"french": "fr"}} (supports ?dry_run=true).
package localized
