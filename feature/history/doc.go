// Package history records every translation written by an import run.
//
// Each written record becomes one Entry tagged with the run id, the locale and
// the time of the import, so a translator can later see when a value changed
// and which run changed it. Entries are stored through GORM in SQLite or MySQL.
//
// # HTTP Endpoints
//
//   - GET /history/:locale : lists the latest entries of a locale (supports ?limit=N and ?name=).
package history
