// Package database handles database connections.
//
// It wraps GORM and configures either a SQLite file (the default, suited for a
// single workstation) or a shared MySQL server. The connection is used by the
// history feature to record every imported translation.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("History disabled", zap.Error(err))
//	}
package database
