package history

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	enabled bool
	store   *Store
	handler *Handler
}

// NewFeature creates the history feature. It is disabled without a database.
func NewFeature(db *gorm.DB, enabled bool, defaultLimit int, logger *zap.Logger) *Feature {
	f := &Feature{enabled: enabled && db != nil}
	if db != nil {
		f.store = NewStore(db)
		f.handler = NewHandler(f.store, logger, defaultLimit)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "history"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Store returns the underlying store, nil when no database is configured.
func (f *Feature) Store() *Store {
	return f.store
}

// Load migrates the history table and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.store.Migrate(context.Background()); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
