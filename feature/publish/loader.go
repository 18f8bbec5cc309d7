package publish

import "github.com/gofiber/fiber/v2"

// Feature implements the loader.Feature interface.
type Feature struct {
	enabled   bool
	publisher *Publisher
	handler   *Handler
}

// NewFeature creates the publish feature around publisher. A nil publisher disables it.
func NewFeature(publisher *Publisher, enabled bool) *Feature {
	f := &Feature{enabled: enabled && publisher != nil, publisher: publisher}
	if publisher != nil {
		f.handler = NewHandler(publisher)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "publish"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
