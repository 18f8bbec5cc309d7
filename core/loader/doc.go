// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface and registers its routes on
// the shared Fiber router.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registry of available features. Register adds a
// feature, LoadAll loads the enabled ones in registration order.
package loader
