package reconcile

// Config holds settings for reconciling several locales in one run.
type Config struct {
	// Workers is the number of locales reconciled concurrently.
	Workers int `mapstructure:"workers" default:"1"`
}
