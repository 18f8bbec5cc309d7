package translation

const (
	SourceDir     = "dir"
	SourceStorage = "storage"
)

// Config selects where import files are read from.
type Config struct {
	// Source is either "dir" (resources.translations_dir) or "storage"
	// (objects under Prefix in the storage bucket).
	Source string `mapstructure:"source" default:"dir"`
	// Prefix is the object prefix used when Source is "storage".
	Prefix string `mapstructure:"prefix" default:"translations"`
}
