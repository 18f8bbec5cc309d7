package config

import (
	"reflect"
	"strings"

	"l10n-manager/core/database"
	"l10n-manager/core/logger"
	"l10n-manager/core/reconcile"
	"l10n-manager/core/resource"
	"l10n-manager/core/server"
	"l10n-manager/core/storage"
	"l10n-manager/core/translation"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Resources locates the res and translations directories.
	Resources resource.Config `mapstructure:"resources"`
	// Import selects where translation import files come from.
	Import translation.Config `mapstructure:"import"`
	// Reconcile tunes multi-locale runs.
	Reconcile reconcile.Config `mapstructure:"reconcile"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the history database.
	Database database.Config `mapstructure:"database"`
	// History toggles recording of imported translations.
	History HistoryConfig `mapstructure:"history"`
	// Publish toggles uploading written files to storage.
	Publish PublishConfig `mapstructure:"publish"`
}

// HistoryConfig controls the import history feature.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Limit is the default number of entries returned by a listing.
	Limit int `mapstructure:"limit" default:"100"`
}

// PublishConfig controls the publish feature.
type PublishConfig struct {
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Prefix is prepended to the object names of published files.
	Prefix string `mapstructure:"prefix" default:"res"`
}

// LoadConfig loads configuration from environment variables and the .env file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine, the environment alone may configure everything.
	_ = godotenv.Overload(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	// RESOURCES_RES_DIR -> resources.res_dir
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues registers every mapstructure key with its default tag value so
// AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
