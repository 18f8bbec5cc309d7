// Package config loads the application configuration.
//
// Values come from a .env file (loaded with godotenv, overriding the process
// environment) and from environment variables, resolved through Viper. Every
// field of Config and its nested structs declares its key with a mapstructure
// tag and its default with a default tag; nested keys map to upper-case
// environment variables joined by underscores:
//
//	resources.res_dir   -> RESOURCES_RES_DIR
//	reconcile.workers   -> RECONCILE_WORKERS
//	publish.enabled     -> PUBLISH_ENABLED
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
package config
