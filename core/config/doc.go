// Package config provides configuration management for the reorder service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live next to each field in a `default` struct tag.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, owner header)
//   - Database: MySQL (or sqlite) connection details
//   - Storage: S3/MinIO credentials and bucket for list snapshots
//   - Log: Logging level and format
//   - Ordering: step, threshold and seeded item count of the order engine
//
// Environment variables map onto nested keys, e.g. ORDERING_STEP -> ordering.step.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Ordering.Step)
package config
