// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL connections (production)
// or sqlite (local runs and tests) from the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, tunes the connection pool and pings the
// server within the configured timeout. An in-memory sqlite database is pinned
// to a single connection so every statement sees the same schema.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns report the live columns of a table. The
// migrate command uses them to verify that the users and order_items tables
// carry every column the service reads.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "order_items", []string{"id", "position"})
package database
