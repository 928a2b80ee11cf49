package cmd

import (
	"context"
	"fmt"

	"reorder/core/config"
	"reorder/core/database"
	"reorder/core/logger"
	"reorder/core/ordering"
	"reorder/core/storage"
	"reorder/feature/items"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// configPath is the directory searched for the .env file.
var configPath = "."

// app bundles the dependencies shared by every command.
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	db        *gorm.DB
	engine    *ordering.Engine
	storage   storage.Client
	snapshots *items.Snapshotter
	items     *items.Service
}

// bootstrap loads the configuration, builds the logger, connects the database
// and, when enabled, the snapshot storage.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	engine, err := ordering.NewEngine(items.NewStore(db), cfg.Ordering, l)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: l, db: db, engine: engine}

	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return nil, err
		}
		a.storage = client
		a.snapshots = items.NewSnapshotter(client, cfg.Storage.Bucket, cfg.Storage.SnapshotRetention, l)
		l.Info("Snapshot storage ready", zap.String("bucket", cfg.Storage.Bucket))
	}
	a.items = items.NewService(engine, a.snapshots, l)

	return a, nil
}

// close releases the database connection.
func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.log.Sync()
}
