package items

import (
	"context"
	"errors"
	"fmt"

	"reorder/core/ordering"

	"go.uber.org/zap"
)

// ErrSnapshotsDisabled is returned when snapshot storage is not configured.
var ErrSnapshotsDisabled = errors.New("snapshots are disabled")

// Service handles list operations for an owner.
type Service struct {
	engine    *ordering.Engine
	snapshots *Snapshotter
	logger    *zap.Logger
}

// NewService creates a new items service. snapshots may be nil.
func NewService(engine *ordering.Engine, snapshots *Snapshotter, logger *zap.Logger) *Service {
	return &Service{
		engine:    engine,
		snapshots: snapshots,
		logger:    logger,
	}
}

// List returns the owner's items in display order.
func (s *Service) List(ctx context.Context, ownerID string) ([]ordering.Item, error) {
	return s.engine.List(ctx, ownerID)
}

// Move places an item at newPosition.
func (s *Service) Move(ctx context.Context, ownerID, itemID string, newPosition float64) (*ordering.Item, error) {
	return s.engine.Move(ctx, ownerID, itemID, newPosition)
}

// Reset recreates the owner's list from the seed palette. The current list is
// snapshotted first when storage is enabled; a failed snapshot aborts the reset.
func (s *Service) Reset(ctx context.Context, ownerID string) ([]ordering.Item, error) {
	if s.snapshots != nil {
		current, err := s.engine.List(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		if len(current) > 0 {
			key, err := s.snapshots.Save(ctx, ownerID, current)
			if err != nil {
				return nil, fmt.Errorf("failed to snapshot list before reset: %w", err)
			}
			s.logger.Info("List snapshot stored", zap.String("owner", ownerID), zap.String("key", key))
		}
	}

	return s.engine.Reset(ctx, ownerID)
}

// Normalize renumbers the owner's list without moving anything.
func (s *Service) Normalize(ctx context.Context, ownerID string) ([]ordering.Item, error) {
	return s.engine.Renumber(ctx, ownerID)
}

// Settings returns the engine's seeding parameters.
func (s *Service) Settings() ordering.Settings {
	return s.engine.Settings()
}

// Snapshots lists the keys of the owner's stored snapshots.
func (s *Service) Snapshots(ctx context.Context, ownerID string) ([]string, error) {
	if s.snapshots == nil {
		return nil, ErrSnapshotsDisabled
	}
	return s.snapshots.List(ctx, ownerID)
}
