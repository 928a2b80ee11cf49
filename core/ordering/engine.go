package ordering

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Engine resolves moves against an owner's list and renumbers the list when
// the gap around a requested key is exhausted.
type Engine struct {
	store   Store
	cfg     Config
	palette []Color
	logger  *zap.Logger
}

// NewEngine creates an engine backed by store. A nil logger disables logging.
func NewEngine(store Store, cfg Config, logger *zap.Logger) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("ordering: store is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		store:   store,
		cfg:     cfg,
		palette: DefaultPalette,
		logger:  logger,
	}, nil
}

// Settings returns the seeding parameters used by seed and reset flows.
func (e *Engine) Settings() Settings {
	palette := make([]Color, len(e.palette))
	copy(palette, e.palette)
	return Settings{
		Step:       e.cfg.Step,
		Threshold:  e.cfg.Threshold,
		ItemsCount: e.cfg.ItemsCount,
		Palette:    palette,
	}
}

// Seeds returns the records of a freshly seeded list.
func (e *Engine) Seeds() []Seed {
	return Seeds(e.cfg.ItemsCount, e.cfg.Step, e.palette)
}

// List returns the owner's items ascending by position.
func (e *Engine) List(ctx context.Context, ownerID string) ([]Item, error) {
	items, err := e.store.ListItems(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Move places itemID at newPosition within the owner's list.
//
// When newPosition keeps at least Threshold of distance from both neighbours
// and from zero, only the moved row is written. Otherwise the whole list is
// normalized with the moved item at its requested place.
func (e *Engine) Move(ctx context.Context, ownerID, itemID string, newPosition float64) (*Item, error) {
	if math.IsNaN(newPosition) || math.IsInf(newPosition, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, newPosition)
	}

	items, err := e.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if indexOf(items, itemID) < 0 {
		return nil, fmt.Errorf("item %s: %w", itemID, ErrNotFound)
	}

	if !e.collides(items, itemID, newPosition) {
		item, err := e.store.UpdateItemPosition(ctx, itemID, ownerID, newPosition)
		if err != nil {
			return nil, fmt.Errorf("failed to update position of item %s: %w", itemID, err)
		}
		e.logger.Debug("Item moved",
			zap.String("owner", ownerID),
			zap.String("item", itemID),
			zap.Float64("position", newPosition))
		return item, nil
	}

	updated, err := e.Normalize(ctx, items, ownerID, itemID, newPosition)
	if err != nil {
		return nil, err
	}

	i := indexOf(updated, itemID)
	if i < 0 {
		return nil, fmt.Errorf("item %s: %w", itemID, ErrNotFound)
	}
	moved := updated[i]
	return &moved, nil
}

// collides reports whether newPosition sits inside an exhausted gap.
//
// The neighbours are the closest keys strictly below and strictly above
// newPosition among the other items. Another item sitting exactly on
// newPosition is a collision as well, since writing it would duplicate a key.
func (e *Engine) collides(items []Item, itemID string, newPosition float64) bool {
	if newPosition <= e.cfg.Threshold {
		return true
	}

	prev, next := neighbours(items, itemID, newPosition)
	if prev != nil && math.Abs(newPosition-prev.Position) <= e.cfg.Threshold {
		return true
	}
	if next != nil && math.Abs(newPosition-next.Position) <= e.cfg.Threshold {
		return true
	}

	for _, it := range items {
		if it.ID != itemID && it.Position == newPosition {
			return true
		}
	}
	return false
}

// neighbours returns the item with the greatest key strictly below position and
// the one with the smallest key strictly above it, ignoring itemID.
func neighbours(items []Item, itemID string, position float64) (prev, next *Item) {
	for i := range items {
		it := &items[i]
		if it.ID == itemID {
			continue
		}
		if it.Position < position && (prev == nil || it.Position > prev.Position) {
			prev = it
		}
		if it.Position > position && (next == nil || it.Position < next.Position) {
			next = it
		}
	}
	return prev, next
}

func indexOf(items []Item, itemID string) int {
	for i := range items {
		if items[i].ID == itemID {
			return i
		}
	}
	return -1
}
