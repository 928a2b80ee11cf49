package ordering

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Normalize renumbers the owner's items after placing movedItemID at
// newPosition. The k-th item in ascending order receives k*Step and every key
// is persisted in a single atomic write. An empty movedItemID renumbers the
// list as it is.
func (e *Engine) Normalize(ctx context.Context, items []Item, ownerID, movedItemID string, newPosition float64) ([]Item, error) {
	updated := respace(items, movedItemID, newPosition, e.cfg.Step)
	if len(updated) == 0 {
		return updated, nil
	}

	updates := make([]PositionUpdate, len(updated))
	for i, it := range updated {
		updates[i] = PositionUpdate{ItemID: it.ID, Position: it.Position}
	}

	if err := e.store.BulkWritePositions(ctx, ownerID, updates); err != nil {
		return nil, fmt.Errorf("owner %s: %w: %w", ownerID, ErrTransaction, err)
	}

	e.logger.Info("List normalized",
		zap.String("owner", ownerID),
		zap.String("item", movedItemID),
		zap.Int("count", len(updated)))

	return updated, nil
}

// Renumber normalizes the owner's list without moving anything.
func (e *Engine) Renumber(ctx context.Context, ownerID string) ([]Item, error) {
	items, err := e.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return e.Normalize(ctx, items, ownerID, "", 0)
}

// respace returns a sorted copy of items with evenly spaced keys. Equal keys
// are ordered by item id.
func respace(items []Item, movedItemID string, newPosition float64, step float64) []Item {
	out := make([]Item, len(items))
	copy(out, items)

	for i := range out {
		if movedItemID != "" && out[i].ID == movedItemID {
			out[i].Position = newPosition
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})

	for i := range out {
		out[i].Position = float64(i+1) * step
	}
	return out
}
