package ordering

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Reset replaces the owner's list with a freshly seeded one and returns it.
// When the store is a Transactor the delete and the inserts commit together.
func (e *Engine) Reset(ctx context.Context, ownerID string) ([]Item, error) {
	seeds := e.Seeds()

	recreate := func(s Store) error {
		if err := s.DeleteAllItems(ctx, ownerID); err != nil {
			return fmt.Errorf("failed to delete items: %w", err)
		}
		if err := s.CreateItems(ctx, ownerID, seeds); err != nil {
			return fmt.Errorf("failed to create items: %w", err)
		}
		return nil
	}

	var err error
	if tx, ok := e.store.(Transactor); ok {
		err = tx.InTx(ctx, recreate)
	} else {
		err = recreate(e.store)
	}
	if err != nil {
		return nil, err
	}

	e.logger.Info("List reset", zap.String("owner", ownerID), zap.Int("count", len(seeds)))

	return e.List(ctx, ownerID)
}
