package items

import (
	"context"
	"errors"
	"fmt"

	"reorder/core/ordering"
	"reorder/feature/items/models"

	"gorm.io/gorm"
)

// Store is the GORM implementation of ordering.Store.
type Store struct {
	db *gorm.DB
}

var (
	_ ordering.Store      = (*Store)(nil)
	_ ordering.Transactor = (*Store)(nil)
)

// NewStore creates a store over db. db may be a transaction handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListItems returns the owner's items ascending by position, then id.
func (s *Store) ListItems(ctx context.Context, ownerID string) ([]ordering.Item, error) {
	var rows []models.OrderItem
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("position asc").
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}

	items := make([]ordering.Item, len(rows))
	for i, row := range rows {
		items[i] = row.ToDomain()
	}
	return items, nil
}

// UpdateItemPosition writes a single key and returns the stored row.
func (s *Store) UpdateItemPosition(ctx context.Context, itemID, ownerID string, position float64) (*ordering.Item, error) {
	db := s.db.WithContext(ctx)

	err := db.Model(&models.OrderItem{}).
		Where("id = ? AND user_id = ?", itemID, ownerID).
		Update("position", position).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	// MySQL reports zero affected rows when the value is unchanged, so
	// existence is checked by reading the row back.
	var row models.OrderItem
	if err := db.Where("id = ? AND user_id = ?", itemID, ownerID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ordering.ErrNotFound
		}
		return nil, fmt.Errorf("failed to reload item: %w", err)
	}

	item := row.ToDomain()
	return &item, nil
}

// BulkWritePositions writes every update inside one transaction. Any missing
// row or failed statement rolls the whole batch back.
func (s *Store) BulkWritePositions(ctx context.Context, ownerID string, updates []ordering.PositionUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	ids := make([]string, len(updates))
	for i, u := range updates {
		ids[i] = u.ItemID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.OrderItem{}).Where("user_id = ? AND id IN ?", ownerID, ids).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to count items: %w", err)
		}
		if int(n) != len(ids) {
			return fmt.Errorf("%d of %d items: %w", len(ids)-int(n), len(ids), ordering.ErrNotFound)
		}

		for _, u := range updates {
			err := tx.Model(&models.OrderItem{}).
				Where("id = ? AND user_id = ?", u.ItemID, ownerID).
				Update("position", u.Position).Error
			if err != nil {
				return fmt.Errorf("failed to update item %s: %w", u.ItemID, err)
			}
		}
		return nil
	})
}

// DeleteAllItems removes the owner's list.
func (s *Store) DeleteAllItems(ctx context.Context, ownerID string) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Delete(&models.OrderItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	return nil
}

// CreateItems inserts one row per seed in a single batch.
func (s *Store) CreateItems(ctx context.Context, ownerID string, seeds []ordering.Seed) error {
	if len(seeds) == 0 {
		return nil
	}

	rows := make([]models.OrderItem, len(seeds))
	for i, seed := range seeds {
		rows[i] = models.FromSeed(ownerID, seed)
	}

	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to create items: %w", err)
	}
	return nil
}

// InTx runs fn with a store bound to a single transaction.
func (s *Store) InTx(ctx context.Context, fn func(ordering.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
