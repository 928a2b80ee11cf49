package models

import (
	"time"

	"reorder/core/ordering"

	"github.com/google/uuid"
)

// OrderItem represents the 'order_items' table. A list is every row sharing a user_id.
type OrderItem struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	UserID    string    `gorm:"column:user_id;size:36;not null;index:idx_order_items_user_position,priority:1"`
	Label     string    `gorm:"column:label;size:64;not null"`
	Position  float64   `gorm:"column:position;type:double;not null;index:idx_order_items_user_position,priority:2"`
	Color     string    `gorm:"column:color;size:32"`
	FgColor   string    `gorm:"column:fg_color;size:32"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// Columns lists the columns the service reads from 'order_items'.
var Columns = []string{"id", "user_id", "label", "position", "color", "fg_color", "created_at", "updated_at"}

// TableName overrides the table name.
func (OrderItem) TableName() string {
	return "order_items"
}

// ToDomain converts the row to the engine's item type.
func (o OrderItem) ToDomain() ordering.Item {
	return ordering.Item{
		ID:       o.ID,
		OwnerID:  o.UserID,
		Label:    o.Label,
		Position: o.Position,
		Color:    o.Color,
		FgColor:  o.FgColor,
	}
}

// FromSeed builds a new row for ownerID with a fresh id.
func FromSeed(ownerID string, seed ordering.Seed) OrderItem {
	return OrderItem{
		ID:       uuid.NewString(),
		UserID:   ownerID,
		Label:    seed.Label,
		Position: seed.Position,
		Color:    seed.Color,
		FgColor:  seed.FgColor,
	}
}
