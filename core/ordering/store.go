package ordering

import "context"

// Store is the persistent ordered-store the engine reads from and writes to.
// Lists are implicit: every item carrying the same owner id.
type Store interface {
	// ListItems returns the owner's items ascending by position.
	ListItems(ctx context.Context, ownerID string) ([]Item, error)
	// UpdateItemPosition writes a single key. It returns ErrNotFound when no
	// item matches both ids.
	UpdateItemPosition(ctx context.Context, itemID, ownerID string, position float64) (*Item, error)
	// BulkWritePositions writes every update or none of them.
	BulkWritePositions(ctx context.Context, ownerID string, updates []PositionUpdate) error
	// DeleteAllItems removes the owner's whole list.
	DeleteAllItems(ctx context.Context, ownerID string) error
	// CreateItems inserts one item per seed for the owner.
	CreateItems(ctx context.Context, ownerID string, seeds []Seed) error
}

// Transactor is implemented by stores able to run several calls in a single
// transaction. The Store handed to fn is bound to that transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(Store) error) error
}
