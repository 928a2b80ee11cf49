// Package ordering implements the Order Engine: the position-assignment
// algorithm behind a per-owner, user-sortable list of items.
//
// List order is encoded as a numeric key (the position) on every item. Items
// are seeded with keys spaced by a fixed Step, so most moves can be satisfied
// by writing a single key strictly between two neighbours. When a requested key
// lands too close to a neighbour (within Threshold) or too close to zero, the
// whole list is renumbered ("normalized") in one atomic write.
//
// # Components
//
//   - Position Scheme: Seeds and DefaultPalette produce the initial list.
//   - Move Resolver: Engine.Move decides between the single-row write and a
//     full normalization.
//   - Normalizer: Engine.Normalize reassigns k*Step in sorted order and
//     persists every key through Store.BulkWritePositions.
//
// # Persistence
//
// The engine never talks to a database directly. It consumes a Store (see
// feature/items for the GORM implementation) which must make
// BulkWritePositions all-or-nothing.
//
// # Concurrency
//
// Each call is a single request-scoped unit of work and the engine holds no
// lock across its reads and writes. Two concurrent moves for the same owner
// can both read the same snapshot, decide independently and overwrite each
// other; only a single normalization is atomic with respect to itself.
//
// # Usage
//
//	engine, err := ordering.NewEngine(store, cfg.Ordering, logger)
//	item, err := engine.Move(ctx, ownerID, itemID, 24576)
package ordering
