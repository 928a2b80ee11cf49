// Package items implements the reorderable item list feature.
//
// Every owner (identified by the x-user-id header) has an implicit list: all
// 'order_items' rows sharing their user_id, ordered by position. This package
// wires the order engine (core/ordering) to GORM and HTTP.
//
// # Components
//
//   - Store: GORM implementation of ordering.Store. Normalizations commit in a
//     single transaction and resets run inside InTx.
//   - Snapshotter: stores a JSON copy of a list in object storage before it is
//     reset, keeping the most recent N per owner.
//   - Service: orchestrates the engine and the snapshotter.
//   - Handler: exposes the HTTP endpoints below.
//   - Feature: registers the routes with the loader.
//
// # HTTP Endpoints
//
//   - GET /items : the owner's items in display order.
//   - PATCH /items/:id/position : move an item ({"newPosition": number}).
//   - POST /items/reset : recreate the seeded list.
//   - POST /items/normalize : renumber the list without moving anything.
//   - GET /items/snapshots : keys of stored snapshots.
//   - GET /items/settings : step, threshold and palette.
package items
