// Package integrity provides operator health checks for the list service.
//
// # Checks Provided
//
//   - Schema: the users and order_items tables match their gorm models (columns, explicit types).
//   - Lists: no list holds keys the move resolver would treat as a collision
//     (equal keys, keys at or below the threshold, neighbours closer than the threshold).
//   - Storage: the snapshot bucket exists; reports the number of stored snapshots.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/lists : Runs the list audit (supports ?fix=true to renumber affected lists).
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true to create the bucket).
package integrity
