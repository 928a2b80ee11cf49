// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: API key validation protecting every endpoint except the docs.
//   - RayID: a unique Request ID (RayID) per incoming request, injected into the
//     context and response headers for tracing.
//   - Owner: resolves the owner of the list from the x-user-id header. Lists
//     are scoped to that owner; there is no session behind it.
//
// These middleware components are registered globally or per-route group
// in the main application setup.
package middleware
