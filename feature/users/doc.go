// Package users implements login by username.
//
// There are no passwords or sessions: logging in returns the user record and
// clients send its id back in the x-user-id header. The first login of a
// username creates the user and seeds its item list in the same transaction.
//
// # HTTP Endpoints
//
//   - POST /auth/login : {"username": "..."} -> user
//   - GET /auth/me : the user named by x-user-id, or null
package users
