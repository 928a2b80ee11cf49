// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port, the optional API key and the name of
// the header that identifies the owner of the list being read or reordered
// (x-user-id by default).
package server
