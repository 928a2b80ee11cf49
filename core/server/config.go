package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// OwnerHeader is the request header carrying the id of the list owner.
	OwnerHeader string `mapstructure:"owner_header" default:"x-user-id"`
}

// DefaultOwnerHeader is used when no owner header is configured.
const DefaultOwnerHeader = "x-user-id"

// OwnerHeaderName returns the configured owner header, falling back to the default.
func (c Config) OwnerHeaderName() string {
	if c.OwnerHeader == "" {
		return DefaultOwnerHeader
	}
	return c.OwnerHeader
}
