package config // package config loads application configuration from environment variables

import (
	"os" // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a sensible default so the server
// starts with no environment at all; a .env file can override them.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Host          string // interface to bind, empty means all interfaces
	Port          string // HTTP port to listen on
	EventsEnabled bool   // publish list-change events to RabbitMQ when true
}

// Load reads configuration values from environment variables and returns a
// Config.  Unset variables fall back to defaults; the port default matches
// the service's historical 8000.
func Load() Config {
	return Config{
		Env:           getenv("APP_ENV", "dev"),              // environment (dev/test/prod)
		Host:          os.Getenv("APP_HOST"),                 // bind address (empty allowed)
		Port:          getenv("APP_PORT", "8000"),            // port to bind the HTTP server
		EventsEnabled: getenv("EVENTS_ENABLED", "") == "true", // opt-in event publishing
	}
}
