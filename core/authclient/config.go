package authclient

import "time"

// Config provides environment-based configuration for the auth client.
type Config struct {
	// BaseURL is the backend origin, e.g. "http://localhost:8080".
	BaseURL string `env:"AUTH_BASE_URL"`
	// BasePath is the auth API prefix on the backend.
	BasePath string `env:"AUTH_BASE_PATH" envDefault:"/api/auth"`
	// Timeout bounds every request. Probing a hung backend must fail open
	// to the login prompt instead of stalling indefinitely.
	Timeout time.Duration `env:"AUTH_HTTP_TIMEOUT" envDefault:"10s"`
}

// DefaultConfig returns a Config with the standard API prefix and timeout.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:  baseURL,
		BasePath: "/api/auth",
		Timeout:  10 * time.Second,
	}
}
