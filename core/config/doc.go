// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct
// fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/authkit/core/config"
//
//	type ClientConfig struct {
//		BaseURL string        `env:"AUTH_BASE_URL,required"`
//		Timeout time.Duration `env:"AUTH_HTTP_TIMEOUT" envDefault:"10s"`
//	}
//
//	func main() {
//		var cfg ClientConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime;
// a second Load for the same type returns the cached value. Different
// types are cached independently.
package config
