package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache holds one parsed value per configuration type.
	cache sync.Map // reflect.Type -> any

	// dotenvOnce guards the one-time .env autoload.
	dotenvOnce sync.Once
)

// Load populates cfg from environment variables using `env:` struct tags.
// A .env file in the working directory is loaded into the process
// environment on first use; a missing file is not an error.
//
// Each configuration type is parsed at most once per process; subsequent
// calls for the same type return the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		// Best effort: explicit environment variables always win anyway.
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParseFailed, fmt.Errorf("config type %s: %w", typ, err))
	}

	cache.Store(typ, *cfg)
	return nil
}

// MustLoad is Load that panics on failure. Intended for application
// startup where a missing required variable should abort immediately.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
