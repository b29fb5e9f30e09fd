package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/config"
)

type testConfig struct {
	Name    string        `env:"CONFIG_TEST_NAME" envDefault:"fallback"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Token string `env:"CONFIG_TEST_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("parses values and defaults", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_NAME", "from-env")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "from-env", cfg.Name)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("returns cached value on second load", func(t *testing.T) {
		// The first subtest already populated the cache for testConfig;
		// changing the environment must not be observed anymore.
		t.Setenv("CONFIG_TEST_NAME", "changed-later")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-env", cfg.Name)
	})

	t.Run("fails on missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParseFailed)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}
