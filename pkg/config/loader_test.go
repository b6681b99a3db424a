package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
	"github.com/dmitrymomot/categorizr/pkg/config"
	"github.com/dmitrymomot/categorizr/pkg/logger"
)

type engineConfig struct {
	TabletsAsDesktops bool `env:"CONFIG_TEST_TABLETS" envDefault:"false"`
	CacheSize         int  `env:"CONFIG_TEST_CACHE_SIZE" envDefault:"100"`
}

type requiredConfig struct {
	URL string `env:"CONFIG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	FromFile string `env:"CONFIG_TEST_FROM_FILE"`
	Preset   string `env:"CONFIG_TEST_PRESET"`
}

// Tests mutate the process environment and the shared cache; they do not run in parallel.

func TestLoad(t *testing.T) {
	t.Cleanup(config.Reset)

	t.Run("defaults", func(t *testing.T) {
		config.Reset()
		var cfg engineConfig
		require.NoError(t, config.Load(&cfg))
		assert.False(t, cfg.TabletsAsDesktops)
		assert.Equal(t, 100, cfg.CacheSize)
	})

	t.Run("environment values", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_TABLETS", "true")
		t.Setenv("CONFIG_TEST_CACHE_SIZE", "5")

		var cfg engineConfig
		require.NoError(t, config.Load(&cfg))
		assert.True(t, cfg.TabletsAsDesktops)
		assert.Equal(t, 5, cfg.CacheSize)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_CACHE_SIZE", "1")
		var first engineConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("CONFIG_TEST_CACHE_SIZE", "2")
		var second engineConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, 1, second.CacheSize)
	})

	t.Run("invalid value", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_CACHE_SIZE", "many")
		var cfg engineConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("missing required", func(t *testing.T) {
		config.Reset()
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[engineConfig](nil), config.ErrNilPointer)
	})
}

func TestLoadEnvFiles(t *testing.T) {
	t.Cleanup(config.Reset)
	config.Reset()

	t.Setenv("CONFIG_TEST_PRESET", "env")
	// t.Setenv registers restoration of the original (unset) state.
	t.Setenv("CONFIG_TEST_FROM_FILE", "")
	require.NoError(t, os.Unsetenv("CONFIG_TEST_FROM_FILE"))

	require.NoError(t, config.LoadEnvFiles("testdata/test.env"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-file", cfg.FromFile)
	assert.Equal(t, "env", cfg.Preset, "existing variables are not overridden")

	assert.NoError(t, config.LoadEnvFiles())
	assert.ErrorIs(t, config.LoadEnvFiles("testdata/missing.env"), config.ErrLoadingEnvFile)
}

func TestLoad_EngineConfigNormalisesInvalidFlags(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("CATEGORIZR_TABLETS_AS_DESKTOPS", "yes-please")
	t.Setenv("CATEGORIZR_TVS_AS_DESKTOPS", "true")
	t.Setenv("CATEGORIZR_ROBOTS_AS_MOBILE", "sometimes")

	var cfg categorizr.Config
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, categorizr.Options{TVsAsDesktops: true}, cfg.Options())
}

func TestLoad_LoggerConfigDefaultsToProduction(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("APP_ENV", "")
	require.NoError(t, os.Unsetenv("APP_ENV"))

	var cfg logger.Config
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, logger.EnvProduction, cfg.Env)
}
