package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/config"
)

type parseSettings struct {
	Level      string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowEmpty bool     `env:"ALLOW_EMPTY" envDefault:"true"`
	Langs      []string `env:"LANGS" envSeparator:","`
}

func writeEnvFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("defaults from an empty environment", func(t *testing.T) {
		t.Parallel()
		var cfg parseSettings
		require.NoError(t, config.Parse(&cfg, config.WithEnvironment(map[string]string{})))

		assert.Equal(t, "info", cfg.Level)
		assert.True(t, cfg.AllowEmpty)
		assert.Empty(t, cfg.Langs)
	})

	t.Run("explicit environment", func(t *testing.T) {
		t.Parallel()
		var cfg parseSettings
		err := config.Parse(&cfg, config.WithEnvironment(map[string]string{
			"LOG_LEVEL":   "debug",
			"ALLOW_EMPTY": "false",
			"LANGS":       "en,de,es",
		}))
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Level)
		assert.False(t, cfg.AllowEmpty)
		assert.Equal(t, []string{"en", "de", "es"}, cfg.Langs)
	})

	t.Run("env files are layered and the environment wins", func(t *testing.T) {
		t.Parallel()
		base := writeEnvFile(t, "base.env", "LOG_LEVEL=warn\nLANGS=en\nALLOW_EMPTY=false\n")
		local := writeEnvFile(t, "local.env", "LANGS=en,de\n")

		var cfg parseSettings
		err := config.Parse(&cfg,
			config.WithEnvFiles(base, local),
			config.WithEnvironment(map[string]string{"LOG_LEVEL": "error"}),
		)
		require.NoError(t, err)

		assert.Equal(t, "error", cfg.Level)
		assert.False(t, cfg.AllowEmpty)
		assert.Equal(t, []string{"en", "de"}, cfg.Langs)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()
		var cfg parseSettings
		err := config.Parse(&cfg,
			config.WithPrefix("INPUTCHECK_"),
			config.WithEnvironment(map[string]string{
				"LOG_LEVEL":            "error",
				"INPUTCHECK_LOG_LEVEL": "debug",
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Level)
	})

	t.Run("missing env file", func(t *testing.T) {
		t.Parallel()
		var cfg parseSettings
		err := config.Parse(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "absent.env")))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrReadingEnvFile)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		var cfg parseSettings
		err := config.Parse(&cfg, config.WithEnvironment(map[string]string{"ALLOW_EMPTY": "maybe"}))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		var cfg *parseSettings
		assert.ErrorIs(t, config.Parse(cfg), config.ErrNilPointer)
	})
}

func TestParse_ProcessEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	var cfg parseSettings
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, "debug", cfg.Level)
}
