// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11.
// Load parses a struct once per type and caches the result for the life of
// the process, loading a .env file from the working directory on first use.
// Parse reads the environment on every call and can merge explicit .env
// files without mutating the process environment, which suits command-line
// tools and tests.
//
//	type Settings struct {
//		AllowEmpty bool   `env:"ALLOW_EMPTY" envDefault:"true"`
//		LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var s Settings
//	if err := config.Parse(&s, config.WithEnvFiles(".env.local")); err != nil {
//		return err
//	}
//
// Failures wrap ErrParsingConfig, ErrReadingEnvFile or ErrNilPointer and can
// be checked with errors.Is. ResetCache clears cached values, which is
// mostly useful in tests.
package config
