package cmd

import (
	"github.com/dmitrymomot/inputkit/pkg/environment"
)

// Config holds the settings read from the environment and optional env files.
// Command-line flags override the matching fields.
type Config struct {
	Env         environment.Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel    string                  `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat   string                  `env:"LOG_FORMAT"`
	AllowEmpty  bool                    `env:"ALLOW_EMPTY" envDefault:"true"`
	FoldWidth   bool                    `env:"FOLD_WIDTH" envDefault:"false"`
	Lang        string                  `env:"LANG"`
	MessagesDir string                  `env:"MESSAGES_DIR"`
	Concurrency int                     `env:"CONCURRENCY" envDefault:"0"`
}
