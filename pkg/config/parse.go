package config

import (
	"errors"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

type parseOptions struct {
	files   []string
	prefix  string
	environ map[string]string
}

// WithEnvFiles reads the named .env files. Later files override earlier ones;
// the process environment overrides all of them.
func WithEnvFiles(files ...string) ParseOption {
	return func(o *parseOptions) {
		o.files = append(o.files, files...)
	}
}

// WithPrefix restricts parsing to variables carrying the given prefix.
func WithPrefix(prefix string) ParseOption {
	return func(o *parseOptions) {
		o.prefix = prefix
	}
}

// WithEnvironment replaces the process environment as the variable source.
func WithEnvironment(environ map[string]string) ParseOption {
	return func(o *parseOptions) {
		o.environ = environ
	}
}

// Parse fills v from the environment without touching the cache or the
// process environment. Use it for command-line tools that accept an
// explicit env file, or in tests.
func Parse[T any](v *T, opts ...ParseOption) error {
	if v == nil {
		return ErrNilPointer
	}

	o := parseOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	vars := make(map[string]string)
	for _, file := range o.files {
		fileVars, err := godotenv.Read(file)
		if err != nil {
			return errors.Join(ErrReadingEnvFile, err)
		}
		maps.Copy(vars, fileVars)
	}

	if o.environ != nil {
		maps.Copy(vars, o.environ)
	} else {
		maps.Copy(vars, environMap())
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
		Prefix:      o.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

func environMap() map[string]string {
	environ := os.Environ()
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}
