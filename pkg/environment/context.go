package environment

import (
	"context"
	"fmt"
	"strings"
)

// Environment represents the environment the checker runs in.
type Environment string

const (
	// Development for local runs.
	Development Environment = "development"
	// Production for runs in a deployed pipeline.
	Production Environment = "production"
	// Staging for pre-release pipelines.
	Staging Environment = "staging"
)

var aliases = map[string]Environment{
	"development": Development,
	"dev":         Development,
	"production":  Production,
	"prod":        Production,
	"staging":     Staging,
	"stage":       Staging,
}

// Parse normalizes s to one of the known environments, accepting the short
// aliases dev, prod and stage.
func Parse(s string) (Environment, error) {
	if env, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return env, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
}

func (e Environment) String() string { return string(e) }

// UnmarshalText lets Environment be used directly as an env-tagged config field.
func (e *Environment) UnmarshalText(text []byte) error {
	env, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = env
	return nil
}

type contextKey struct{}

// WithContext adds environment to context
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction checks if the environment from context is production
func IsProduction(ctx context.Context) bool {
	return is(ctx, Production)
}

// IsDevelopment checks if the environment from context is development
func IsDevelopment(ctx context.Context) bool {
	return is(ctx, Development)
}

// IsStaging checks if the environment from context is staging
func IsStaging(ctx context.Context) bool {
	return is(ctx, Staging)
}

func is(ctx context.Context, want Environment) bool {
	env, err := Parse(FromContext(ctx).String())
	return err == nil && env == want
}
