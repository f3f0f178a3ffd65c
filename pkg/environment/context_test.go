package environment_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"development", environment.Development},
		{"dev", environment.Development},
		{"Dev", environment.Development},
		{" production ", environment.Production},
		{"prod", environment.Production},
		{"staging", environment.Staging},
		{"STAGE", environment.Staging},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := environment.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, err := environment.Parse("qa")
		assert.ErrorIs(t, err, environment.ErrUnknownEnvironment)

		_, err = environment.Parse("")
		assert.ErrorIs(t, err, environment.ErrUnknownEnvironment)
	})
}

func TestUnmarshalText(t *testing.T) {
	t.Parallel()

	var env environment.Environment
	require.NoError(t, env.UnmarshalText([]byte("prod")))
	assert.Equal(t, environment.Production, env)

	err := env.UnmarshalText([]byte("qa"))
	require.ErrorIs(t, err, environment.ErrUnknownEnvironment)
	assert.Equal(t, environment.Production, env, "failed unmarshal keeps the previous value")
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("context with environment", func(t *testing.T) {
		t.Parallel()
		ctx := environment.WithContext(context.Background(), environment.Production)
		assert.Equal(t, environment.Production, environment.FromContext(ctx))
	})

	t.Run("context without environment", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, environment.Environment(""), environment.FromContext(context.Background()))
	})

	t.Run("nil context", func(t *testing.T) {
		t.Parallel()
		//nolint:staticcheck // nil context is handled explicitly
		assert.Equal(t, environment.Environment(""), environment.FromContext(nil))
	})
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		env         environment.Environment
		production  bool
		development bool
		staging     bool
	}{
		{name: "production", env: environment.Production, production: true},
		{name: "prod alias", env: "prod", production: true},
		{name: "development", env: environment.Development, development: true},
		{name: "dev alias", env: "dev", development: true},
		{name: "staging", env: environment.Staging, staging: true},
		{name: "stage alias", env: "stage", staging: true},
		{name: "custom", env: "custom"},
		{name: "empty", env: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := environment.WithContext(context.Background(), tt.env)
			assert.Equal(t, tt.production, environment.IsProduction(ctx))
			assert.Equal(t, tt.development, environment.IsDevelopment(ctx))
			assert.Equal(t, tt.staging, environment.IsStaging(ctx))
		})
	}
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := environment.LoggerExtractor()

	attr, ok := extract(environment.WithContext(context.Background(), environment.Staging))
	require.True(t, ok)
	assert.Equal(t, "env", attr.Key)
	assert.Equal(t, slog.KindString, attr.Value.Kind())
	assert.Equal(t, "staging", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
