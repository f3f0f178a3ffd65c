package cmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/cmd/inputcheck/cmd"
	"github.com/dmitrymomot/inputkit/pkg/validator"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, environ map[string]string, stdin string, args ...string) result {
	t.Helper()
	if environ == nil {
		environ = map[string]string{}
	}

	root := cmd.NewRootCmd(cmd.WithEnvironment(environ))
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))

	code := cmd.Run(context.Background(), root, args)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		environ map[string]string
		args    []string
		code    int
		stdout  string
	}{
		{
			name:   "valid card",
			args:   []string{"check", "credit_card", "4111 1111 1111 1111"},
			stdout: "ok\n",
		},
		{
			name:   "invalid card",
			args:   []string{"check", "credit_card", "4111111111111112"},
			code:   1,
			stdout: "credit_card: must be a valid card number\n",
		},
		{
			name:   "custom field name",
			args:   []string{"check", "--field", "billing_card", "credit_card", "4111111111111112"},
			code:   1,
			stdout: "billing_card: must be a valid card number\n",
		},
		{
			name:   "kind arguments",
			args:   []string{"check", "integer_range", "42", "1", "10"},
			code:   1,
			stdout: "integer_range: must be a whole number between 1 and 10\n",
		},
		{
			name:   "negative value after separator",
			args:   []string{"check", "--", "negative_integer", "-5"},
			stdout: "ok\n",
		},
		{
			name:   "empty value allowed by default",
			args:   []string{"check", "email", ""},
			stdout: "ok\n",
		},
		{
			name:    "empty value rejected when not allowed",
			environ: map[string]string{"ALLOW_EMPTY": "false"},
			args:    []string{"check", "email", ""},
			code:    1,
			stdout:  "email: is required\n",
		},
		{
			name:   "allow-empty flag overrides environment",
			args:   []string{"check", "--allow-empty=false", "ssn", ""},
			code:   1,
			stdout: "ssn: is required\n",
		},
		{
			name:   "lang flag",
			args:   []string{"check", "--lang", "de-AT", "email", "not an address"},
			code:   1,
			stdout: "email: muss eine gültige E-Mail-Adresse sein\n",
		},
		{
			name:    "LANG from environment",
			environ: map[string]string{"LANG": "de_DE.UTF-8"},
			args:    []string{"check", "integer", "x"},
			code:    1,
			stdout:  "integer: muss eine ganze Zahl sein\n",
		},
		{
			name:    "unsupported LANG falls back to English",
			environ: map[string]string{"LANG": "ja_JP.UTF-8"},
			args:    []string{"check", "integer", "x"},
			code:    1,
			stdout:  "integer: must be a whole number\n",
		},
		{
			name:   "full-width digits rejected without folding",
			args:   []string{"check", "integer", "１２３"},
			code:   1,
			stdout: "integer: must be a whole number\n",
		},
		{
			name:   "full-width digits folded",
			args:   []string{"check", "--fold-width", "integer", "１２３"},
			stdout: "ok\n",
		},
		{
			name:    "folding from environment",
			environ: map[string]string{"FOLD_WIDTH": "true"},
			args:    []string{"check", "zip_code", "９０２１０"},
			stdout:  "ok\n",
		},
		{
			name:   "malformed checksum input",
			args:   []string{"check", "upc", "12345"},
			code:   1,
			stdout: "upc: is malformed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := execute(t, tt.environ, "", tt.args...)
			assert.Equal(t, tt.code, res.code, res.stderr)
			if tt.code == 0 {
				assert.Equal(t, tt.stdout, res.stdout)
			} else {
				assert.True(t, strings.HasPrefix(res.stdout, tt.stdout), res.stdout)
			}
		})
	}
}

func TestCheckErrors(t *testing.T) {
	t.Parallel()

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()
		res := execute(t, nil, "", "check", "iban", "DE00")
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, validator.ErrUnknownKind.Error())
	})

	t.Run("missing kind argument", func(t *testing.T) {
		t.Parallel()
		res := execute(t, nil, "", "check", "integer_range", "5", "1")
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, validator.ErrMissingArgument.Error())
	})

	t.Run("too few arguments", func(t *testing.T) {
		t.Parallel()
		res := execute(t, nil, "", "check", "email")
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, "Error:")
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Parallel()
		res := execute(t, map[string]string{"LOG_LEVEL": "loud"}, "", "check", "email", "a@b.co")
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, "invalid log level")
	})

	t.Run("bad environment", func(t *testing.T) {
		t.Parallel()
		res := execute(t, map[string]string{"APP_ENV": "qa"}, "", "check", "email", "a@b.co")
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, "unknown environment")
	})
}

func TestSettingsSources(t *testing.T) {
	t.Parallel()

	t.Run("env file", func(t *testing.T) {
		t.Parallel()
		envFile := writeFile(t, t.TempDir(), "checker.env", "ALLOW_EMPTY=false\nLANG=es_ES.UTF-8\n")

		res := execute(t, nil, "", "--env-file", envFile, "check", "uuid", "")
		assert.Equal(t, 1, res.code)
		assert.True(t, strings.HasPrefix(res.stdout, "uuid: "), res.stdout)
		assert.NotContains(t, res.stdout, "is required")
	})

	t.Run("message overrides", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "en.yaml", "en:\n  validation:\n    email: \"does not look like an address\"\n")

		res := execute(t, map[string]string{"MESSAGES_DIR": dir}, "", "check", "email", "nope")
		assert.Equal(t, 1, res.code)
		assert.Equal(t, "email: does not look like an address\n", res.stdout)

		res = execute(t, map[string]string{"MESSAGES_DIR": dir}, "", "check", "ssn", "nope")
		assert.Equal(t, "ssn: must be a valid social security number\n", res.stdout)
	})

	t.Run("messages flag with missing directory", func(t *testing.T) {
		t.Parallel()
		res := execute(t, nil, "", "--messages", filepath.Join(t.TempDir(), "absent"), "check", "email", "a@b.co")
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, "messages directory")
	})

	t.Run("debug logs go to stderr", func(t *testing.T) {
		t.Parallel()
		res := execute(t, map[string]string{"LOG_LEVEL": "debug", "LOG_FORMAT": "json"}, "", "check", "email", "a@b.co")
		assert.Equal(t, 0, res.code)
		assert.Equal(t, "ok\n", res.stdout)
		assert.Contains(t, res.stderr, `"msg":"value checked"`)
		assert.Contains(t, res.stderr, `"kind":"email"`)
		assert.Contains(t, res.stderr, `"env":"development"`)
	})
}

func TestKinds(t *testing.T) {
	t.Parallel()

	res := execute(t, nil, "", "kinds")
	require.Equal(t, 0, res.code)
	assert.Equal(t, validator.Kinds(), strings.Fields(res.stdout))
}

func TestVersion(t *testing.T) {
	t.Parallel()

	res := execute(t, map[string]string{"APP_ENV": "qa"}, "", "version")
	require.Equal(t, 0, res.code, "version does not load settings")
	assert.Contains(t, res.stdout, "inputcheck v"+cmd.Version)
	assert.Contains(t, res.stdout, "Go Version:")
}
