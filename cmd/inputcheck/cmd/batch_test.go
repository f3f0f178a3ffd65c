package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const formBatch = `
- field: card
  kind: credit_card
  value: "4111 1111 1111 1111"
- field: qty
  kind: integer_range
  value: "12"
  args: ["1", "10"]
- field: email
  kind: email
  value: someone@example.com
- kind: zip_code
  value: "1234"
`

func TestBatch(t *testing.T) {
	t.Parallel()

	wantText := "qty: must be a whole number between 1 and 10\n" +
		"zip_code[4]: must be a 5 or 9 digit ZIP code\n" +
		"4 checked, 2 failed\n"

	t.Run("text report from file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, t.TempDir(), "form.yaml", formBatch)

		res := execute(t, nil, "", "batch", path)
		assert.Equal(t, 1, res.code, res.stderr)
		assert.Equal(t, wantText, res.stdout)
	})

	t.Run("stdin with a concurrency limit", func(t *testing.T) {
		t.Parallel()
		res := execute(t, map[string]string{"CONCURRENCY": "1"}, formBatch, "batch", "-")
		assert.Equal(t, 1, res.code, res.stderr)
		assert.Equal(t, wantText, res.stdout)
	})

	t.Run("yaml report", func(t *testing.T) {
		t.Parallel()
		res := execute(t, nil, formBatch, "--lang", "de", "batch", "-o", "yaml", "-")
		require.Equal(t, 1, res.code, res.stderr)

		var report struct {
			Source   string `yaml:"source"`
			Checked  int    `yaml:"checked"`
			Failed   int    `yaml:"failed"`
			Failures []struct {
				Field   string `yaml:"field"`
				Key     string `yaml:"key"`
				Message string `yaml:"message"`
			} `yaml:"failures"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &report))

		assert.Equal(t, "-", report.Source)
		assert.Equal(t, 4, report.Checked)
		assert.Equal(t, 2, report.Failed)
		require.Len(t, report.Failures, 2)
		assert.Equal(t, "qty", report.Failures[0].Field)
		assert.Equal(t, "validation.integer_range", report.Failures[0].Key)
		assert.Equal(t, "muss eine ganze Zahl zwischen 1 und 10 sein", report.Failures[0].Message)
		assert.Equal(t, "validation.zip_code", report.Failures[1].Key)
	})

	t.Run("all passing", func(t *testing.T) {
		t.Parallel()
		res := execute(t, nil, "- field: id\n  kind: uuid\n  value: 6ba7b810-9dad-11d1-80b4-00c04fd430c8\n", "batch", "-")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "1 checked, 0 failed\n", res.stdout)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		res := execute(t, nil, "", "batch", "-")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "0 checked, 0 failed\n", res.stdout)
	})

	t.Run("required when empty is not allowed", func(t *testing.T) {
		t.Parallel()
		res := execute(t, map[string]string{"ALLOW_EMPTY": "false"}, "- field: phone\n  kind: us_phone\n  value: \"\"\n", "batch", "-")
		assert.Equal(t, 1, res.code, res.stderr)
		assert.Equal(t, "phone: is required\n1 checked, 1 failed\n", res.stdout)
	})
}

func TestBatchErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stdin  string
		args   []string
		stderr string
	}{
		{
			name:   "unknown kind",
			stdin:  "- field: a\n  kind: iban\n  value: x\n",
			args:   []string{"batch", "-"},
			stderr: "entry 1",
		},
		{
			name:   "missing kind",
			stdin:  "- field: a\n  value: x\n",
			args:   []string{"batch", "-"},
			stderr: "entry 1 has no kind",
		},
		{
			name:   "not a list",
			stdin:  "field: a\nkind: email\n",
			args:   []string{"batch", "-"},
			stderr: "invalid batch file",
		},
		{
			name:   "bad argument",
			stdin:  "- field: a\n  kind: max_length\n  value: x\n  args: [many]\n",
			args:   []string{"batch", "-"},
			stderr: "invalid rule argument",
		},
		{
			name:   "unknown output format",
			stdin:  formBatch,
			args:   []string{"batch", "-o", "xml", "-"},
			stderr: "invalid output format",
		},
		{
			name:   "missing file",
			args:   []string{"batch", "does-not-exist.yaml"},
			stderr: "does-not-exist.yaml",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := execute(t, nil, tt.stdin, tt.args...)
			assert.Equal(t, 2, res.code)
			assert.Contains(t, res.stderr, tt.stderr)
			assert.Empty(t, res.stdout)
		})
	}
}
