package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/inputkit/pkg/logger"
	"github.com/dmitrymomot/inputkit/pkg/validator"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// batchItem is one entry of a batch file.
type batchItem struct {
	Field string   `yaml:"field"`
	Kind  string   `yaml:"kind"`
	Value string   `yaml:"value"`
	Args  []string `yaml:"args,omitempty"`
}

type batchFailure struct {
	Field   string `yaml:"field"`
	Key     string `yaml:"key"`
	Message string `yaml:"message"`
}

type batchReport struct {
	Source   string         `yaml:"source"`
	Checked  int            `yaml:"checked"`
	Failed   int            `yaml:"failed"`
	Failures []batchFailure `yaml:"failures,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Check every entry of a YAML batch file",
		Long: `Check every entry of a YAML batch file. Use "-" to read from stdin.

The file holds a list of checks:

  - field: card
    kind: credit_card
    value: "4111 1111 1111 1111"
  - field: qty
    kind: integer_range
    value: "12"
    args: ["1", "10"]

Exit status is 1 when any check fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputText && output != outputYAML {
				return fmt.Errorf("%w: %q", ErrInvalidOutput, output)
			}

			src := args[0]
			items, err := readBatch(cmd.InOrStdin(), src)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rules := make([]validator.Rule, 0, len(items))
			for i, item := range items {
				if item.Kind == "" {
					return fmt.Errorf("%w: entry %d has no kind", ErrInvalidBatch, i+1)
				}
				field := item.Field
				if field == "" {
					field = fmt.Sprintf("%s[%d]", item.Kind, i+1)
				}
				r, err := a.rules(item.Kind, field, a.prepare(item.Value), item.Args)
				if err != nil {
					return fmt.Errorf("%w: entry %d: %w", ErrInvalidBatch, i+1, err)
				}
				rules = append(rules, r...)
			}

			start := time.Now()
			err = validator.ApplyConcurrent(ctx, a.cfg.Concurrency, rules...)
			if err != nil && !validator.IsValidationError(err) {
				return err
			}
			errs := validator.ExtractValidationErrors(err)

			a.log.InfoContext(ctx, "batch checked",
				logger.Source(src),
				logger.Count(len(items)),
				slog.Int("failed", len(errs)),
				logger.Duration(time.Since(start)),
			)

			report := batchReport{Source: src, Checked: len(items), Failed: len(errs)}
			for _, e := range errs {
				report.Failures = append(report.Failures, batchFailure{
					Field:   e.Field,
					Key:     e.TranslationKey,
					Message: a.message(e),
				})
			}
			if err := writeReport(cmd.OutOrStdout(), output, report); err != nil {
				return err
			}
			if report.Failed > 0 {
				return ErrCheckFailed
			}
			return nil
		},
	}
	c.Flags().StringVarP(&output, "output", "o", outputText, "report format: text or yaml")
	return c
}

func readBatch(stdin io.Reader, src string) ([]batchItem, error) {
	r := stdin
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var items []batchItem
	if err := yaml.NewDecoder(r).Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidBatch, err)
	}
	return items, nil
}

func writeReport(w io.Writer, format string, report batchReport) error {
	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, f := range report.Failures {
		fmt.Fprintf(w, "%s: %s\n", f.Field, f.Message)
	}
	fmt.Fprintf(w, "%d checked, %d failed\n", report.Checked, report.Failed)
	return nil
}
