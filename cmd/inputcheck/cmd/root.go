package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the inputcheck command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:   "inputcheck",
		Short: "Validate form input from the command line",
		Long: `inputcheck runs the inputkit validation rules against values given on the
command line or listed in a YAML batch file.

Settings are read from the environment (APP_ENV, LOG_LEVEL, LOG_FORMAT,
ALLOW_EMPTY, FOLD_WIDTH, LANG, MESSAGES_DIR, CONCURRENCY) and may be
overridden with flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringSliceVar(&a.flags.envFiles, "env-file", nil, "read settings from these .env files")
	pf.StringVar(&a.flags.lang, "lang", "", "language for error messages, e.g. de or es-MX")
	pf.StringVar(&a.flags.messagesDir, "messages", "", "directory with YAML or JSON message overrides")
	pf.BoolVar(&a.flags.foldWidth, "fold-width", false, "fold full-width characters before checking")
	pf.BoolVar(&a.flags.allowEmpty, "allow-empty", true, "treat empty values as valid")
	pf.IntVar(&a.flags.concurrency, "concurrency", 0, "maximum parallel checks in batch mode (0 means no limit)")

	root.AddCommand(
		newCheckCmd(a),
		newBatchCmd(a),
		newCardCmd(a),
		newCheckDigitCmd(a),
		newUPCCmd(a),
		newKindsCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	return Run(context.Background(), NewRootCmd(), os.Args[1:])
}

// Run executes root with args and maps the outcome to an exit status: 0 on
// success, 1 when a check failed and 2 for usage or input errors.
func Run(ctx context.Context, root *cobra.Command, args []string) int {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrCheckFailed):
		return 1
	default:
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return 2
	}
}
