package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
	"github.com/dmitrymomot/inputkit/pkg/validate"
)

func newCheckDigitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkdigit <payload>",
		Short: "Compute the Luhn check digit for a number",
		Long: `Compute the Luhn check digit for a number and print the completed number.
Spaces and dashes are ignored.

Example:
  inputcheck checkdigit 7992739871`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := sanitizer.NormalizeCreditCard(a.prepare(args[0]))
			if payload == "" || !validate.IsInteger(payload) {
				return fmt.Errorf("%w: %q", ErrNotDigits, args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "check digit: %d\n", validate.LuhnCheckDigit(payload))
			fmt.Fprintf(out, "number:      %s\n", validate.AppendCheckDigit(payload))
			return nil
		},
	}
}
