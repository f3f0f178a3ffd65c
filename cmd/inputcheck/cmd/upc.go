package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputkit/pkg/validate"
)

func newUPCCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upc <code>",
		Short: "Verify the check digit of a UPC-A or EAN-13 code",
		Long: `Verify the check digit of a 12 digit UPC-A or 13 digit EAN-13 code.
Codes of any other length or with non-digits are reported as errors.

Examples:
  inputcheck upc 036000291452
  inputcheck upc 4006381333931`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := a.prepare(args[0])

			name, calc := "UPC-A", validate.CalcUPCChecksum
			if len(code) == 13 {
				name, calc = "EAN-13", validate.CalcEANChecksum
			}
			want, err := calc(code)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			got := code[len(code)-1]
			if got != want {
				fmt.Fprintf(out, "%s %s: invalid, check digit is %c, want %c\n", name, code, got, want)
				return ErrCheckFailed
			}
			fmt.Fprintf(out, "%s %s: valid\n", name, code)
			return nil
		},
	}
}
