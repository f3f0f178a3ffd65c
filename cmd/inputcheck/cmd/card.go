package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputkit/pkg/logger"
	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
	"github.com/dmitrymomot/inputkit/pkg/validate"
)

func newCardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "card <number>",
		Short: "Identify a payment card number and check its Luhn sum",
		Long: `Identify a payment card number and check its Luhn sum. Spaces and dashes
are ignored. Exit status is 1 when the number is not a valid card.

Example:
  inputcheck card "3782 822463 10005"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := sanitizer.NormalizeCreditCard(a.prepare(args[0]))
			cardType := validate.CardTypeOf(number)
			sum := validate.LuhnSum(number)
			valid := number != "" && validate.IsAnyCard(number)

			a.log.DebugContext(cmd.Context(), "card checked",
				logger.CardType(cardType),
				logger.Valid(valid),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "number:    %s\n", sanitizer.FormatCreditCard(number))
			fmt.Fprintf(out, "type:      %s\n", cardType)
			fmt.Fprintf(out, "luhn sum:  %d\n", sum)
			fmt.Fprintf(out, "mod 10:    %t\n", validate.SumIsMod10(sum))
			fmt.Fprintf(out, "valid:     %t\n", valid)
			if !valid {
				return ErrCheckFailed
			}
			return nil
		},
	}
}
