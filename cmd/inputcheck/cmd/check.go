package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputkit/pkg/logger"
	"github.com/dmitrymomot/inputkit/pkg/validator"
)

func newCheckCmd(a *app) *cobra.Command {
	var field string

	c := &cobra.Command{
		Use:   "check <kind> <value> [args...]",
		Short: "Check one value against a validation kind",
		Long: `Check one value against a validation kind. Kinds that take parameters read
them from the remaining arguments.

Examples:
  inputcheck check credit_card "4111 1111 1111 1111"
  inputcheck check integer_range 42 1 100
  inputcheck check decimal 12.5 false true 0 2
  inputcheck check card_match 378282246310005 CCT_AMEX
  inputcheck --lang de check email "not an address"
  inputcheck check -- negative_integer -5`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, value := args[0], a.prepare(args[1])
			name := field
			if name == "" {
				name = kind
			}

			rules, err := a.rules(kind, name, value, args[2:])
			if err != nil {
				return err
			}

			err = validator.Apply(rules...)
			a.log.DebugContext(cmd.Context(), "value checked",
				logger.Field(name),
				logger.Kind(kind),
				logger.Valid(err == nil),
			)
			if err != nil {
				a.printErrors(cmd, validator.ExtractValidationErrors(err))
				return ErrCheckFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	c.Flags().StringVar(&field, "field", "", "field name used in messages (defaults to the kind)")
	return c
}
