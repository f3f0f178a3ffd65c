package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputkit/pkg/validator"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the validation kinds accepted by check and batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, kind := range validator.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), kind)
			}
			return nil
		},
	}
}
