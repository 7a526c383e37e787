package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/fretsmart/internal/version"
)

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print the fretsmart version",
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "fretsmart %s\n", version.String())
			return nil
		},
	}
}
