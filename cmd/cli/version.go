package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thand-io/superadmin/internal/common"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// Printing the version needs no configuration
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("superadmin "+common.GetVersion()))
		},
	}
}
