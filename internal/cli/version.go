package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the CLI version string, overridable at link time.
var version = "0.2.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pathword version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pathword version %s\n", version)
		},
	}
}
