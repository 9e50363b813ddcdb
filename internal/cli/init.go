package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and puzzle storage",
		Long:  "Create the configuration directory with a default config.yaml and initialize the puzzle database.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	_, st, err := setup()
	if err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("initialize storage: %s", err))
	}
	if err := st.Detach(); err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("finalize storage: %s", err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Pathword initialized successfully")
	return nil
}
