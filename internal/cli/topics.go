package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pathword/internal/paths"
)

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List available word-source topics",
		RunE:  runTopics,
	}
}

func runTopics(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return exitError(cmd, exitSysError, err.Error())
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return exitError(cmd, exitSysError, err.Error())
	}
	src, err := wordSource(cfg)
	if err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("load words: %s", err))
	}

	names := src.Topics()
	if flags.jsonMode {
		enc := json.NewEncoder(cmd.OutOrStdout())
		return enc.Encode(names)
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
