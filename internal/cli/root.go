// Package cli implements the pathword command-line interface: puzzle
// generation, structural auditing, content-QA reporting, and storage
// inspection.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	seed      int64
}

var flags rootFlags

// NewRootCmd creates the top-level "pathword" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pathword",
		Short: "Generate and validate grid-based word puzzles",
		Long: "Pathword generates letter-grid puzzles in which path words chain\n" +
			"into a connected start-to-end route, audits their structure, and\n" +
			"stores the results for content QA.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .pathword-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "random seed (0 seeds from time)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newAuditCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newTopicsCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// exitError prints the error to stderr and terminates with the given
// exit code.
func exitError(cmd *cobra.Command, code int, msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
	return nil // unreachable
}
