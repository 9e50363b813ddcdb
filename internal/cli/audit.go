package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pathword/pkg/audit"
	"github.com/mesh-intelligence/pathword/pkg/types"
)

func newAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit <puzzle-id|file>",
		Short: "Run the structural auditor against a puzzle",
		Long: "Audit a puzzle by stored ID or by JSON file path. All checks run and\n" +
			"accumulate; the command exits non-zero when the puzzle is invalid.",
		Args: cobra.ExactArgs(1),
		RunE: runAudit,
	}
}

func runAudit(cmd *cobra.Command, args []string) error {
	puzzle, err := loadPuzzleArg(args[0])
	if err != nil {
		return exitError(cmd, exitUserError, err.Error())
	}

	rep := audit.Audit(puzzle)

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return exitError(cmd, exitSysError, err.Error())
		}
	} else {
		fmt.Fprintf(out, "puzzle %s valid=%t solvable=%t pathLength=%d\n",
			puzzle.PuzzleID, rep.Valid, rep.Connectivity.Solvable, rep.Connectivity.PathLength)
		for _, w := range rep.Connectivity.UnreachablePathWords {
			fmt.Fprintf(out, "unreachable: %s\n", w)
		}
		for _, v := range rep.Errors {
			fmt.Fprintf(out, "error   %s %s: %s\n", v.Code, v.Path, v.Message)
		}
		for _, v := range rep.Warnings {
			fmt.Fprintf(out, "warning %s %s: %s\n", v.Code, v.Path, v.Message)
		}
	}

	if !rep.Valid {
		os.Exit(exitUserError)
	}
	return nil
}

// loadPuzzleArg resolves the positional argument as a JSON file when it
// exists on disk, otherwise as a stored puzzle ID.
func loadPuzzleArg(arg string) (*types.Puzzle, error) {
	if data, err := os.ReadFile(arg); err == nil {
		var p types.Puzzle
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode puzzle file %q: %w", arg, err)
		}
		return &p, nil
	}

	_, st, err := setup()
	if err != nil {
		return nil, err
	}
	defer st.Detach()
	return st.GetPuzzle(arg)
}
