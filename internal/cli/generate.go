package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pathword/internal/generate"
	"github.com/mesh-intelligence/pathword/pkg/audit"
	"github.com/mesh-intelligence/pathword/pkg/types"
)

// genFlags holds generate-specific flag values.
var genFlags struct {
	topic string
	count int
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate puzzles for a topic",
		Long: "Generate one or more puzzles from a topic's word pools, audit each,\n" +
			"and store both the puzzle and its audit report. A failed generation\n" +
			"is logged and the batch continues.",
		RunE: runGenerate,
	}
	cmd.Flags().StringVar(&genFlags.topic, "topic", "", "topic to draw words from (required)")
	cmd.Flags().IntVar(&genFlags.count, "count", 1, "number of puzzles to generate")
	cmd.MarkFlagRequired("topic")
	return cmd
}

// generateResult is one line of --json output.
type generateResult struct {
	PuzzleID string `json:"puzzleId"`
	Theme    string `json:"theme"`
	Valid    bool   `json:"valid"`
	Errors   int    `json:"errors"`
	Warnings int    `json:"warnings"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, st, err := setup()
	if err != nil {
		return exitError(cmd, exitSysError, err.Error())
	}
	defer st.Detach()

	src, err := wordSource(cfg)
	if err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("load words: %s", err))
	}
	list, err := src.Lookup(genFlags.topic)
	if err != nil {
		return exitError(cmd, exitUserError, fmt.Sprintf("topic %q: %s", genFlags.topic, err))
	}

	params := generate.Params{
		Width:                 cfg.GetInt(cfgKeyGridWidth),
		Height:                cfg.GetInt(cfgKeyGridHeight),
		Theme:                 genFlags.topic,
		SelectionModel:        cfg.GetString(cfgKeySelectionModel),
		ConnectivityModel:     types.ConnectivityOrtho4,
		AllowReverseSelection: cfg.GetBool(cfgKeyAllowReverse),
		PathWords:             list.Path,
		BonusWords:            list.Bonus,
	}
	ctor := generate.NewConstructor(newRNG())

	var results []generateResult
	for i := 0; i < genFlags.count; i++ {
		puzzle, err := ctor.Build(params)
		if err != nil {
			// One exhausted budget must not sink the batch.
			if errors.Is(err, types.ErrConstructionFailed) {
				fmt.Fprintf(os.Stderr, "puzzle %d/%d: %s\n", i+1, genFlags.count, err)
				continue
			}
			return exitError(cmd, exitUserError, err.Error())
		}

		rep := audit.Audit(puzzle)
		if err := st.SavePuzzle(puzzle); err != nil {
			return exitError(cmd, exitSysError, fmt.Sprintf("save puzzle: %s", err))
		}
		if err := st.SaveReport(puzzle.PuzzleID, rep); err != nil {
			return exitError(cmd, exitSysError, fmt.Sprintf("save report: %s", err))
		}

		results = append(results, generateResult{
			PuzzleID: puzzle.PuzzleID,
			Theme:    puzzle.Theme,
			Valid:    rep.Valid,
			Errors:   len(rep.Errors),
			Warnings: len(rep.Warnings),
		})
		if !flags.jsonMode {
			fmt.Fprintf(cmd.OutOrStdout(), "generated %s theme=%s valid=%t errors=%d warnings=%d\n",
				puzzle.PuzzleID, puzzle.Theme, rep.Valid, len(rep.Errors), len(rep.Warnings))
		}
	}

	if flags.jsonMode {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return exitError(cmd, exitSysError, err.Error())
		}
	}
	return nil
}
