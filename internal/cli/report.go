package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pathword/pkg/audit"
	"github.com/mesh-intelligence/pathword/pkg/types"
)

// reportFlags holds the batch QA thresholds. These heuristics layer on
// top of the auditor's guarantees and are purely diagnostic: the
// command always exits zero.
var reportFlags struct {
	minIntersections int
	minRouteLength   int
	minCoverage      float64
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run content-QA heuristics over stored puzzles",
		Long: "Re-audit every stored puzzle and apply batch quality heuristics:\n" +
			"minimum path intersections, minimum route length, and minimum grid\n" +
			"coverage. Findings are diagnostics, not validity verdicts.",
		RunE: runReport,
	}
	cmd.Flags().IntVar(&reportFlags.minIntersections, "min-intersections", 2, "minimum cells shared by two or more path words")
	cmd.Flags().IntVar(&reportFlags.minRouteLength, "min-route-length", 4, "minimum shortest start-to-end route length in steps")
	cmd.Flags().Float64Var(&reportFlags.minCoverage, "min-coverage", 0.2, "minimum fraction of letter cells used by words")
	return cmd
}

// reportRow is one puzzle's QA outcome.
type reportRow struct {
	PuzzleID      string   `json:"puzzleId"`
	Theme         string   `json:"theme"`
	Valid         bool     `json:"valid"`
	Intersections int      `json:"intersections"`
	RouteLength   int      `json:"routeLength"`
	Coverage      float64  `json:"coverage"`
	Flags         []string `json:"flags,omitempty"`
}

func runReport(cmd *cobra.Command, args []string) error {
	_, st, err := setup()
	if err != nil {
		return exitError(cmd, exitSysError, err.Error())
	}
	defer st.Detach()

	summaries, err := st.ListPuzzles()
	if err != nil {
		return exitError(cmd, exitSysError, err.Error())
	}

	var rows []reportRow
	for _, sum := range summaries {
		puzzle, err := st.GetPuzzle(sum.PuzzleID)
		if err != nil {
			return exitError(cmd, exitSysError, err.Error())
		}
		rep := audit.Audit(puzzle)
		row := reportRow{
			PuzzleID:      puzzle.PuzzleID,
			Theme:         puzzle.Theme,
			Valid:         rep.Valid,
			Intersections: countIntersections(puzzle),
			RouteLength:   rep.Connectivity.PathLength,
			Coverage:      coverage(puzzle),
		}
		if !rep.Valid {
			row.Flags = append(row.Flags, "invalid")
		}
		if row.Intersections < reportFlags.minIntersections {
			row.Flags = append(row.Flags, fmt.Sprintf("intersections<%d", reportFlags.minIntersections))
		}
		if rep.Connectivity.Solvable && row.RouteLength < reportFlags.minRouteLength {
			row.Flags = append(row.Flags, fmt.Sprintf("route<%d", reportFlags.minRouteLength))
		}
		if row.Coverage < reportFlags.minCoverage {
			row.Flags = append(row.Flags, fmt.Sprintf("coverage<%.2f", reportFlags.minCoverage))
		}
		rows = append(rows, row)
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	for _, row := range rows {
		status := "ok"
		if len(row.Flags) > 0 {
			status = "flagged"
		}
		fmt.Fprintf(out, "%s theme=%s %s intersections=%d route=%d coverage=%.2f %v\n",
			row.PuzzleID, row.Theme, status, row.Intersections, row.RouteLength, row.Coverage, row.Flags)
	}
	return nil
}

// countIntersections counts cells occupied by two or more path words.
func countIntersections(p *types.Puzzle) int {
	owners := make(map[string]int)
	for _, w := range p.Words.Path {
		for _, placement := range w.Placements {
			for _, id := range placement {
				owners[id]++
			}
		}
	}
	n := 0
	for _, c := range owners {
		if c >= 2 {
			n++
		}
	}
	return n
}

// coverage returns the fraction of letter cells used by any word.
func coverage(p *types.Puzzle) float64 {
	used := make(map[string]bool)
	for _, group := range [][]types.WordDef{p.Words.Path, p.Words.Additional} {
		for _, w := range group {
			for _, placement := range w.Placements {
				for _, id := range placement {
					used[id] = true
				}
			}
		}
	}
	letters := 0
	for _, c := range p.Grid.Cells {
		if !c.IsVoid() {
			letters++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(len(used)) / float64(letters)
}
