package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pathword/pkg/types"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <puzzle-id>",
		Short: "Print a stored puzzle",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	_, st, err := setup()
	if err != nil {
		return exitError(cmd, exitSysError, err.Error())
	}
	defer st.Detach()

	puzzle, err := st.GetPuzzle(args[0])
	if err != nil {
		return exitError(cmd, exitUserError, err.Error())
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(puzzle)
	}

	fmt.Fprintf(out, "puzzle %s theme=%s model=%s\n", puzzle.PuzzleID, puzzle.Theme, puzzle.Config.SelectionModel)
	fmt.Fprint(out, renderGrid(&puzzle.Grid))
	fmt.Fprintf(out, "start=%s end=%s\n", puzzle.Grid.Start.AdjacentCellID, puzzle.Grid.End.AdjacentCellID)
	for _, w := range puzzle.Words.Path {
		fmt.Fprintf(out, "path  %s %v\n", w.Text(), w.Placements)
	}
	for _, w := range puzzle.Words.Additional {
		fmt.Fprintf(out, "bonus %s %v hint=%s\n", w.Text(), w.Placements, w.HintCellID)
	}
	return nil
}

// renderGrid draws the letter grid row by row. Void cells render as a
// dot, empty letter cells as an underscore.
func renderGrid(g *types.Grid) string {
	rows := make([][]string, g.Height)
	for y := range rows {
		rows[y] = make([]string, g.Width)
		for x := range rows[y] {
			rows[y][x] = "_"
		}
	}
	for _, c := range g.Cells {
		if !g.InBounds(c.X, c.Y) {
			continue
		}
		switch {
		case c.IsVoid():
			rows[c.Y][c.X] = "."
		case c.Value != "":
			rows[c.Y][c.X] = c.Value
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, " "))
		b.WriteString("\n")
	}
	return b.String()
}
