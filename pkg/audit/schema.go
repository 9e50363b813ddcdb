package audit

import (
	"fmt"

	"github.com/mesh-intelligence/pathword/pkg/types"
)

// checkSchema validates the document shape. The detailed findings of
// the delegate validator are relabeled under the single ERR_SCHEMA
// umbrella code so the audit error-code space stays stable as the
// schema evolves.
func checkSchema(p *types.Puzzle) []Violation {
	var out []Violation
	for _, f := range schemaFindings(p) {
		out = append(out, Violation{Code: CodeSchema, Path: f.Path, Message: f.Message})
	}
	return out
}

// schemaFindings is the delegate validator. Its findings carry no code
// of their own; checkSchema assigns the umbrella code.
func schemaFindings(p *types.Puzzle) []Violation {
	var out []Violation
	report := func(path, format string, args ...any) {
		out = append(out, Violation{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if p.PuzzleID == "" {
		report("puzzleId", "puzzle ID must not be empty")
	}
	if err := p.Config.Validate(); err != nil {
		report("config", "%s", err)
	}
	if p.Grid.Width <= 0 || p.Grid.Height <= 0 {
		report("grid", "grid dimensions must be positive, got %dx%d", p.Grid.Width, p.Grid.Height)
	}

	seen := make(map[string]bool)
	for i, c := range p.Grid.Cells {
		path := fmt.Sprintf("grid.cells[%d]", i)
		if c.ID == "" {
			report(path, "cell ID must not be empty")
			continue
		}
		if seen[c.ID] {
			report(path, "duplicate cell ID %q", c.ID)
		}
		seen[c.ID] = true
		if c.Type != types.CellTypeLetter && c.Type != types.CellTypeVoid {
			report(path+".type", "unknown cell type %q", c.Type)
		}
	}

	checkWords := func(group string, words []types.WordDef) {
		for i, w := range words {
			path := fmt.Sprintf("words.%s[%d]", group, i)
			if w.WordID == "" {
				report(path+".wordId", "word ID must not be empty")
			}
			if len(w.Tokens) == 0 {
				report(path+".tokens", "word must have at least one token")
			}
			if w.Size != len(w.Tokens) {
				report(path+".size", "size %d does not match token count %d", w.Size, len(w.Tokens))
			}
		}
	}
	checkWords("path", p.Words.Path)
	checkWords("additional", p.Words.Additional)

	return out
}

// checkPlacementCounts requires exactly one placement per word in a
// finished puzzle.
func checkPlacementCounts(ctx *context, r *Report) {
	check := func(group string, words []types.WordDef) {
		for i, w := range words {
			if len(w.Placements) != 1 {
				r.Errors = append(r.Errors, Violation{
					Code:    CodePlacementCount,
					Path:    fmt.Sprintf("words.%s[%d].placements", group, i),
					Message: fmt.Sprintf("word %q must have exactly one placement, got %d", w.Text(), len(w.Placements)),
				})
			}
		}
	}
	check("path", ctx.p.Words.Path)
	check("additional", ctx.p.Words.Additional)
}

// checkCellRefs requires every placement cell ID to exist in the grid
// and every grid cell coordinate to lie inside the grid rectangle.
func checkCellRefs(ctx *context, r *Report) {
	check := func(group string, words []types.WordDef) {
		for i, w := range words {
			for pi, placement := range w.Placements {
				for ci, id := range placement {
					if _, ok := ctx.cells[id]; !ok {
						r.Errors = append(r.Errors, Violation{
							Code:    CodeUnknownCell,
							Path:    fmt.Sprintf("words.%s[%d].placements[%d][%d]", group, i, pi, ci),
							Message: fmt.Sprintf("placement references unknown cell %q", id),
						})
					}
				}
			}
		}
	}
	check("path", ctx.p.Words.Path)
	check("additional", ctx.p.Words.Additional)

	for i, c := range ctx.p.Grid.Cells {
		if !ctx.p.Grid.InBounds(c.X, c.Y) {
			r.Errors = append(r.Errors, Violation{
				Code:    CodeOutOfBounds,
				Path:    fmt.Sprintf("grid.cells[%d]", i),
				Message: fmt.Sprintf("cell %q at (%d,%d) is outside the %dx%d grid", c.ID, c.X, c.Y, ctx.p.Grid.Width, ctx.p.Grid.Height),
			})
		}
	}
}
