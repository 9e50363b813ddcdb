package audit

import "fmt"

// checkHints validates bonus-word hint cells. A hint cell must exist,
// be non-void, and belong to some path word's placement; the path
// membership condition carries its own code because content tooling
// filters on it specifically. The generator additionally places the
// hint on the bonus word's own intersection cell, but the auditor does
// not require that: a hint may reveal any path cell.
func checkHints(ctx *context, r *Report) {
	for wi, w := range ctx.p.Words.Additional {
		path := fmt.Sprintf("words.additional[%d].hintCellId", wi)

		if w.HintCellID == "" {
			r.Errors = append(r.Errors, Violation{
				Code:    CodeHintInvalid,
				Path:    path,
				Message: fmt.Sprintf("bonus word %q has no hint cell", w.Text()),
			})
			continue
		}
		c, ok := ctx.cells[w.HintCellID]
		if !ok {
			r.Errors = append(r.Errors, Violation{
				Code:    CodeHintInvalid,
				Path:    path,
				Message: fmt.Sprintf("hint cell %q does not exist", w.HintCellID),
			})
			continue
		}
		if c.IsVoid() {
			r.Errors = append(r.Errors, Violation{
				Code:    CodeHintInvalid,
				Path:    path,
				Message: fmt.Sprintf("hint cell %q is void", w.HintCellID),
			})
		}
		if _, onPath := ctx.pathUnion[w.HintCellID]; !onPath {
			r.Errors = append(r.Errors, Violation{
				Code:    CodeHintNotInPath,
				Path:    path,
				Message: fmt.Sprintf("hint cell %q does not belong to any path word", w.HintCellID),
			})
		}
	}
}
