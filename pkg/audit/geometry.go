package audit

import (
	"fmt"

	"github.com/mesh-intelligence/pathword/pkg/types"
)

// checkRayGeometry applies to ray-family selection models only: every
// placement step must have Manhattan distance 1 and the step vector
// must be constant across the whole word, a true straight line. The
// four-directional model additionally forbids diagonal steps.
func checkRayGeometry(ctx *context, r *Report) {
	model := ctx.p.Config.SelectionModel
	if !types.IsRayModel(model) {
		return
	}

	check := func(group string, words []types.WordDef) {
		for wi, w := range words {
			placement := placementOf(&words[wi])
			path := fmt.Sprintf("words.%s[%d].placements[0]", group, wi)
			var first point
			for i := 1; i < len(placement); i++ {
				a, okA := ctx.coordOf(placement[i-1])
				b, okB := ctx.coordOf(placement[i])
				if !okA || !okB {
					// Unknown cells are reported by checkCellRefs.
					continue
				}
				step := point{b.x - a.x, b.y - a.y}
				if abs(step.x)+abs(step.y) != 1 {
					r.Errors = append(r.Errors, Violation{
						Code:    CodeRayGeometry,
						Path:    path,
						Message: fmt.Sprintf("word %q step %d has Manhattan distance %d, want 1", w.Text(), i, abs(step.x)+abs(step.y)),
					})
					continue
				}
				if model == types.SelectionRay4 && step.x != 0 && step.y != 0 {
					r.Errors = append(r.Errors, Violation{
						Code:    CodeRayGeometry,
						Path:    path,
						Message: fmt.Sprintf("word %q step %d is diagonal", w.Text(), i),
					})
					continue
				}
				if i == 1 {
					first = step
				} else if step != first {
					r.Errors = append(r.Errors, Violation{
						Code:    CodeRayGeometry,
						Path:    path,
						Message: fmt.Sprintf("word %q changes direction at step %d; ray placements must be straight", w.Text(), i),
					})
				}
			}
		}
	}
	check("path", ctx.p.Words.Path)
	check("additional", ctx.p.Words.Additional)
}

// checkParallelAdjacency requires any two path words that share no cell
// to have no orthogonally adjacent cells between them. An adjacent pair
// that is itself a route edge of some placement does not count: the
// path legitimately runs through it. Uncovered adjacency would merge
// the words visually and create selection ambiguity.
func checkParallelAdjacency(ctx *context, r *Report) {
	words := ctx.p.Words.Path
	for a := 0; a < len(words); a++ {
		pa := placementOf(&words[a])
		for b := a + 1; b < len(words); b++ {
			pb := placementOf(&words[b])
			if sharesCell(pa, pb) {
				continue
			}
			if ctx.uncoveredAdjacency(pa, pb) {
				r.Errors = append(r.Errors, Violation{
					Code:    CodeParallelAdjacency,
					Path:    fmt.Sprintf("words.path[%d]", b),
					Message: fmt.Sprintf("words %q and %q do not intersect but have orthogonally adjacent cells", words[a].Text(), words[b].Text()),
				})
			}
		}
	}
}

// checkSameDirection requires any cell shared by two or more path words
// to carry those words in different local orientations. A word has an
// orientation at a cell only when it runs straight through it; words
// that start, end, or turn at the shared cell never collide there. Two
// words running straight through one cell the same way are
// indistinguishable to the player.
func checkSameDirection(ctx *context, r *Report) {
	for id, owners := range ctx.pathUnion {
		if len(owners) < 2 {
			continue
		}
		for i := 0; i < len(owners); i++ {
			for j := i + 1; j < len(owners); j++ {
				wa, wb := owners[i], owners[j]
				oa, okA := ctx.orientationAt(placementOf(&ctx.p.Words.Path[wa]), id)
				ob, okB := ctx.orientationAt(placementOf(&ctx.p.Words.Path[wb]), id)
				if okA && okB && oa == ob {
					r.Errors = append(r.Errors, Violation{
						Code:    CodeSameDirection,
						Path:    fmt.Sprintf("words.path[%d]", wb),
						Message: fmt.Sprintf("words %q and %q run in the same orientation through cell %q", ctx.p.Words.Path[wa].Text(), ctx.p.Words.Path[wb].Text(), id),
					})
				}
			}
		}
	}
}

// checkUniqueness rejects two words whose ordered cell sequences are
// identical in either scan direction, across path and bonus words.
func checkUniqueness(ctx *context, r *Report) {
	seen := make(map[string]string)
	check := func(group string, words []types.WordDef) {
		for wi, w := range words {
			placement := placementOf(&words[wi])
			if placement == nil {
				continue
			}
			fwd := placementKey(placement, false)
			rev := placementKey(placement, true)
			if prior, ok := seen[fwd]; ok {
				r.Errors = append(r.Errors, Violation{
					Code:    CodeDuplicatePlacement,
					Path:    fmt.Sprintf("words.%s[%d].placements[0]", group, wi),
					Message: fmt.Sprintf("word %q shares its cell sequence with word %q", w.Text(), prior),
				})
				continue
			}
			seen[fwd] = w.Text()
			if rev != fwd {
				seen[rev] = w.Text()
			}
		}
	}
	check("path", ctx.p.Words.Path)
	check("additional", ctx.p.Words.Additional)
}

// orientationAt returns the placement's local orientation through the
// cell, canonicalized so opposite directions compare equal. The
// orientation exists only when the cell is interior to the placement
// and the steps into and out of it are collinear.
func (ctx *context) orientationAt(placement []string, cellID string) (point, bool) {
	idx := -1
	for i, id := range placement {
		if id == cellID {
			idx = i
			break
		}
	}
	if idx <= 0 || idx >= len(placement)-1 {
		return point{}, false
	}

	a, okA := ctx.coordOf(placement[idx-1])
	b, okB := ctx.coordOf(placement[idx])
	c, okC := ctx.coordOf(placement[idx+1])
	if !okA || !okB || !okC {
		return point{}, false
	}
	in := point{sign(b.x - a.x), sign(b.y - a.y)}
	out := point{sign(c.x - b.x), sign(c.y - b.y)}
	if in != out {
		// The word turns here; no single orientation.
		return point{}, false
	}
	if in.x < 0 || (in.x == 0 && in.y < 0) {
		in.x, in.y = -in.x, -in.y
	}
	return in, true
}

// uncoveredAdjacency reports whether some cell of a is an orthogonal
// neighbor of some cell of b without that pair being a route edge.
func (ctx *context) uncoveredAdjacency(a, b []string) bool {
	bset := make(map[point]string, len(b))
	for _, id := range b {
		if pt, ok := ctx.coordOf(id); ok {
			bset[pt] = id
		}
	}
	for _, id := range a {
		pt, ok := ctx.coordOf(id)
		if !ok {
			continue
		}
		for _, d := range [4]point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nb, hit := bset[point{pt.x + d.x, pt.y + d.y}]
			if hit && !ctx.isRouteEdge(id, nb) {
				return true
			}
		}
	}
	return false
}

// isRouteEdge reports whether two cells are consecutive in some
// path-word placement.
func (ctx *context) isRouteEdge(a, b string) bool {
	for _, nb := range ctx.adj[a] {
		if nb == b {
			return true
		}
	}
	return false
}

func sharesCell(a, b []string) bool {
	in := make(map[string]bool, len(b))
	for _, id := range b {
		in[id] = true
	}
	for _, id := range a {
		if in[id] {
			return true
		}
	}
	return false
}

// placementKey builds a comparable key for an ordered cell sequence.
func placementKey(placement []string, reversed bool) string {
	key := ""
	if reversed {
		for i := len(placement) - 1; i >= 0; i-- {
			key += placement[i] + "|"
		}
		return key
	}
	for _, id := range placement {
		key += id + "|"
	}
	return key
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
