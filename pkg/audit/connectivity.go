package audit

import (
	"fmt"

	"github.com/mesh-intelligence/pathword/pkg/types"
)

// checkEndpoints requires the start and end markers to reference
// existing, non-void cells that belong to the union of path-word
// placements.
func checkEndpoints(ctx *context, r *Report) {
	check := func(path, id string) {
		c, ok := ctx.cells[id]
		if !ok {
			r.Errors = append(r.Errors, Violation{
				Code:    CodeEndpoint,
				Path:    path,
				Message: fmt.Sprintf("marker references unknown cell %q", id),
			})
			return
		}
		if c.IsVoid() {
			r.Errors = append(r.Errors, Violation{
				Code:    CodeEndpoint,
				Path:    path,
				Message: fmt.Sprintf("marker cell %q is void", id),
			})
		}
		if _, ok := ctx.pathUnion[id]; !ok {
			r.Errors = append(r.Errors, Violation{
				Code:    CodeEndpoint,
				Path:    path,
				Message: fmt.Sprintf("marker cell %q is not covered by any path word", id),
			})
		}
	}
	check("grid.start.adjacentCellId", ctx.p.Grid.Start.AdjacentCellID)
	check("grid.end.adjacentCellId", ctx.p.Grid.End.AdjacentCellID)
}

// checkConnectivity requires the start cell to reach the end cell over
// the route graph: orthogonal steps along path-word placements, with
// words joined only where they share a cell. Path words contributing no
// cell to the reachable set are reported as unreachable. The BFS
// distances are kept on the context for the criticality check.
func checkConnectivity(ctx *context, r *Report) {
	start := ctx.p.Grid.Start.AdjacentCellID
	end := ctx.p.Grid.End.AdjacentCellID

	ctx.distStart = ctx.bfs(start)
	ctx.distEnd = ctx.bfs(end)

	dist, solvable := ctx.distStart[end]
	r.Connectivity.Solvable = solvable
	if solvable {
		r.Connectivity.PathLength = dist
	}

	for wi := range ctx.p.Words.Path {
		if !ctx.wordReachable(wi) {
			r.Connectivity.UnreachablePathWords = append(
				r.Connectivity.UnreachablePathWords, ctx.p.Words.Path[wi].Text())
		}
	}

	if !solvable {
		r.Errors = append(r.Errors, Violation{
			Code:    CodeUnsolvable,
			Path:    "grid",
			Message: fmt.Sprintf("no orthogonal route over path-word cells connects %q to %q", start, end),
		})
	}
}

// checkCriticality runs the bidirectional BFS criterion: a cell is
// critical iff distFromStart + distFromEnd equals the shortest
// start-to-end path length, and every path word must contain at least
// one critical cell. A word forming a necessary but non-shortest
// alternate route is still flagged; that is the intended criterion, not
// an oversight.
func checkCriticality(ctx *context, r *Report) {
	shortest, ok := ctx.distStart[ctx.p.Grid.End.AdjacentCellID]
	if !ok {
		// Unsolvable puzzles are already reported by checkConnectivity.
		return
	}

	for wi, w := range ctx.p.Words.Path {
		if ctx.wordHasCriticalCell(wi, shortest) {
			continue
		}
		r.Errors = append(r.Errors, Violation{
			Code:    CodeNotCritical,
			Path:    fmt.Sprintf("words.path[%d]", wi),
			Message: fmt.Sprintf("word %q has no cell on any shortest start-to-end route; it is a dead end or a bypassable branch", w.Text()),
		})
	}
}

// bfs returns step counts from the given cell over the route graph.
// Cells absent from the result are unreachable; an origin outside the
// path union yields an empty map.
func (ctx *context) bfs(from string) map[string]int {
	dist := make(map[string]int)
	if _, ok := ctx.pathUnion[from]; !ok {
		return dist
	}

	dist[from] = 0
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range ctx.adj[cur] {
			if _, seen := dist[nb]; seen {
				continue
			}
			dist[nb] = dist[cur] + 1
			queue = append(queue, nb)
		}
	}
	return dist
}

// wordReachable reports whether the word contributes at least one cell
// to the set reachable from start.
func (ctx *context) wordReachable(wi int) bool {
	placement := placementOf(&ctx.p.Words.Path[wi])
	for _, id := range placement {
		if _, ok := ctx.distStart[id]; ok {
			return true
		}
	}
	return false
}

// wordHasCriticalCell reports whether any of the word's cells lies on
// some shortest start-to-end route.
func (ctx *context) wordHasCriticalCell(wi, shortest int) bool {
	placement := placementOf(&ctx.p.Words.Path[wi])
	for _, id := range placement {
		ds, okS := ctx.distStart[id]
		de, okE := ctx.distEnd[id]
		if okS && okE && ds+de == shortest {
			return true
		}
	}
	return false
}

// checkAdvisories emits non-fatal diagnostics: a puzzle without bonus
// words and a chain over the soft letter budget are both legal but
// worth surfacing to content QA.
func checkAdvisories(ctx *context, r *Report) {
	if len(ctx.p.Words.Additional) == 0 {
		r.Warnings = append(r.Warnings, Violation{
			Code:    WarnNoBonusWords,
			Path:    "words.additional",
			Message: "puzzle has no bonus words",
		})
	}

	total := 0
	for _, w := range ctx.p.Words.Path {
		total += len(w.Tokens)
	}
	if total > types.SoftChainTotal {
		r.Warnings = append(r.Warnings, Violation{
			Code:    WarnChainOverSoft,
			Path:    "words.path",
			Message: fmt.Sprintf("path words total %d letters, over the soft budget of %d", total, types.SoftChainTotal),
		})
	}
}
