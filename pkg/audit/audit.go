// Package audit implements the structural auditor for finished puzzles:
// a battery of independent graph and geometry invariant checks that all
// run and accumulate their findings, never short-circuiting on the
// first failure.
//
// Audit is a pure function over an immutable puzzle document. It holds
// no shared state and is safe to call concurrently on distinct puzzles.
package audit

import "github.com/mesh-intelligence/pathword/pkg/types"

// Violation codes. These are stable machine-checkable identifiers;
// consumers must assert on the code, never on the message text.
const (
	CodeSchema             = "ERR_SCHEMA"
	CodePlacementCount     = "ERR_PLACEMENT_COUNT"
	CodeUnknownCell        = "ERR_UNKNOWN_CELL"
	CodeOutOfBounds        = "ERR_OUT_OF_BOUNDS"
	CodeEndpoint           = "ERR_ENDPOINT"
	CodeUnsolvable         = "ERR_UNSOLVABLE"
	CodeNotCritical        = "ERR_NOT_CRITICAL"
	CodeHintInvalid        = "ERR_HINT_INVALID"
	CodeHintNotInPath      = "ERR_HINT_NOT_IN_PATH"
	CodeDuplicatePlacement = "ERR_DUPLICATE_PLACEMENT"
	CodeRayGeometry        = "ERR_RAY_GEOMETRY"
	CodeParallelAdjacency  = "ERR_PARALLEL_ADJACENCY"
	CodeSameDirection      = "ERR_SAME_DIRECTION_INTERSECTION"
)

// Warning codes.
const (
	WarnNoBonusWords  = "WARN_NO_BONUS_WORDS"
	WarnChainOverSoft = "WARN_CHAIN_OVER_SOFT_TOTAL"
)

// Violation is one structural finding. Path locates the offending
// element inside the puzzle document.
type Violation struct {
	Code    string `json:"code"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error implements the error interface so single violations can travel
// through error-returning call sites.
func (v Violation) Error() string {
	return v.Code + " at " + v.Path + ": " + v.Message
}

// Connectivity summarizes the start-to-end reachability analysis.
type Connectivity struct {
	Solvable             bool     `json:"solvable"`
	PathLength           int      `json:"pathLength"`
	UnreachablePathWords []string `json:"unreachablePathWords,omitempty"`
}

// Report is the accumulated audit outcome. Valid is true iff Errors is
// empty; Warnings never affect validity.
type Report struct {
	Valid        bool         `json:"valid"`
	Errors       []Violation  `json:"errors"`
	Warnings     []Violation  `json:"warnings"`
	Connectivity Connectivity `json:"connectivity"`
}

// Audit runs every structural check against the puzzle and returns the
// accumulated report. Schema validation runs first and its findings are
// relabeled under the single ERR_SCHEMA umbrella code; every other
// check runs regardless and contributes independently.
func Audit(p *types.Puzzle) Report {
	var r Report
	r.Errors = append(r.Errors, checkSchema(p)...)

	ctx := newContext(p)
	checkPlacementCounts(ctx, &r)
	checkCellRefs(ctx, &r)
	checkEndpoints(ctx, &r)
	checkConnectivity(ctx, &r)
	checkCriticality(ctx, &r)
	checkHints(ctx, &r)
	checkUniqueness(ctx, &r)
	checkRayGeometry(ctx, &r)
	checkParallelAdjacency(ctx, &r)
	checkSameDirection(ctx, &r)
	checkAdvisories(ctx, &r)

	r.Valid = len(r.Errors) == 0
	return r
}

// point is a grid coordinate.
type point struct{ x, y int }

// context carries the lookup structures the checks share. It is built
// once per audit and never mutated by the checks except for the
// connectivity distances, which checkConnectivity computes and
// checkCriticality reads.
type context struct {
	p     *types.Puzzle
	cells map[string]*types.Cell

	// pathUnion maps every cell ID used by a path word to the indices
	// of the path words occupying it.
	pathUnion map[string][]int

	// adj is the route graph: edges between consecutive cells of each
	// path-word placement. Words connect only where they share a cell;
	// incidental spatial adjacency between words is not a route.
	adj map[string][]string

	// distStart and distEnd are BFS step counts over the path union,
	// filled by checkConnectivity. A missing key means unreachable.
	distStart map[string]int
	distEnd   map[string]int
}

func newContext(p *types.Puzzle) *context {
	ctx := &context{
		p:         p,
		cells:     p.Grid.Index(),
		pathUnion: make(map[string][]int),
		adj:       make(map[string][]string),
	}
	for wi := range p.Words.Path {
		for _, placement := range p.Words.Path[wi].Placements {
			for i, id := range placement {
				ctx.pathUnion[id] = appendUnique(ctx.pathUnion[id], wi)
				if i > 0 {
					ctx.addEdge(placement[i-1], id)
				}
			}
		}
	}
	return ctx
}

// addEdge records an undirected route edge, skipping duplicates.
func (ctx *context) addEdge(a, b string) {
	for _, nb := range ctx.adj[a] {
		if nb == b {
			return
		}
	}
	ctx.adj[a] = append(ctx.adj[a], b)
	ctx.adj[b] = append(ctx.adj[b], a)
}

// coordOf resolves a cell ID to its coordinate via the grid document.
func (ctx *context) coordOf(id string) (point, bool) {
	c, ok := ctx.cells[id]
	if !ok {
		return point{}, false
	}
	return point{c.X, c.Y}, true
}

// placementOf returns a word's single placement, or nil when the word
// does not have exactly one. Checks that need a placement use this so a
// malformed word is reported once, by checkPlacementCounts.
func placementOf(w *types.WordDef) []string {
	if len(w.Placements) != 1 {
		return nil
	}
	return w.Placements[0]
}

func appendUnique(s []int, v int) []int {
	for _, e := range s {
		if e == v {
			return s
		}
	}
	return append(s, v)
}
