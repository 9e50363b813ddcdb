package generate

import (
	"math/rand"
	"strconv"

	"github.com/mesh-intelligence/pathword/internal/grid"
	"github.com/mesh-intelligence/pathword/pkg/types"
)

// solveChain commits every chain word onto the grid via recursive
// backtracking. Word i's candidates are seeded at the last cell of word
// i-1, the shared overlap point. A dead end reverts the previous word's
// mutation (excluding its overlap cell) and advances to its next
// candidate; exhausting the first word's candidates is a hard failure
// reported as types.ErrSearchExhausted.
func solveChain(g *grid.State, model string, chain []string) ([][]string, error) {
	placements := make([][]string, len(chain))
	if !placeFrom(g, model, chain, 0, placements) {
		return nil, types.ErrSearchExhausted
	}
	return placements, nil
}

// placeFrom places chain[idx:] given the already committed prefix.
func placeFrom(g *grid.State, model string, chain []string, idx int, placements [][]string) bool {
	if idx == len(chain) {
		return true
	}

	seed := ""
	if idx > 0 {
		prev := placements[idx-1]
		seed = prev[len(prev)-1]
	}

	for _, cells := range g.FindAllPathOptions(model, chain[idx], seed) {
		if !compatible(g, cells, placements[:idx], seed) {
			continue
		}
		g.Commit(chain[idx], chain[idx], cells, seed)
		placements[idx] = cells
		if placeFrom(g, model, chain, idx+1, placements) {
			return true
		}
		g.Uncommit()
		placements[idx] = nil
	}
	return false
}

// compatible rejects candidates that would break the structure a
// finished puzzle must have. The only cell a candidate may share with
// the already committed chain is the designated overlap point on its
// immediate predecessor; any other intersection would open a shortcut
// that bypasses part of the route. At the overlap the two words must
// turn, and against every non-intersecting word the candidate must not
// introduce orthogonal adjacency beyond the route edges already laid
// down.
func compatible(g *grid.State, candidate []string, committed [][]string, seed string) bool {
	edges := routeEdges(append(append([][]string{}, committed...), candidate))
	for pi, prev := range committed {
		shared := sharedCells(candidate, prev)
		isPredecessor := pi == len(committed)-1

		if len(shared) == 0 {
			if isPredecessor {
				// The chain overlap cell must be shared.
				return false
			}
			if adjacent(g, candidate, prev, edges) {
				return false
			}
			continue
		}
		if !isPredecessor || len(shared) != 1 || shared[0] != seed {
			return false
		}
		if orientationAt(g, candidate, seed) == orientationAt(g, prev, seed) {
			return false
		}
	}
	return true
}

// routeEdges collects the undirected consecutive-cell edges of every
// placement.
func routeEdges(placements [][]string) map[[2]string]bool {
	edges := make(map[[2]string]bool)
	for _, cells := range placements {
		for i := 1; i < len(cells); i++ {
			edges[[2]string{cells[i-1], cells[i]}] = true
			edges[[2]string{cells[i], cells[i-1]}] = true
		}
	}
	return edges
}

// sharedCells returns the cell IDs present in both placements.
func sharedCells(a, b []string) []string {
	in := make(map[string]bool, len(b))
	for _, id := range b {
		in[id] = true
	}
	var out []string
	for _, id := range a {
		if in[id] {
			out = append(out, id)
		}
	}
	return out
}

// adjacent reports whether any cell of a is an orthogonal neighbor of
// any cell of b through a pair that is not already a route edge.
func adjacent(g *grid.State, a, b []string, edges map[[2]string]bool) bool {
	bset := make(map[[2]int]string, len(b))
	for _, id := range b {
		x, y := coord(g, id)
		bset[[2]int{x, y}] = id
	}
	for _, id := range a {
		x, y := coord(g, id)
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nb, hit := bset[[2]int{x + d[0], y + d[1]}]
			if hit && !edges[[2]string{id, nb}] {
				return true
			}
		}
	}
	return false
}

// orientationAt returns the placement's local orientation through the
// given cell, canonicalized so that opposite directions compare equal.
// The zero vector is returned when the cell is not on the placement.
func orientationAt(g *grid.State, cells []string, cellID string) [2]int {
	idx := -1
	for i, id := range cells {
		if id == cellID {
			idx = i
			break
		}
	}
	if idx < 0 || len(cells) < 2 {
		return [2]int{}
	}

	var from, to string
	if idx < len(cells)-1 {
		from, to = cells[idx], cells[idx+1]
	} else {
		from, to = cells[idx-1], cells[idx]
	}
	fx, fy := coord(g, from)
	tx, ty := coord(g, to)
	dx, dy := sign(tx-fx), sign(ty-fy)
	if dx < 0 || (dx == 0 && dy < 0) {
		dx, dy = -dx, -dy
	}
	return [2]int{dx, dy}
}

// coord converts a row-major cell ID to grid coordinates.
func coord(g *grid.State, cellID string) (int, int) {
	n, _ := strconv.Atoi(cellID[1:])
	return n % g.Width(), n / g.Width()
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

// placeBonus places exactly one bonus word intersecting the committed
// path, trying a shuffled candidate list and committing the first that
// fits. Exhausting every candidate is a hard failure for the attempt.
func placeBonus(g *grid.State, candidates []string, pathCells []string, rng *rand.Rand) (word string, cells []string, hintCellID string, err error) {
	pool := chainPool(candidates)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	for _, w := range pool {
		if placed, hint, ok := g.TryPlaceBonusWord(w, w, pathCells); ok {
			return w, placed, hint, nil
		}
	}
	return "", nil, "", types.ErrSearchExhausted
}
