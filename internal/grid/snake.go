package grid

import "github.com/mesh-intelligence/pathword/pkg/types"

// snakeOptions collects free-walk placements of word: an exhaustive DFS
// over orthogonal neighbors requiring each step to be in bounds,
// unvisited within this placement, and letter-consistent. Collection is
// capped per starting cell and overall to bound blow-up on sparse
// grids; the caps reject surplus candidates, not the search itself.
func (s *State) snakeOptions(word, startCellID string) [][]int {
	var out [][]int
	total := 0
	for _, start := range s.startCandidates(word[0], startCellID) {
		if total >= types.SnakeTotalCap {
			break
		}
		subtree := 0
		visited := make([]bool, len(s.cells))
		visited[start] = true
		s.snakeWalk(word, 1, []int{start}, visited, &subtree, &total, &out)
	}
	return out
}

// snakeWalk extends the partial placement path by one letter per frame.
func (s *State) snakeWalk(word string, depth int, path []int, visited []bool, subtree, total *int, out *[][]int) {
	if *subtree >= types.SnakeSubtreeCap || *total >= types.SnakeTotalCap {
		return
	}
	if depth == len(word) {
		*out = append(*out, append([]int(nil), path...))
		*subtree++
		*total++
		return
	}
	last := path[len(path)-1]
	x, y := last%s.width, last/s.width
	for _, d := range ortho4 {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= s.width || ny < 0 || ny >= s.height {
			continue
		}
		ni := ny*s.width + nx
		if visited[ni] || !s.admissible(ni, word[depth]) {
			continue
		}
		visited[ni] = true
		s.snakeWalk(word, depth+1, append(path, ni), visited, subtree, total, out)
		visited[ni] = false
	}
}
