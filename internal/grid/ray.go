package grid

// rayOptions collects every straight-line placement of word. From each
// admissible starting cell and each of the four orthogonal directions
// it walks word-length minus one steps; every step must stay in bounds
// and land on an empty or letter-consistent cell. A failed step rejects
// that branch only.
func (s *State) rayOptions(word, startCellID string) [][]int {
	var out [][]int
	for _, start := range s.startCandidates(word[0], startCellID) {
		for _, d := range ortho4 {
			if seq, ok := s.walkRay(start, d, word); ok {
				out = append(out, seq)
			}
		}
	}
	return out
}

// walkRay lays word in a straight line from start along direction d.
func (s *State) walkRay(start int, d [2]int, word string) ([]int, bool) {
	seq := make([]int, 0, len(word))
	x, y := start%s.width, start/s.width
	for i := 0; i < len(word); i++ {
		if x < 0 || x >= s.width || y < 0 || y >= s.height {
			return nil, false
		}
		ci := y*s.width + x
		if !s.admissible(ci, word[i]) {
			return nil, false
		}
		seq = append(seq, ci)
		x += d[0]
		y += d[1]
	}
	return seq, true
}

// startCandidates returns the cells a placement may begin at: the seed
// cell when given, otherwise every cell that is empty or already holds
// the word's first letter.
func (s *State) startCandidates(first byte, startCellID string) []int {
	if startCellID != "" {
		i, ok := s.index(startCellID)
		if !ok || !s.admissible(i, first) {
			return nil
		}
		return []int{i}
	}
	var starts []int
	for i := range s.cells {
		if s.admissible(i, first) {
			starts = append(starts, i)
		}
	}
	return starts
}
