package grid

import "fmt"

// TryPlaceBonusWord places one bonus word so that it intersects the
// committed path. Every character offset of the word is tried against
// every path cell carrying the matching letter as the intersection
// anchor; the first full-word straight placement that fits is committed
// and returned together with the anchor as hint cell. Returns ok=false
// when no anchor admits the word.
func (s *State) TryPlaceBonusWord(wordID, word string, pathCellIDs []string) ([]string, string, bool) {
	if s.frozen || word == "" {
		return nil, "", false
	}

	anchors := append([]string(nil), pathCellIDs...)
	s.rng.Shuffle(len(anchors), func(i, j int) {
		anchors[i], anchors[j] = anchors[j], anchors[i]
	})

	for offset := 0; offset < len(word); offset++ {
		for _, anchorID := range anchors {
			ai, ok := s.index(anchorID)
			if !ok || s.cells[ai].letter != word[offset] {
				continue
			}
			for _, d := range ortho4 {
				start := s.rayStartFor(ai, d, offset)
				if start < 0 {
					continue
				}
				seq, ok := s.walkRay(start, d, word)
				if !ok || s.duplicatesCommit(seq) {
					continue
				}
				ids := make([]string, len(seq))
				for i, ci := range seq {
					ids[i] = fmt.Sprintf("c%d", ci)
				}
				s.Commit(wordID, word, ids, anchorID)
				return ids, anchorID, true
			}
		}
	}
	return nil, "", false
}

// rayStartFor backtracks offset steps from the anchor against direction
// d, returning -1 when the start would leave the grid.
func (s *State) rayStartFor(anchor int, d [2]int, offset int) int {
	x := anchor%s.width - d[0]*offset
	y := anchor/s.width - d[1]*offset
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return -1
	}
	return y*s.width + x
}

// duplicatesCommit reports whether the candidate sequence matches an
// already committed placement in either scan direction. Duplicate
// placements would make player selections ambiguous.
func (s *State) duplicatesCommit(seq []int) bool {
	ids := make([]string, len(seq))
	for i, ci := range seq {
		ids[i] = fmt.Sprintf("c%d", ci)
	}
	for _, rec := range s.commits {
		if len(rec.Cells) != len(ids) {
			continue
		}
		same, reversed := true, true
		for i := range ids {
			if rec.Cells[i] != ids[i] {
				same = false
			}
			if rec.Cells[len(ids)-1-i] != ids[i] {
				reversed = false
			}
		}
		if same || reversed {
			return true
		}
	}
	return false
}
