// Package grid implements the mutable working grid used during puzzle
// construction: geometry-constrained placement search, commit/undo via
// an explicit stack of commit records, bonus-word placement, and
// distractor filling.
//
// A State is exclusively owned by one in-flight construction attempt.
// Placement search never mutates the grid; only Commit and RemovePath
// do, and every mutation is recorded so it can be reverted exactly.
package grid

import (
	"fmt"
	"math/rand"

	"github.com/mesh-intelligence/pathword/pkg/types"
)

// ortho4 lists the four orthogonal step vectors in x,y order.
var ortho4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// cellState is one working cell. A zero letter means the cell is empty;
// claims counts how many committed words currently occupy the cell.
type cellState struct {
	letter byte
	claims int
}

// CommitRecord captures one committed placement so that its revert is
// independent of call-stack depth. OverlapExemptCellID names the cell
// shared with the previously committed word (empty when none); that
// cell is neither claimed nor cleared by this record.
type CommitRecord struct {
	WordID              string
	Cells               []string
	OverlapExemptCellID string
}

// State is the mutable construction grid. Create a fresh State per
// construction attempt; a State must never be shared across attempts.
type State struct {
	width   int
	height  int
	cells   []cellState
	rng     *rand.Rand
	commits []CommitRecord
	frozen  bool
}

// New creates an empty working grid. The selection geometry is chosen
// per search call, not per grid; rng drives all candidate shuffling and
// distractor letters so a pinned seed reproduces a construction run.
func New(width, height int, rng *rand.Rand) (*State, error) {
	if width <= 0 || height <= 0 {
		return nil, types.ErrGridSizeInvalid
	}
	return &State{
		width:  width,
		height: height,
		cells:  make([]cellState, width*height),
		rng:    rng,
	}, nil
}

// Width returns the grid width.
func (s *State) Width() int { return s.width }

// Height returns the grid height.
func (s *State) Height() int { return s.height }

// CellID returns the ID of the cell at (x, y). IDs are row-major:
// cell (x, y) is "c" followed by y*width+x.
func (s *State) CellID(x, y int) string {
	return fmt.Sprintf("c%d", y*s.width+x)
}

// Letter returns the letter at the given cell, or an empty string when
// the cell is empty or the ID is unknown.
func (s *State) Letter(cellID string) string {
	i, ok := s.index(cellID)
	if !ok || s.cells[i].letter == 0 {
		return ""
	}
	return string(s.cells[i].letter)
}

// Commits returns the current commit stack, bottom first. The slice is
// shared; callers must treat it as read-only.
func (s *State) Commits() []CommitRecord {
	return s.commits
}

// Commit writes the word's letters onto the cells and pushes a commit
// record. The overlap-exempt cell (if any) must already carry the
// word's letter at that position; it is left to its prior owner.
func (s *State) Commit(wordID, word string, cellIDs []string, overlapExemptCellID string) {
	for i, id := range cellIDs {
		if id == overlapExemptCellID {
			continue
		}
		ci, _ := s.index(id)
		s.cells[ci].letter = word[i]
		s.cells[ci].claims++
	}
	s.commits = append(s.commits, CommitRecord{
		WordID:              wordID,
		Cells:               append([]string(nil), cellIDs...),
		OverlapExemptCellID: overlapExemptCellID,
	})
}

// Uncommit pops the top commit record and reverts its mutation. It
// returns false when the stack is empty.
func (s *State) Uncommit() (CommitRecord, bool) {
	if len(s.commits) == 0 {
		return CommitRecord{}, false
	}
	rec := s.commits[len(s.commits)-1]
	s.commits = s.commits[:len(s.commits)-1]
	s.RemovePath(rec.Cells, rec.OverlapExemptCellID)
	return rec, true
}

// RemovePath reverts a previously committed cell sequence, resetting
// each touched cell to empty. The overlap-exempt cell and any cell
// still claimed by another committed word keep their letters.
func (s *State) RemovePath(cellIDs []string, overlapExemptCellID string) {
	for _, id := range cellIDs {
		if id == overlapExemptCellID {
			continue
		}
		ci, ok := s.index(id)
		if !ok {
			continue
		}
		if s.cells[ci].claims > 0 {
			s.cells[ci].claims--
		}
		if s.cells[ci].claims == 0 {
			s.cells[ci].letter = 0
		}
	}
}

// FillDistractors assigns a uniform random letter to every remaining
// empty cell, then freezes the grid. No placement search or commit may
// follow.
func (s *State) FillDistractors() {
	for i := range s.cells {
		if s.cells[i].letter == 0 {
			s.cells[i].letter = byte('a' + s.rng.Intn(26))
		}
	}
	s.frozen = true
}

// Snapshot assembles the frozen grid into the document model. Start and
// end markers are left zero for the caller to set.
func (s *State) Snapshot() types.Grid {
	g := types.Grid{
		Width:  s.width,
		Height: s.height,
		Cells:  make([]types.Cell, len(s.cells)),
	}
	for i := range s.cells {
		c := types.Cell{
			ID:   fmt.Sprintf("c%d", i),
			X:    i % s.width,
			Y:    i / s.width,
			Type: types.CellTypeLetter,
		}
		if s.cells[i].letter != 0 {
			c.Value = string(s.cells[i].letter)
		}
		g.Cells[i] = c
	}
	return g
}

// index parses a cell ID of the form "c<n>" into a cell slice index.
func (s *State) index(cellID string) (int, bool) {
	if len(cellID) < 2 || cellID[0] != 'c' {
		return 0, false
	}
	n := 0
	for i := 1; i < len(cellID); i++ {
		d := cellID[i]
		if d < '0' || d > '9' {
			return 0, false
		}
		n = n*10 + int(d-'0')
	}
	if n >= len(s.cells) {
		return 0, false
	}
	return n, true
}

// admissible reports whether a cell can host the given letter: the cell
// must be empty or already carry exactly that letter.
func (s *State) admissible(i int, letter byte) bool {
	return s.cells[i].letter == 0 || s.cells[i].letter == letter
}

// FindAllPathOptions collects every valid placement of word under the
// given selection model. When startCellID is non-empty, only placements
// beginning at that cell are considered (the chain overlap seed). The
// result is shuffled; an empty result means no options, never an error.
func (s *State) FindAllPathOptions(model, word, startCellID string) [][]string {
	if s.frozen || word == "" {
		return nil
	}
	var opts [][]int
	switch model {
	case types.SelectionSnake:
		opts = s.snakeOptions(word, startCellID)
	default:
		opts = s.rayOptions(word, startCellID)
	}
	out := make([][]string, len(opts))
	for i, seq := range opts {
		ids := make([]string, len(seq))
		for j, ci := range seq {
			ids[j] = fmt.Sprintf("c%d", ci)
		}
		out[i] = ids
	}
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
