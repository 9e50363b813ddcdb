// Package engine implements the run-time selection resolver: it
// consumes a finished, audited puzzle immutably and resolves a player's
// selected cell sequence to a word by exact-match lookup, optionally
// accepting the reversed sequence.
package engine

import (
	"strings"

	"github.com/mesh-intelligence/pathword/pkg/types"
)

// Session tracks found words for one player against one puzzle. The
// puzzle itself is never mutated.
type Session struct {
	puzzle *types.Puzzle

	// byKey maps a placement key (either scan direction when the
	// puzzle allows reverse selection) to a word ID.
	byKey map[string]string

	pathIDs map[string]bool
	found   map[string]bool
}

// New builds a session's lookup tables from the puzzle document.
func New(p *types.Puzzle) *Session {
	s := &Session{
		puzzle:  p,
		byKey:   make(map[string]string),
		pathIDs: make(map[string]bool),
		found:   make(map[string]bool),
	}
	register := func(w *types.WordDef) {
		for _, placement := range w.Placements {
			s.byKey[key(placement)] = w.WordID
			if p.Config.AllowReverseSelection {
				s.byKey[key(reversed(placement))] = w.WordID
			}
		}
	}
	for i := range p.Words.Path {
		register(&p.Words.Path[i])
		s.pathIDs[p.Words.Path[i].WordID] = true
	}
	for i := range p.Words.Additional {
		register(&p.Words.Additional[i])
	}
	return s
}

// Resolve matches a selected cell sequence against the puzzle's
// placements. On a hit the word is marked found and its ID returned;
// a miss returns ok=false and changes nothing.
func (s *Session) Resolve(cellIDs []string) (string, bool) {
	wordID, ok := s.byKey[key(cellIDs)]
	if !ok {
		return "", false
	}
	s.found[wordID] = true
	return wordID, true
}

// Found reports whether the given word has been resolved.
func (s *Session) Found(wordID string) bool {
	return s.found[wordID]
}

// Solved reports whether every path word has been found. Bonus words
// are optional and never gate completion.
func (s *Session) Solved() bool {
	for id := range s.pathIDs {
		if !s.found[id] {
			return false
		}
	}
	return true
}

// Hint returns the hint cell and its letter for a found bonus word.
func (s *Session) Hint(wordID string) (cellID, letter string, ok bool) {
	for i := range s.puzzle.Words.Additional {
		w := &s.puzzle.Words.Additional[i]
		if w.WordID != wordID || w.HintCellID == "" {
			continue
		}
		idx := s.puzzle.Grid.Index()
		c, exists := idx[w.HintCellID]
		if !exists {
			return "", "", false
		}
		return c.ID, c.Value, true
	}
	return "", "", false
}

func key(cellIDs []string) string {
	return strings.Join(cellIDs, "|")
}

func reversed(cellIDs []string) []string {
	out := make([]string, len(cellIDs))
	for i, id := range cellIDs {
		out[len(cellIDs)-1-i] = id
	}
	return out
}
