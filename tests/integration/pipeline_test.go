// Package integration exercises the full generation pipeline: word
// source to constructor to auditor to store to selection resolver.
package integration

import (
	"math/rand"
	"testing"

	"github.com/mesh-intelligence/pathword/internal/engine"
	"github.com/mesh-intelligence/pathword/internal/generate"
	"github.com/mesh-intelligence/pathword/internal/store"
	"github.com/mesh-intelligence/pathword/internal/words"
	"github.com/mesh-intelligence/pathword/pkg/audit"
	"github.com/mesh-intelligence/pathword/pkg/types"
)

// setupStore creates a store attached to an isolated temp directory.
func setupStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	if err := s.Attach(t.TempDir()); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { s.Detach() })
	return s
}

// mustGenerate builds one puzzle from the embedded word source.
func mustGenerate(t *testing.T, seed int64, topic string) *types.Puzzle {
	t.Helper()
	src, err := words.Default()
	if err != nil {
		t.Fatalf("Default word source: %v", err)
	}
	list, err := src.Lookup(topic)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", topic, err)
	}

	c := generate.NewConstructor(rand.New(rand.NewSource(seed)))
	p, err := c.Build(generate.Params{
		Width:                 6,
		Height:                6,
		Theme:                 topic,
		SelectionModel:        types.SelectionSnake,
		ConnectivityModel:     types.ConnectivityOrtho4,
		AllowReverseSelection: true,
		PathWords:             list.Path,
		BonusWords:            list.Bonus,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func TestGenerateAuditStoreRoundTrip(t *testing.T) {
	s := setupStore(t)
	p := mustGenerate(t, 17, "animals")

	rep := audit.Audit(p)
	if !rep.Valid {
		t.Fatalf("generated puzzle failed audit: %v", rep.Errors)
	}
	if !rep.Connectivity.Solvable {
		t.Fatalf("generated puzzle not solvable")
	}

	if err := s.SavePuzzle(p); err != nil {
		t.Fatalf("SavePuzzle: %v", err)
	}
	if err := s.SaveReport(p.PuzzleID, rep); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}

	loaded, err := s.GetPuzzle(p.PuzzleID)
	if err != nil {
		t.Fatalf("GetPuzzle: %v", err)
	}
	if loaded.PuzzleID != p.PuzzleID {
		t.Fatalf("loaded puzzle ID %q, want %q", loaded.PuzzleID, p.PuzzleID)
	}
	if len(loaded.Words.Path) != len(p.Words.Path) {
		t.Fatalf("loaded %d path words, want %d", len(loaded.Words.Path), len(p.Words.Path))
	}

	// The reloaded document must audit identically.
	reloaded := audit.Audit(loaded)
	if !reloaded.Valid {
		t.Fatalf("reloaded puzzle failed audit: %v", reloaded.Errors)
	}

	storedRep, err := s.GetReport(p.PuzzleID)
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if !storedRep.Valid {
		t.Fatalf("stored report not valid")
	}
}

func TestStoredPuzzleIsPlayable(t *testing.T) {
	s := setupStore(t)
	p := mustGenerate(t, 29, "food")

	if err := s.SavePuzzle(p); err != nil {
		t.Fatalf("SavePuzzle: %v", err)
	}
	loaded, err := s.GetPuzzle(p.PuzzleID)
	if err != nil {
		t.Fatalf("GetPuzzle: %v", err)
	}

	session := engine.New(loaded)
	for _, w := range loaded.Words.Path {
		id, ok := session.Resolve(w.Placements[0])
		if !ok {
			t.Fatalf("path word %v not resolvable", w.Tokens)
		}
		if id != w.WordID {
			t.Fatalf("resolved %q, want %q", id, w.WordID)
		}
	}
	if !session.Solved() {
		t.Fatalf("session not solved after finding every path word")
	}

	bonus := loaded.Words.Additional[0]
	if _, ok := session.Resolve(bonus.Placements[0]); !ok {
		t.Fatalf("bonus word not resolvable")
	}
	cellID, letter, ok := session.Hint(bonus.WordID)
	if !ok {
		t.Fatalf("no hint for bonus word %q", bonus.WordID)
	}
	if cellID != bonus.HintCellID {
		t.Fatalf("hint cell %q, want %q", cellID, bonus.HintCellID)
	}
	if letter == "" {
		t.Fatalf("hint letter empty")
	}
}

func TestBatchGenerationIsIndependent(t *testing.T) {
	s := setupStore(t)

	for i, topic := range []string{"animals", "food", "space"} {
		p := mustGenerate(t, int64(100+i), topic)
		rep := audit.Audit(p)
		if !rep.Valid {
			t.Fatalf("puzzle %d (%s) failed audit: %v", i, topic, rep.Errors)
		}
		if err := s.SavePuzzle(p); err != nil {
			t.Fatalf("SavePuzzle %d: %v", i, err)
		}
	}

	list, err := s.ListPuzzles()
	if err != nil {
		t.Fatalf("ListPuzzles: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("listed %d puzzles, want 3", len(list))
	}
}
