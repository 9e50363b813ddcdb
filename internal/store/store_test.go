package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pathword/pkg/audit"
	"github.com/mesh-intelligence/pathword/pkg/types"
)

func attachedStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	require.NoError(t, s.Attach(t.TempDir()))
	t.Cleanup(func() { s.Detach() })
	return s
}

func testPuzzle(id string) *types.Puzzle {
	return &types.Puzzle{
		PuzzleID: id,
		Theme:    "animals",
		Config: types.PuzzleConfig{
			SelectionModel:        types.SelectionRay4,
			ConnectivityModel:     types.ConnectivityOrtho4,
			AllowReverseSelection: true,
		},
		Grid: types.Grid{
			Width:  2,
			Height: 1,
			Cells: []types.Cell{
				{ID: "c0", X: 0, Y: 0, Type: types.CellTypeLetter, Value: "a"},
				{ID: "c1", X: 1, Y: 0, Type: types.CellTypeLetter, Value: "t"},
			},
		},
	}
}

func TestAttachLifecycle(t *testing.T) {
	s := New()
	dir := t.TempDir()

	require.NoError(t, s.Attach(dir))
	assert.ErrorIs(t, s.Attach(dir), types.ErrAlreadyAttached)

	require.NoError(t, s.Detach())
	assert.NoError(t, s.Detach(), "detach is idempotent")

	// Re-attach opens the same database file again.
	require.NoError(t, s.Attach(dir))
	require.NoError(t, s.Detach())
}

func TestDetachedStoreRejectsOperations(t *testing.T) {
	s := New()

	assert.ErrorIs(t, s.SavePuzzle(testPuzzle("p1")), types.ErrStoreDetached)
	_, err := s.GetPuzzle("p1")
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = s.ListPuzzles()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = s.GetReport("p1")
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}

func TestSaveAndGetPuzzle(t *testing.T) {
	s := attachedStore(t)
	p := testPuzzle("p1")

	require.NoError(t, s.SavePuzzle(p))

	got, err := s.GetPuzzle("p1")
	require.NoError(t, err)
	assert.Equal(t, p.PuzzleID, got.PuzzleID)
	assert.Equal(t, p.Theme, got.Theme)
	assert.Equal(t, p.Grid.Cells, got.Grid.Cells)

	_, err = s.GetPuzzle("nope")
	assert.ErrorIs(t, err, types.ErrPuzzleNotFound)
}

func TestSavePuzzleReplaces(t *testing.T) {
	s := attachedStore(t)
	p := testPuzzle("p1")
	require.NoError(t, s.SavePuzzle(p))

	p.Theme = "food"
	require.NoError(t, s.SavePuzzle(p))

	got, err := s.GetPuzzle("p1")
	require.NoError(t, err)
	assert.Equal(t, "food", got.Theme)

	list, err := s.ListPuzzles()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListPuzzles(t *testing.T) {
	s := attachedStore(t)
	require.NoError(t, s.SavePuzzle(testPuzzle("p1")))
	require.NoError(t, s.SavePuzzle(testPuzzle("p2")))

	list, err := s.ListPuzzles()
	require.NoError(t, err)
	require.Len(t, list, 2)
	ids := []string{list[0].PuzzleID, list[1].PuzzleID}
	assert.ElementsMatch(t, []string{"p1", "p2"}, ids)
	for _, sum := range list {
		assert.Equal(t, "animals", sum.Theme)
		assert.False(t, sum.CreatedAt.IsZero())
	}
}

func TestSaveAndGetReport(t *testing.T) {
	s := attachedStore(t)
	require.NoError(t, s.SavePuzzle(testPuzzle("p1")))

	rep := audit.Report{
		Valid: false,
		Errors: []audit.Violation{
			{Code: audit.CodeUnsolvable, Path: "grid", Message: "no route"},
		},
		Connectivity: audit.Connectivity{Solvable: false},
	}
	require.NoError(t, s.SaveReport("p1", rep))

	got, err := s.GetReport("p1")
	require.NoError(t, err)
	assert.False(t, got.Valid)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, audit.CodeUnsolvable, got.Errors[0].Code)

	_, err = s.GetReport("p2")
	assert.ErrorIs(t, err, types.ErrReportNotFound)
}
