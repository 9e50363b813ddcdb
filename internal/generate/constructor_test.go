package generate

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pathword/pkg/audit"
	"github.com/mesh-intelligence/pathword/pkg/types"
)

func testParams() Params {
	return Params{
		Width:                 6,
		Height:                6,
		Theme:                 "animals",
		SelectionModel:        types.SelectionSnake,
		ConnectivityModel:     types.ConnectivityOrtho4,
		AllowReverseSelection: true,
		PathWords:             chainablePool,
		BonusWords:            []string{"oat", "tad", "cot", "dot", "tog", "nag", "tan"},
	}
}

func TestBuildProducesAuditCleanPuzzle(t *testing.T) {
	c := NewConstructor(rand.New(rand.NewSource(11)))

	p, err := c.Build(testParams())

	require.NoError(t, err)
	require.NotNil(t, p)
	assert.NotEmpty(t, p.PuzzleID)
	assert.Equal(t, "animals", p.Theme)
	require.NotEmpty(t, p.Words.Path)
	require.Len(t, p.Words.Additional, 1)
	assert.NotEmpty(t, p.Words.Additional[0].HintCellID)

	rep := audit.Audit(p)
	assert.True(t, rep.Valid, "generated puzzle must audit clean: %v", rep.Errors)
	assert.True(t, rep.Connectivity.Solvable)
	assert.Empty(t, rep.Connectivity.UnreachablePathWords)
}

func TestBuildEndpointsSpanTheChain(t *testing.T) {
	c := NewConstructor(rand.New(rand.NewSource(23)))

	p, err := c.Build(testParams())

	require.NoError(t, err)
	first := p.Words.Path[0].Placements[0]
	last := p.Words.Path[len(p.Words.Path)-1].Placements[0]
	assert.Equal(t, first[0], p.Grid.Start.AdjacentCellID)
	assert.Equal(t, last[len(last)-1], p.Grid.End.AdjacentCellID)
}

func TestBuildDeterministicGridPerSeed(t *testing.T) {
	build := func() *types.Puzzle {
		p, err := NewConstructor(rand.New(rand.NewSource(99))).Build(testParams())
		require.NoError(t, err)
		return p
	}

	a, b := build(), build()

	// IDs are fresh UUIDs; everything the random source drives must
	// reproduce exactly.
	assert.Equal(t, a.Grid.Cells, b.Grid.Cells)
	require.Equal(t, len(a.Words.Path), len(b.Words.Path))
	for i := range a.Words.Path {
		assert.Equal(t, a.Words.Path[i].Placements, b.Words.Path[i].Placements)
		assert.Equal(t, a.Words.Path[i].Tokens, b.Words.Path[i].Tokens)
	}
	assert.Equal(t, a.Words.Additional[0].Placements, b.Words.Additional[0].Placements)
	assert.Equal(t, a.Words.Additional[0].HintCellID, b.Words.Additional[0].HintCellID)
}

func TestBuildRejectsInvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		mod  func(p *Params)
		want error
	}{
		{
			name: "unknown selection model",
			mod:  func(p *Params) { p.SelectionModel = "spiral" },
			want: types.ErrSelectionModelUnknown,
		},
		{
			name: "unknown connectivity model",
			mod:  func(p *Params) { p.ConnectivityModel = "ortho_8" },
			want: types.ErrConnectivityModelUnknown,
		},
		{
			name: "non-positive grid",
			mod:  func(p *Params) { p.Width = 0 },
			want: types.ErrGridSizeInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := testParams()
			tt.mod(&params)

			_, err := NewConstructor(rand.New(rand.NewSource(1))).Build(params)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildExhaustsRetryBudget(t *testing.T) {
	params := testParams()
	// No two of these chain, so every attempt fails at planning.
	params.PathWords = []string{"cat", "dog", "pig", "hen"}

	_, err := NewConstructor(rand.New(rand.NewSource(1))).Build(params)

	require.ErrorIs(t, err, types.ErrConstructionFailed)
	var ce *types.ConstructionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, types.ConstructionRetries, ce.Attempts)
	assert.ErrorIs(t, ce.Last, types.ErrNoChain)
}
