package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPuzzleConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  PuzzleConfig
		wantErr error
	}{
		{
			name:   "ray_4 with ortho_4",
			config: PuzzleConfig{SelectionModel: SelectionRay4, ConnectivityModel: ConnectivityOrtho4},
		},
		{
			name:   "ray_8 with ortho_4",
			config: PuzzleConfig{SelectionModel: SelectionRay8, ConnectivityModel: ConnectivityOrtho4},
		},
		{
			name:   "snake with ortho_4",
			config: PuzzleConfig{SelectionModel: SelectionSnake, ConnectivityModel: ConnectivityOrtho4},
		},
		{
			name:    "unknown selection model",
			config:  PuzzleConfig{SelectionModel: "spiral", ConnectivityModel: ConnectivityOrtho4},
			wantErr: ErrSelectionModelUnknown,
		},
		{
			name:    "empty selection model",
			config:  PuzzleConfig{ConnectivityModel: ConnectivityOrtho4},
			wantErr: ErrSelectionModelUnknown,
		},
		{
			name:    "unknown connectivity model",
			config:  PuzzleConfig{SelectionModel: SelectionRay4, ConnectivityModel: "diag_8"},
			wantErr: ErrConnectivityModelUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsRayModel(t *testing.T) {
	assert.True(t, IsRayModel(SelectionRay4))
	assert.True(t, IsRayModel(SelectionRay8))
	assert.False(t, IsRayModel(SelectionSnake))
	assert.False(t, IsRayModel(""))
}

func TestConstructionErrorUnwrap(t *testing.T) {
	err := &ConstructionError{Attempts: 50, Last: ErrSearchExhausted}
	assert.True(t, errors.Is(err, ErrConstructionFailed))
	assert.Contains(t, err.Error(), "50 attempts")
}

func TestGridIndexAndBounds(t *testing.T) {
	g := Grid{
		Width:  2,
		Height: 2,
		Cells: []Cell{
			{ID: "c0", X: 0, Y: 0, Type: CellTypeLetter, Value: "a"},
			{ID: "c1", X: 1, Y: 0, Type: CellTypeVoid},
		},
	}

	idx := g.Index()
	assert.Equal(t, "a", idx["c0"].Value)
	assert.True(t, idx["c1"].IsVoid())
	_, ok := idx["c9"]
	assert.False(t, ok)

	assert.True(t, g.InBounds(1, 1))
	assert.False(t, g.InBounds(2, 0))
	assert.False(t, g.InBounds(0, -1))
}
