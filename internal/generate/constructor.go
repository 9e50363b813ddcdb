package generate

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/pathword/internal/grid"
	"github.com/mesh-intelligence/pathword/pkg/types"
)

// Params describes one generation request.
type Params struct {
	Width  int
	Height int
	Theme  string

	SelectionModel        string
	ConnectivityModel     string
	AllowReverseSelection bool

	// PathWords and BonusWords are the topic's candidate pools, treated
	// as opaque pre-filtered input.
	PathWords  []string
	BonusWords []string
}

// Constructor orchestrates chain planning, placement solving,
// distractor filling, and puzzle assembly inside a bounded retry loop.
// A fresh working grid is created per attempt; nothing is shared across
// attempts.
type Constructor struct {
	rng *rand.Rand
}

// NewConstructor creates a Constructor driven by the given random
// source. Tests pin a seed for determinism; production seeds from time.
func NewConstructor(rng *rand.Rand) *Constructor {
	return &Constructor{rng: rng}
}

// Build generates one finished puzzle. On success the returned puzzle
// is frozen and ready for auditing. Exhausting the retry budget returns
// a ConstructionError that unwraps to types.ErrConstructionFailed;
// batch callers must log it and continue with their remaining work.
func (c *Constructor) Build(p Params) (*types.Puzzle, error) {
	cfg := types.PuzzleConfig{
		SelectionModel:        p.SelectionModel,
		ConnectivityModel:     p.ConnectivityModel,
		AllowReverseSelection: p.AllowReverseSelection,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if p.Width <= 0 || p.Height <= 0 {
		return nil, types.ErrGridSizeInvalid
	}

	var lastErr error
	for attempt := 0; attempt < types.ConstructionRetries; attempt++ {
		puzzle, err := c.attempt(p, cfg)
		if err == nil {
			return puzzle, nil
		}
		lastErr = err
	}
	return nil, &types.ConstructionError{Attempts: types.ConstructionRetries, Last: lastErr}
}

// attempt runs one full plan-solve-fill-assemble pass.
func (c *Constructor) attempt(p Params, cfg types.PuzzleConfig) (*types.Puzzle, error) {
	chain, err := PlanChain(p.PathWords, c.rng)
	if err != nil {
		return nil, err
	}

	g, err := grid.New(p.Width, p.Height, c.rng)
	if err != nil {
		return nil, err
	}

	placements, err := solveChain(g, cfg.SelectionModel, chain)
	if err != nil {
		return nil, err
	}

	pathCells := unionCells(placements)
	bonusWord, bonusCells, hintCell, err := placeBonus(g, p.BonusWords, pathCells, c.rng)
	if err != nil {
		return nil, err
	}

	g.FillDistractors()

	doc := g.Snapshot()
	first := placements[0]
	last := placements[len(placements)-1]
	doc.Start = types.Marker{AdjacentCellID: first[0]}
	doc.End = types.Marker{AdjacentCellID: last[len(last)-1]}

	puzzle := &types.Puzzle{
		PuzzleID: newID(),
		Theme:    p.Theme,
		Config:   cfg,
		Grid:     doc,
	}
	for i, w := range chain {
		puzzle.Words.Path = append(puzzle.Words.Path, types.WordDef{
			WordID:     newID(),
			Tokens:     types.TokensOf(w),
			Size:       len(w),
			Placements: [][]string{placements[i]},
		})
	}
	puzzle.Words.Additional = append(puzzle.Words.Additional, types.WordDef{
		WordID:     newID(),
		Tokens:     types.TokensOf(bonusWord),
		Size:       len(bonusWord),
		Placements: [][]string{bonusCells},
		HintCellID: hintCell,
	})
	return puzzle, nil
}

// unionCells flattens placements into a deduplicated cell-ID list,
// preserving first-seen order.
func unionCells(placements [][]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, cells := range placements {
		for _, id := range cells {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}

// newID generates a UUID v7 string.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
