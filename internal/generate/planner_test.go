package generate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pathword/pkg/types"
)

var chainablePool = []string{
	"cat", "toad", "dart", "tiger", "rat", "dog", "goat", "newt", "tuna", "ant",
}

func TestPlanChainLinksWords(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	chain, err := PlanChain(chainablePool, rng)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(chain), types.MinChainWords)
	assert.LessOrEqual(t, len(chain), types.MaxChainWords)

	total := 0
	seen := map[string]bool{}
	for i, w := range chain {
		assert.False(t, seen[w], "word %q used twice", w)
		seen[w] = true
		total += len(w)
		if i > 0 {
			prev := chain[i-1]
			assert.Equal(t, prev[len(prev)-1], w[0],
				"%q does not start with the last letter of %q", w, prev)
		}
	}
	assert.LessOrEqual(t, total, types.HardChainTotal)
}

func TestPlanChainNormalizesPool(t *testing.T) {
	pool := []string{"  CAT ", "Toad", "ox", "elephants", "TIGER", "rat", "tuna", "ant"}
	rng := rand.New(rand.NewSource(3))

	chain, err := PlanChain(pool, rng)

	require.NoError(t, err)
	for _, w := range chain {
		assert.Equal(t, w, chainPool([]string{w})[0], "chain word %q not normalized", w)
		assert.GreaterOrEqual(t, len(w), types.MinWordLength)
		assert.LessOrEqual(t, len(w), types.MaxWordLength)
		assert.NotEqual(t, "ox", w)
		assert.NotEqual(t, "elephants", w)
	}
}

func TestPlanChainDeterministicPerSeed(t *testing.T) {
	a, err := PlanChain(chainablePool, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := PlanChain(chainablePool, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPlanChainNoChain(t *testing.T) {
	tests := []struct {
		name string
		pool []string
	}{
		{name: "pool too small", pool: []string{"cat", "tar"}},
		{name: "no linking letters", pool: []string{"cat", "dog", "pig", "hen"}},
		{name: "everything filtered out", pool: []string{"ox", "hippopotamus", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanChain(tt.pool, rand.New(rand.NewSource(1)))
			assert.ErrorIs(t, err, types.ErrNoChain)
		})
	}
}
