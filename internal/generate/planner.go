// Package generate builds finished puzzles: chain planning, backtracking
// placement, bonus-word placement, and final assembly, all under
// bounded retry budgets. Generation is best-effort; a failed request
// surfaces as a recoverable error, never a hang or a crash.
package generate

import (
	"math/rand"
	"strings"

	"github.com/mesh-intelligence/pathword/pkg/types"
)

// PlanChain picks an ordered sequence of path words in which each
// word's last letter equals the next word's first letter. Candidate
// order is randomized; the search retries up to types.ChainRetries
// times before reporting types.ErrNoChain.
func PlanChain(pool []string, rng *rand.Rand) ([]string, error) {
	words := chainPool(pool)
	if len(words) < types.MinChainWords {
		return nil, types.ErrNoChain
	}
	for attempt := 0; attempt < types.ChainRetries; attempt++ {
		if chain := tryChain(words, rng); chain != nil {
			return chain, nil
		}
	}
	return nil, types.ErrNoChain
}

// chainPool normalizes candidate words and drops those outside the
// per-word length bounds.
func chainPool(pool []string) []string {
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) < types.MinWordLength || len(w) > types.MaxWordLength {
			continue
		}
		out = append(out, w)
	}
	return out
}

// tryChain makes one randomized attempt at a chain. The summed letter
// count is softly targeted at types.SoftChainTotal; only the word that
// completes the minimum chain length may overshoot it, and the hard cap
// is never exceeded. Returns nil when the attempt dead-ends short of
// the minimum.
func tryChain(words []string, rng *rand.Rand) []string {
	size := types.MinChainWords + rng.Intn(types.MaxChainWords-types.MinChainWords+1)

	first := words[rng.Intn(len(words))]
	chain := []string{first}
	used := map[string]bool{first: true}
	total := len(first)

	for len(chain) < size {
		last := chain[len(chain)-1]
		link := last[len(last)-1]

		var soft, overshoot []string
		for _, w := range words {
			if used[w] || w[0] != link {
				continue
			}
			switch {
			case total+len(w) <= types.SoftChainTotal:
				soft = append(soft, w)
			case total+len(w) <= types.HardChainTotal && len(chain)+1 == types.MinChainWords:
				overshoot = append(overshoot, w)
			}
		}

		candidates := soft
		if len(candidates) == 0 {
			candidates = overshoot
		}
		if len(candidates) == 0 {
			if len(chain) >= types.MinChainWords {
				return chain
			}
			return nil
		}

		next := candidates[rng.Intn(len(candidates))]
		chain = append(chain, next)
		used[next] = true
		total += len(next)
	}
	return chain
}
