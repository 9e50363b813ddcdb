package types

// Chain bounds. A puzzle's path words chain last-letter to first-letter
// under these limits. The hard total may be exceeded by the final word
// of a chain only when that word is needed to reach MinChainWords.
const (
	MinWordLength = 3
	MaxWordLength = 7

	MinChainWords = 3
	MaxChainWords = 4

	// SoftChainTotal is the preferred upper bound on the summed letter
	// count of a chain; HardChainTotal is the absolute cap.
	SoftChainTotal = 18
	HardChainTotal = 25
)

// Retry and branching budgets. These are the only safeguards against
// runaway search: exhausting them surfaces as a recoverable error to
// the caller, never a hang.
const (
	// ChainRetries bounds randomized chain planning attempts.
	ChainRetries = 100

	// ConstructionRetries bounds full plan-solve-fill attempts per
	// generation request.
	ConstructionRetries = 50

	// SnakeSubtreeCap stops a snake search from collecting more than
	// this many placements under one first-step branch.
	SnakeSubtreeCap = 32

	// SnakeTotalCap stops a snake search outright once this many
	// placements have been collected.
	SnakeTotalCap = 256
)
