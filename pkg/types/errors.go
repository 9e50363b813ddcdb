package types

import (
	"errors"
	"fmt"
)

// Search and construction errors. ErrSearchExhausted and ErrNoChain are
// always recoverable via backtracking or an outer retry;
// ErrConstructionFailed is fatal for a single generation request only,
// and batch callers must log it and continue.
var (
	ErrSearchExhausted    = errors.New("placement search exhausted")
	ErrNoChain            = errors.New("no word chain found")
	ErrConstructionFailed = errors.New("puzzle construction failed")
)

// Config validation errors.
var (
	ErrSelectionModelUnknown    = errors.New("unknown selection model")
	ErrConnectivityModelUnknown = errors.New("unknown connectivity model")
	ErrGridSizeInvalid          = errors.New("grid dimensions must be positive")
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrPuzzleNotFound  = errors.New("puzzle not found")
	ErrReportNotFound  = errors.New("report not found")
)

// Word source errors.
var (
	ErrTopicNotFound = errors.New("topic not found")
)

// ConstructionError reports an exhausted construction retry budget.
// It unwraps to ErrConstructionFailed so callers can assert with
// errors.Is; Last preserves the failure of the final attempt.
type ConstructionError struct {
	Attempts int
	Last     error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("puzzle construction failed after %d attempts: %s", e.Attempts, e.Last)
}

func (e *ConstructionError) Unwrap() error {
	return ErrConstructionFailed
}
