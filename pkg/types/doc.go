// Package types defines the puzzle document model, puzzle configuration,
// search bounds, and standard error types for the pathword system.
//
// The types in this package describe finished puzzles only. The mutable
// working grid used during construction lives in internal/grid and is
// never exposed to consumers of a Puzzle.
package types
