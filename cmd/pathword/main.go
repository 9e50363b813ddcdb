// Command pathword generates and validates grid-based word puzzles.
package main

import "github.com/mesh-intelligence/pathword/internal/cli"

func main() {
	cli.Execute()
}
