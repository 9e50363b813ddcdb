package types

// Cell types. A void cell is a hole in the grid that no placement may
// touch; a letter cell carries at most one letter value.
const (
	CellTypeLetter = "letter"
	CellTypeVoid   = "void"
)

// Cell is a single grid position. Cells are owned exclusively by their
// Grid; placements reference them by ID only.
type Cell struct {
	ID    string `json:"id"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

// IsVoid reports whether the cell is a hole that placements must avoid.
func (c Cell) IsVoid() bool {
	return c.Type == CellTypeVoid
}
