package types

// Marker anchors the route start or end to a grid cell.
type Marker struct {
	AdjacentCellID string `json:"adjacentCellId"`
}

// Grid is a finished, frozen letter grid. Width and Height bound the
// coordinate space; Cells lists every cell the grid contains.
type Grid struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cells  []Cell `json:"cells"`
	Start  Marker `json:"start"`
	End    Marker `json:"end"`
}

// Index returns a lookup map from cell ID to cell. The map references
// the Grid's own cells; callers must not mutate them.
func (g *Grid) Index() map[string]*Cell {
	idx := make(map[string]*Cell, len(g.Cells))
	for i := range g.Cells {
		idx[g.Cells[i].ID] = &g.Cells[i]
	}
	return idx
}

// InBounds reports whether the coordinate lies inside the grid rectangle.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}
