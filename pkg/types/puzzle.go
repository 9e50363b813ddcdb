package types

// Selection models. Ray models constrain every placement to a straight
// line; the snake model allows free orthogonal walks.
const (
	SelectionRay4  = "ray_4"
	SelectionRay8  = "ray_8"
	SelectionSnake = "snake"
)

// Connectivity models.
const (
	ConnectivityOrtho4 = "ortho_4"
)

// validSelectionModels is the set of recognized selection model values.
var validSelectionModels = map[string]bool{
	SelectionRay4:  true,
	SelectionRay8:  true,
	SelectionSnake: true,
}

// validConnectivityModels is the set of recognized connectivity model values.
var validConnectivityModels = map[string]bool{
	ConnectivityOrtho4: true,
}

// IsRayModel reports whether the selection model belongs to the ray
// family, i.e. constrains placements to straight lines.
func IsRayModel(model string) bool {
	return model == SelectionRay4 || model == SelectionRay8
}

// PuzzleConfig records the rules a puzzle was built under. The run-time
// engine and the auditor both read it; neither ever writes it.
type PuzzleConfig struct {
	SelectionModel        string `json:"selectionModel"`
	ConnectivityModel     string `json:"connectivityModel"`
	AllowReverseSelection bool   `json:"allowReverseSelection"`
}

// Validate checks that the config names known models. It returns a
// sentinel error from this package on failure.
func (c PuzzleConfig) Validate() error {
	if !validSelectionModels[c.SelectionModel] {
		return ErrSelectionModelUnknown
	}
	if !validConnectivityModels[c.ConnectivityModel] {
		return ErrConnectivityModelUnknown
	}
	return nil
}

// Words groups a puzzle's word definitions. Path words must chain into
// a connected start-to-end route; Additional holds bonus words that
// intersect the path and reveal a hint letter.
type Words struct {
	Path       []WordDef `json:"path"`
	Additional []WordDef `json:"additional"`
}

// Puzzle is a finished, frozen puzzle document. A Puzzle is assembled
// only from a fully built grid; partially built grids never appear here.
type Puzzle struct {
	PuzzleID string       `json:"puzzleId"`
	Theme    string       `json:"theme"`
	Config   PuzzleConfig `json:"config"`
	Grid     Grid         `json:"grid"`
	Words    Words        `json:"words"`
}
