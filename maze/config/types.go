package config

// Position represents an x,y cell coordinate in the maze grid, 0-indexed
// from the top-left corner.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

const (
	// Validation constants
	MaxDimension = 1000

	// DefaultAlgorithm is used when the config file does not name a
	// generation algorithm.
	DefaultAlgorithm = "recursive_backtracking"
)

// MazeConfig represents a validated maze generation configuration.
// Instances are only produced by Load and are not modified afterwards.
type MazeConfig struct {
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Entry      Position `json:"entry"`
	Exit       Position `json:"exit"`
	OutputFile string   `json:"output_file"`
	Algorithm  string   `json:"algorithm"`
}
