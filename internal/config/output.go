package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Colour renders the board with terminal colours
	Colour bool

	// ShowBoard prints the board after each move
	ShowBoard bool

	// ShowCandidates lists every root move with its score
	ShowCandidates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Colour:    true,
		ShowBoard: true,
	}
}
