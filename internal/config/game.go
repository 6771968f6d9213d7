package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
	"github.com/lgbarn/alphabeta-chess/internal/errors"
)

// GameConfig holds settings for the position and the sides.
type GameConfig struct {
	// FEN is the starting position
	FEN string

	// WhiteAtBottom seats White at the bottom of the board
	WhiteAtBottom bool

	// Automated names the side the engine plays: "white", "black" or
	// "auto" for whichever side sits at the top
	Automated string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		FEN:           chess.InitialFEN,
		WhiteAtBottom: true,
		Automated:     "auto",
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if _, err := g.Position(); err != nil {
		return err
	}
	_, err := g.AutomatedColour()
	return err
}

// Position parses the starting position.
func (g *GameConfig) Position() (*chess.Position, error) {
	return chess.ParseFEN(g.FEN, g.WhiteAtBottom)
}

// AutomatedColour resolves Automated to a colour.
func (g *GameConfig) AutomatedColour() (chess.Colour, error) {
	switch strings.ToLower(g.Automated) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	case "", "auto":
		if g.WhiteAtBottom {
			return chess.Black, nil
		}
		return chess.White, nil
	}
	return chess.White, fmt.Errorf("automated side %q: %w", g.Automated, errors.ErrInvalidConfig)
}
