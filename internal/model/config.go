package model

import "fmt"

// GameConfig holds the static rule parameters for a game
type GameConfig struct {
	Rows          int
	Cols          int
	ColorsCount   int  // Number of distinct ball colors in play
	MatchLength   int  // Balls needed in a line to match
	BallsPerTurn  int  // Balls spawned after a non-matching move
	InitialBalls  int  // Balls placed at game start
	ShowNextBalls bool // Whether a next-balls preview is generated
}

// DefaultConfig returns the standard 9x9 match-5 rules
func DefaultConfig() GameConfig {
	return GameConfig{
		Rows:          9,
		Cols:          9,
		ColorsCount:   7,
		MatchLength:   5,
		BallsPerTurn:  3,
		InitialBalls:  5,
		ShowNextBalls: true,
	}
}

// Validate checks the configuration, returning ErrInvalidConfig with a
// reason on the first violation found
func (c GameConfig) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if c.ColorsCount < 3 || c.ColorsCount > len(ValidColors()) {
		return fmt.Errorf("%w: colors count must be between 3 and %d, got %d", ErrInvalidConfig, len(ValidColors()), c.ColorsCount)
	}
	if c.MatchLength < 3 {
		return fmt.Errorf("%w: match length must be at least 3, got %d", ErrInvalidConfig, c.MatchLength)
	}
	if c.BallsPerTurn < 1 {
		return fmt.Errorf("%w: balls per turn must be at least 1, got %d", ErrInvalidConfig, c.BallsPerTurn)
	}
	return nil
}
