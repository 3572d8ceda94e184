package model

import "errors"

// Common errors used across the application
var (
	// Configuration errors
	ErrInvalidConfig = errors.New("invalid game configuration")

	// Move errors
	ErrInvalidPosition     = errors.New("position out of board bounds")
	ErrSourceEmpty         = errors.New("no ball at source position")
	ErrDestinationOccupied = errors.New("destination position is occupied")
	ErrNoPath              = errors.New("no clear path to destination")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrGameOver        = errors.New("game is over")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")
	ErrNoValidMoves    = errors.New("no valid moves available")
)
