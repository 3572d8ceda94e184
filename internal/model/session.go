package model

import "time"

// SessionID uniquely identifies a simulation session
type SessionID string

// Session is one persisted simulation game. The seed and move log are
// sufficient to deterministically rebuild the engine on any storage
// backend; State is the materialized current state for cheap reads.
type Session struct {
	ID        SessionID
	Seed      int64
	Config    GameConfig
	Moves     []Move
	State     *GameState
	CreatedAt time.Time
	UpdatedAt time.Time
}
