package model

// SpawnedBall records a ball placed on the board by the spawn step
type SpawnedBall struct {
	Pos   Position
	Color BallColor
}

// MoveResult is the outcome of executing a move.
// On failure NewState is nil, Err carries the reason and the engine's
// state is left untouched.
type MoveResult struct {
	Success       bool
	NewState      *GameState
	BallsRemoved  []Position
	PointsEarned  int
	NewBallsAdded []SpawnedBall
	Path          []Position
	Err           error
}

// IsValid returns true for a successful result carrying a state
func (r MoveResult) IsValid() bool {
	return r.Success && r.NewState != nil
}
