package request

// CreateSessionRequest is the request body for creating a session.
// Zero-valued fields fall back to the server defaults; a zero seed
// means the server picks one.
type CreateSessionRequest struct {
	Rows          int   `json:"rows,omitempty"`
	Cols          int   `json:"cols,omitempty"`
	ColorsCount   int   `json:"colors_count,omitempty"`
	MatchLength   int   `json:"match_length,omitempty"`
	BallsPerTurn  int   `json:"balls_per_turn,omitempty"`
	InitialBalls  int   `json:"initial_balls,omitempty"`
	HideNextBalls bool  `json:"hide_next_balls,omitempty"`
	Seed          int64 `json:"seed,omitempty"`
}

// MoveRequest is the request body for executing a move
type MoveRequest struct {
	FromRow int `json:"from_row"`
	FromCol int `json:"from_col"`
	ToRow   int `json:"to_row"`
	ToCol   int `json:"to_col"`
}

// BotMoveRequest is the request body for a single bot move
type BotMoveRequest struct {
	Strategy string `json:"strategy"`
}

// BotPlayoutRequest is the request body for a bot playout
type BotPlayoutRequest struct {
	Strategy string `json:"strategy"`
	MaxMoves int    `json:"max_moves,omitempty"`
}
