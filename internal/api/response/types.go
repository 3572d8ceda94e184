package response

import (
	"time"

	"github.com/linesgame/linesim/internal/model"
)

// Position represents a board cell in API responses
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionFromModel converts a model.Position
func PositionFromModel(p model.Position) Position {
	return Position{Row: p.Row, Col: p.Col}
}

// Move represents a move in API responses
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// MoveFromModel converts a model.Move
func MoveFromModel(m model.Move) Move {
	return Move{
		From: PositionFromModel(m.From),
		To:   PositionFromModel(m.To),
	}
}

// GameState represents a board state in API responses. Cells carry the
// color index, 0 meaning empty.
type GameState struct {
	Board     [][]int `json:"board"`
	NextBalls []int   `json:"next_balls"`
	Score     int     `json:"score"`
	MoveCount int     `json:"move_count"`
	GameOver  bool    `json:"game_over"`
}

// GameStateFromModel converts a model.GameState
func GameStateFromModel(s *model.GameState) GameState {
	board := make([][]int, s.Rows())
	for row := range board {
		board[row] = make([]int, s.Cols())
		for col := range board[row] {
			board[row][col] = int(s.Get(model.Position{Row: row, Col: col}))
		}
	}

	next := make([]int, len(s.NextBalls))
	for i, c := range s.NextBalls {
		next[i] = int(c)
	}

	return GameState{
		Board:     board,
		NextBalls: next,
		Score:     s.Score,
		MoveCount: s.MoveCount,
		GameOver:  s.GameOver,
	}
}

// GameConfig represents game rules in API responses
type GameConfig struct {
	Rows          int  `json:"rows"`
	Cols          int  `json:"cols"`
	ColorsCount   int  `json:"colors_count"`
	MatchLength   int  `json:"match_length"`
	BallsPerTurn  int  `json:"balls_per_turn"`
	InitialBalls  int  `json:"initial_balls"`
	ShowNextBalls bool `json:"show_next_balls"`
}

// GameConfigFromModel converts a model.GameConfig
func GameConfigFromModel(c model.GameConfig) GameConfig {
	return GameConfig{
		Rows:          c.Rows,
		Cols:          c.Cols,
		ColorsCount:   c.ColorsCount,
		MatchLength:   c.MatchLength,
		BallsPerTurn:  c.BallsPerTurn,
		InitialBalls:  c.InitialBalls,
		ShowNextBalls: c.ShowNextBalls,
	}
}

// Session represents a session in API responses
type Session struct {
	ID        string     `json:"id"`
	Seed      int64      `json:"seed"`
	Config    GameConfig `json:"config"`
	MoveCount int        `json:"move_count"`
	State     GameState  `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SessionFromModel converts a model.Session
func SessionFromModel(s *model.Session) Session {
	return Session{
		ID:        string(s.ID),
		Seed:      s.Seed,
		Config:    GameConfigFromModel(s.Config),
		MoveCount: len(s.Moves),
		State:     GameStateFromModel(s.State),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// SessionList is the response for listing sessions
type SessionList struct {
	Sessions []string `json:"sessions"`
}

// SpawnedBall represents a ball added by the spawn phase
type SpawnedBall struct {
	Pos   Position `json:"pos"`
	Color int      `json:"color"`
}

// MoveResult is the response for executing a move
type MoveResult struct {
	State         GameState     `json:"state"`
	BallsRemoved  []Position    `json:"balls_removed"`
	PointsEarned  int           `json:"points_earned"`
	NewBallsAdded []SpawnedBall `json:"new_balls_added"`
	Path          []Position    `json:"path"`
}

// MoveResultFromModel converts a model.MoveResult
func MoveResultFromModel(r *model.MoveResult) MoveResult {
	removed := make([]Position, len(r.BallsRemoved))
	for i, p := range r.BallsRemoved {
		removed[i] = PositionFromModel(p)
	}

	added := make([]SpawnedBall, len(r.NewBallsAdded))
	for i, b := range r.NewBallsAdded {
		added[i] = SpawnedBall{Pos: PositionFromModel(b.Pos), Color: int(b.Color)}
	}

	path := make([]Position, len(r.Path))
	for i, p := range r.Path {
		path[i] = PositionFromModel(p)
	}

	return MoveResult{
		State:         GameStateFromModel(r.NewState),
		BallsRemoved:  removed,
		PointsEarned:  r.PointsEarned,
		NewBallsAdded: added,
		Path:          path,
	}
}

// ValidMoves is the response for listing valid moves
type ValidMoves struct {
	Moves []Move `json:"moves"`
	Count int    `json:"count"`
}

// ValidMovesFromModel converts a move list
func ValidMovesFromModel(moves []model.Move) ValidMoves {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[i] = MoveFromModel(m)
	}
	return ValidMoves{Moves: out, Count: len(out)}
}

// BotMove is the response for a single bot move
type BotMove struct {
	Strategy string     `json:"strategy"`
	Move     Move       `json:"move"`
	Result   MoveResult `json:"result"`
}

// BotPlayout is the response for a bot playout
type BotPlayout struct {
	Strategy    string `json:"strategy"`
	MovesPlayed int    `json:"moves_played"`
	FinalScore  int    `json:"final_score"`
	GameOver    bool   `json:"game_over"`
}

// Strategies is the response for listing bot strategies
type Strategies struct {
	Strategies []string `json:"strategies"`
}
