package model

import "strings"

// GameState is the complete state of a game at a point in time.
// The grid is row-major: Board[row][col].
type GameState struct {
	Board     [][]BallColor
	NextBalls []BallColor
	Score     int
	MoveCount int
	GameOver  bool
}

// NewEmptyState creates a state with all cells empty, score 0, move count 0
func NewEmptyState(rows, cols int) *GameState {
	board := make([][]BallColor, rows)
	for i := range board {
		board[i] = make([]BallColor, cols)
	}
	return &GameState{Board: board}
}

// Rows returns the number of board rows
func (s *GameState) Rows() int {
	return len(s.Board)
}

// Cols returns the number of board columns
func (s *GameState) Cols() int {
	if len(s.Board) == 0 {
		return 0
	}
	return len(s.Board[0])
}

// Get returns the ball color at the given position.
// Bounds checking is the caller's responsibility.
func (s *GameState) Get(pos Position) BallColor {
	return s.Board[pos.Row][pos.Col]
}

// Set places a ball color at the given position
func (s *GameState) Set(pos Position, color BallColor) {
	s.Board[pos.Row][pos.Col] = color
}

// IsEmpty returns true if the cell at the given position holds no ball
func (s *GameState) IsEmpty(pos Position) bool {
	return s.Get(pos).IsEmpty()
}

// IsValidPosition returns true if the position is within board bounds
func (s *GameState) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < s.Rows() && pos.Col >= 0 && pos.Col < s.Cols()
}

// EmptyPositions returns all empty positions in row-major scan order
func (s *GameState) EmptyPositions() []Position {
	var positions []Position
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			if s.Board[row][col].IsEmpty() {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// OccupiedPositions returns all positions holding a ball in row-major scan order
func (s *GameState) OccupiedPositions() []Position {
	var positions []Position
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			if !s.Board[row][col].IsEmpty() {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// EmptyCount returns the number of empty cells
func (s *GameState) EmptyCount() int {
	count := 0
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			if s.Board[row][col].IsEmpty() {
				count++
			}
		}
	}
	return count
}

// OccupiedCount returns the number of cells holding a ball
func (s *GameState) OccupiedCount() int {
	return s.Rows()*s.Cols() - s.EmptyCount()
}

// Clone returns a fully independent deep copy of the state.
// Mutating the clone never affects the original and vice versa.
func (s *GameState) Clone() *GameState {
	board := make([][]BallColor, len(s.Board))
	for i := range s.Board {
		board[i] = make([]BallColor, len(s.Board[i]))
		copy(board[i], s.Board[i])
	}
	next := make([]BallColor, len(s.NextBalls))
	copy(next, s.NextBalls)
	return &GameState{
		Board:     board,
		NextBalls: next,
		Score:     s.Score,
		MoveCount: s.MoveCount,
		GameOver:  s.GameOver,
	}
}

// FeatureVector returns a one-hot encoding of the board over the full
// palette, flattened row-major as rows x cols x PaletteSize. Intended for
// ML consumers; rules correctness does not depend on it.
func (s *GameState) FeatureVector() []float64 {
	features := make([]float64, s.Rows()*s.Cols()*PaletteSize)
	idx := 0
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			features[idx+int(s.Board[row][col])] = 1.0
			idx += PaletteSize
		}
	}
	return features
}

// String renders the board as a symbol grid for debugging
func (s *GameState) String() string {
	var b strings.Builder
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(s.Board[row][col].Symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
