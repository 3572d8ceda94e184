package engine

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/linesgame/linesim/internal/dependencies/mocks"
	"github.com/linesgame/linesim/internal/dependencies/random"
	"github.com/linesgame/linesim/internal/model"
	"github.com/linesgame/linesim/internal/testutil"
)

type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) newEngine(seed int64) *Engine {
	eng, err := New(model.DefaultConfig(), random.New(seed), testutil.NopLogger())
	s.Require().NoError(err)
	return eng
}

// setState installs a hand-built state as the engine's current state
func (s *EngineSuite) setState(eng *Engine, state *model.GameState) {
	eng.current = state
}

func (s *EngineSuite) TestNewRejectsInvalidConfig() {
	cfg := model.DefaultConfig()
	cfg.MatchLength = 2

	_, err := New(cfg, random.New(1), testutil.NopLogger())
	s.ErrorIs(err, model.ErrInvalidConfig)
}

func (s *EngineSuite) TestResetSpawnsInitialBalls() {
	eng := s.newEngine(42)
	state := eng.Reset()

	s.Equal(5, state.OccupiedCount())
	s.Len(state.NextBalls, 3)
	s.Equal(0, state.Score)
	s.Equal(0, state.MoveCount)
	s.False(state.GameOver)

	for _, next := range state.NextBalls {
		s.False(next.IsEmpty())
	}
}

func (s *EngineSuite) TestResetWithoutPreview() {
	cfg := model.DefaultConfig()
	cfg.ShowNextBalls = false
	eng, err := New(cfg, random.New(42), testutil.NopLogger())
	s.Require().NoError(err)

	state := eng.Reset()
	s.Empty(state.NextBalls)
}

func (s *EngineSuite) TestResetIsDeterministic() {
	a := s.newEngine(7).Reset()
	b := s.newEngine(7).Reset()

	s.Equal(a, b)
}

func (s *EngineSuite) TestDifferentSeedsDiverge() {
	a := s.newEngine(1).Reset()
	b := s.newEngine(2).Reset()

	s.NotEqual(a, b)
}

func (s *EngineSuite) TestMoveSequenceIsDeterministic() {
	a := s.newEngine(99)
	b := s.newEngine(99)
	a.Reset()
	b.Reset()

	for i := 0; i < 5; i++ {
		moves := a.ValidMoves(nil)
		s.Require().NotEmpty(moves)
		move := moves[0]

		resA := a.ExecuteMove(move)
		resB := b.ExecuteMove(move)
		s.Require().True(resA.Success)
		s.Require().True(resB.Success)

		s.Equal(resA.NewState, resB.NewState)
		s.Equal(resA.BallsRemoved, resB.BallsRemoved)
		s.Equal(resA.PointsEarned, resB.PointsEarned)
		s.Equal(resA.NewBallsAdded, resB.NewBallsAdded)
		s.Equal(resA.Path, resB.Path)
	}
}

func (s *EngineSuite) TestStateReturnsClone() {
	eng := s.newEngine(42)
	eng.Reset()

	a := eng.State()
	a.Set(model.Position{Row: 0, Col: 0}, model.Cyan)
	a.Score = 999

	b := eng.State()
	s.NotEqual(999, b.Score)
}

func (s *EngineSuite) TestValidMovesRoundTrip() {
	eng := s.newEngine(13)
	eng.Reset()

	moves := eng.ValidMoves(nil)
	s.Require().NotEmpty(moves)

	for _, move := range moves {
		replica := s.newEngine(13)
		replica.Reset()

		res := replica.ExecuteMove(move)
		s.Require().True(res.Success, "move %s reported valid but failed: %v", move, res.Err)
	}
}

func (s *EngineSuite) TestExecuteMoveRejectsOutOfBounds() {
	eng := s.newEngine(42)
	before := eng.Reset()

	res := eng.ExecuteMove(model.Move{
		From: model.Position{Row: -1, Col: 0},
		To:   model.Position{Row: 0, Col: 0},
	})
	s.False(res.Success)
	s.ErrorIs(res.Err, model.ErrInvalidPosition)
	s.Nil(res.NewState)
	s.Equal(before, eng.State())
}

func (s *EngineSuite) TestExecuteMoveRejectsEmptySource() {
	eng := s.newEngine(42)
	state := model.NewEmptyState(9, 9)
	state.Set(model.Position{Row: 0, Col: 0}, model.Red)
	s.setState(eng, state)

	res := eng.ExecuteMove(model.Move{
		From: model.Position{Row: 5, Col: 5},
		To:   model.Position{Row: 6, Col: 6},
	})
	s.False(res.Success)
	s.ErrorIs(res.Err, model.ErrSourceEmpty)
}

func (s *EngineSuite) TestExecuteMoveRejectsOccupiedDestination() {
	eng := s.newEngine(42)
	state := model.NewEmptyState(9, 9)
	state.Set(model.Position{Row: 0, Col: 0}, model.Red)
	state.Set(model.Position{Row: 0, Col: 1}, model.Blue)
	s.setState(eng, state)

	res := eng.ExecuteMove(model.Move{
		From: model.Position{Row: 0, Col: 0},
		To:   model.Position{Row: 0, Col: 1},
	})
	s.False(res.Success)
	s.ErrorIs(res.Err, model.ErrDestinationOccupied)
}

func (s *EngineSuite) TestExecuteMoveRejectsBlockedPath() {
	eng := s.newEngine(42)
	state := model.NewEmptyState(9, 9)
	// Wall down column 1 isolates (0,0) from the rest of the board
	state.Set(model.Position{Row: 0, Col: 0}, model.Red)
	for row := 0; row < 9; row++ {
		state.Set(model.Position{Row: row, Col: 1}, model.Blue)
	}
	s.setState(eng, state)

	res := eng.ExecuteMove(model.Move{
		From: model.Position{Row: 0, Col: 0},
		To:   model.Position{Row: 0, Col: 2},
	})
	s.False(res.Success)
	s.ErrorIs(res.Err, model.ErrNoPath)
}

// The worked example: RED at (4,0)-(4,3), RED at (3,4), move (3,4)->(4,4)
// completes a horizontal line of 5 worth 10 points.
func (s *EngineSuite) TestMoveCompletingLineScores() {
	eng := s.newEngine(42)
	state := model.NewEmptyState(9, 9)
	for col := 0; col < 4; col++ {
		state.Set(model.Position{Row: 4, Col: col}, model.Red)
	}
	state.Set(model.Position{Row: 3, Col: 4}, model.Red)
	s.setState(eng, state)

	res := eng.ExecuteMove(model.Move{
		From: model.Position{Row: 3, Col: 4},
		To:   model.Position{Row: 4, Col: 4},
	})
	s.Require().True(res.Success)

	s.Len(res.BallsRemoved, 5)
	s.Equal(10, res.PointsEarned)
	s.Equal(10, res.NewState.Score)
	s.Equal(1, res.NewState.MoveCount)
	// The matched line is gone and nothing spawned
	s.Equal(0, res.NewState.OccupiedCount())
	s.Empty(res.NewBallsAdded)
}

func (s *EngineSuite) TestMatchLengthBoundary() {
	// Four in a row plus the moved ball makes exactly five: always a match.
	// Three plus the moved ball makes four: never a match.
	for _, tc := range []struct {
		preplaced int
		matches   bool
	}{
		{3, false},
		{4, true},
	} {
		eng := s.newEngine(42)
		state := model.NewEmptyState(9, 9)
		for col := 0; col < tc.preplaced; col++ {
			state.Set(model.Position{Row: 0, Col: col}, model.Green)
		}
		state.Set(model.Position{Row: 8, Col: 8}, model.Green)
		state.NextBalls = nil
		s.setState(eng, state)

		res := eng.ExecuteMove(model.Move{
			From: model.Position{Row: 8, Col: 8},
			To:   model.Position{Row: 0, Col: tc.preplaced},
		})
		s.Require().True(res.Success)

		if tc.matches {
			s.Len(res.BallsRemoved, tc.preplaced+1)
			s.Equal(2*(tc.preplaced+1), res.PointsEarned)
		} else {
			s.Empty(res.BallsRemoved)
			s.Equal(0, res.PointsEarned)
		}
	}
}

func (s *EngineSuite) TestLineOfSixScoresTwelve() {
	eng := s.newEngine(42)
	state := model.NewEmptyState(9, 9)
	// Five in a row with a gap at (0,2); filling the gap makes six
	for _, col := range []int{0, 1, 3, 4, 5} {
		state.Set(model.Position{Row: 0, Col: col}, model.Blue)
	}
	state.Set(model.Position{Row: 8, Col: 8}, model.Blue)
	s.setState(eng, state)

	res := eng.ExecuteMove(model.Move{
		From: model.Position{Row: 8, Col: 8},
		To:   model.Position{Row: 0, Col: 2},
	})
	s.Require().True(res.Success)

	s.Len(res.BallsRemoved, 6)
	s.Equal(12, res.PointsEarned)
}

// A cross of two qualifying axes scores on the union of removed cells,
// never the per-axis sum.
func (s *EngineSuite) TestCrossPatternScoresUnion() {
	eng := s.newEngine(42)
	state := model.NewEmptyState(9, 9)
	for _, col := range []int{0, 1, 3, 4} {
		state.Set(model.Position{Row: 2, Col: col}, model.Magenta)
	}
	for _, row := range []int{0, 1, 3, 4} {
		state.Set(model.Position{Row: row, Col: 2}, model.Magenta)
	}
	state.Set(model.Position{Row: 8, Col: 8}, model.Magenta)
	s.setState(eng, state)

	res := eng.ExecuteMove(model.Move{
		From: model.Position{Row: 8, Col: 8},
		To:   model.Position{Row: 2, Col: 2},
	})
	s.Require().True(res.Success)

	// 5 horizontal + 5 vertical sharing the center cell
	s.Len(res.BallsRemoved, 9)
	s.Equal(18, res.PointsEarned)
}

func (s *EngineSuite) TestDiagonalMatch() {
	eng := s.newEngine(42)
	state := model.NewEmptyState(9, 9)
	for i := 0; i < 4; i++ {
		state.Set(model.Position{Row: i, Col: i}, model.Yellow)
	}
	state.Set(model.Position{Row: 8, Col: 0}, model.Yellow)
	state.NextBalls = nil
	s.setState(eng, state)

	res := eng.ExecuteMove(model.Move{
		From: model.Position{Row: 8, Col: 0},
		To:   model.Position{Row: 4, Col: 4},
	})
	s.Require().True(res.Success)

	s.Len(res.BallsRemoved, 5)
	s.Equal(10, res.PointsEarned)
}

func (s *EngineSuite) TestNonMatchingMoveSpawnsPreview() {
	eng := s.newEngine(42)
	state := model.NewEmptyState(9, 9)
	state.Set(model.Position{Row: 0, Col: 0}, model.Red)
	state.NextBalls = []model.BallColor{model.Green, model.Blue, model.Cyan}
	s.setState(eng, state)

	res := eng.ExecuteMove(model.Move{
		From: model.Position{Row: 0, Col: 0},
		To:   model.Position{Row: 8, Col: 8},
	})
	s.Require().True(res.Success)

	s.Empty(res.BallsRemoved)
	s.Equal(0, res.PointsEarned)
	s.Len(res.NewBallsAdded, 3)
	s.Equal(4, res.NewState.OccupiedCount())

	// Spawned colors come from the preview, in order
	s.Equal(model.Green, res.NewBallsAdded[0].Color)
	s.Equal(model.Blue, res.NewBallsAdded[1].Color)
	s.Equal(model.Cyan, res.NewBallsAdded[2].Color)

	// Spawned positions are distinct
	seen := make(map[model.Position]bool)
	for _, ball := range res.NewBallsAdded {
		s.False(seen[ball.Pos])
		seen[ball.Pos] = true
	}
}

func (s *EngineSuite) TestSpawnCappedByEmptyCells() {
	eng := s.newEngine(42)
	state := model.NewEmptyState(9, 9)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			// This fill never runs two equal colors in a row on any axis
			state.Set(model.Position{Row: row, Col: col}, model.BallColor(1+(2*row+col)%4))
		}
	}
	// Exactly two empty cells after the move frees the source
	state.Set(model.Position{Row: 0, Col: 0}, model.Empty)
	state.Set(model.Position{Row: 0, Col: 1}, model.Empty)
	state.NextBalls = []model.BallColor{model.Red, model.Green, model.Blue}
	s.setState(eng, state)

	res := eng.ExecuteMove(model.Move{
		From: model.Position{Row: 1, Col: 0},
		To:   model.Position{Row: 0, Col: 0},
	})
	s.Require().True(res.Success)

	s.Len(res.NewBallsAdded, 2)
}

// Spawned balls that complete a line remove it without awarding points
func (s *EngineSuite) TestAutoMatchEarnsNoPoints() {
	cfg := model.DefaultConfig()
	rnd := mocks.NewMockRandom()
	eng, err := New(cfg, rnd, testutil.NopLogger())
	s.Require().NoError(err)

	state := model.NewEmptyState(9, 9)
	for col := 0; col < 4; col++ {
		state.Set(model.Position{Row: 0, Col: col}, model.Red)
	}
	state.Set(model.Position{Row: 8, Col: 8}, model.Blue)
	state.NextBalls = []model.BallColor{model.Red, model.Green, model.Green}
	state.Score = 4
	eng.current = state

	// After moving (8,8)->(8,7) the first empty cell in scan order is
	// (0,4); the identity permutation from the mock places the previewed
	// Red there, completing a line of five.
	res := eng.ExecuteMove(model.Move{
		From: model.Position{Row: 8, Col: 8},
		To:   model.Position{Row: 8, Col: 7},
	})
	s.Require().True(res.Success)

	s.Equal(0, res.PointsEarned)
	s.Len(res.BallsRemoved, 5)
	s.Equal(4, res.NewState.Score)
	for _, pos := range res.BallsRemoved {
		s.True(res.NewState.IsEmpty(pos))
	}
}

// With previews disabled nothing spawns, so a non-matching move conserves
// the ball count exactly
func (s *EngineSuite) TestConservationWithoutSpawning() {
	cfg := model.DefaultConfig()
	cfg.ShowNextBalls = false
	eng, err := New(cfg, random.New(42), testutil.NopLogger())
	s.Require().NoError(err)

	state := eng.Reset()
	before := state.OccupiedCount()

	moves := eng.ValidMoves(nil)
	s.Require().NotEmpty(moves)
	res := eng.ExecuteMove(moves[0])
	s.Require().True(res.Success)

	s.Equal(before, res.NewState.OccupiedCount())
}

func (s *EngineSuite) TestGameOverOnFullBoard() {
	eng := s.newEngine(42)
	state := model.NewEmptyState(9, 9)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			state.Set(model.Position{Row: row, Col: col}, model.BallColor(1+(2*row+col)%4))
		}
	}
	s.True(eng.IsGameOver(state))
}

func (s *EngineSuite) TestNotGameOverWithReachableEmptyCell() {
	eng := s.newEngine(42)
	state := model.NewEmptyState(9, 9)
	state.Set(model.Position{Row: 4, Col: 4}, model.Red)
	s.False(eng.IsGameOver(state))
}

func (s *EngineSuite) TestGameOverWhenEmptyCellsUnreachable() {
	eng := s.newEngine(42)
	state := model.NewEmptyState(3, 3)
	// Fill everything except the center; no occupied cell can move
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			state.Set(model.Position{Row: row, Col: col}, model.BallColor(1+(row+col)%2))
		}
	}
	state.Set(model.Position{Row: 1, Col: 1}, model.Empty)

	// The center is reachable from its neighbors, so not game over
	s.False(eng.IsGameOver(state))
}

func (s *EngineSuite) TestValidMovesExhaustive() {
	eng := s.newEngine(42)
	state := model.NewEmptyState(3, 3)
	state.Set(model.Position{Row: 0, Col: 0}, model.Red)

	moves := eng.ValidMoves(state)
	// One ball, eight empty reachable cells
	s.Len(moves, 8)
	for _, move := range moves {
		s.Equal(model.Position{Row: 0, Col: 0}, move.From)
	}
}
