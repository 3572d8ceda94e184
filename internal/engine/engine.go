package engine

import (
	"log/slog"

	"github.com/linesgame/linesim/internal/dependencies/random"
	"github.com/linesgame/linesim/internal/model"
)

// PointsPerBall is the score awarded per removed ball on a player match
const PointsPerBall = 2

// Engine is the authoritative rules implementation for one game. It owns
// the current state and a seeded random stream; callers must serialize
// ExecuteMove/Reset per instance.
type Engine struct {
	cfg     model.GameConfig
	random  random.Random
	logger  *slog.Logger
	current *model.GameState
}

// New creates an engine for the given configuration. Invalid
// configurations are rejected before any simulation begins.
func New(cfg model.GameConfig, rnd random.Random, logger *slog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:    cfg,
		random: rnd,
		logger: logger.With(slog.String("component", "engine")),
	}, nil
}

// Config returns the engine's game configuration
func (e *Engine) Config() model.GameConfig {
	return e.cfg
}

// Reset starts a fresh game: empty board, initial random balls, first
// next-balls preview. Returns a clone of the new current state.
func (e *Engine) Reset() *model.GameState {
	state := model.NewEmptyState(e.cfg.Rows, e.cfg.Cols)
	e.addRandomBalls(state, e.cfg.InitialBalls)
	state.NextBalls = e.generateNextBalls()
	e.current = state

	e.logger.Debug("game reset",
		slog.Int("initial_balls", state.OccupiedCount()),
		slog.Int("next_balls", len(state.NextBalls)),
	)
	return state.Clone()
}

// State returns a clone of the current state, resetting first if no game
// has been started
func (e *Engine) State() *model.GameState {
	if e.current == nil {
		return e.Reset()
	}
	return e.current.Clone()
}

// ValidMoves enumerates every (source, destination) pair for which a path
// exists, by pathfinding from each occupied cell to each empty cell.
// A nil state means the engine's current state.
func (e *Engine) ValidMoves(state *model.GameState) []model.Move {
	if state == nil {
		if e.current == nil {
			e.Reset()
		}
		state = e.current
	}

	var moves []model.Move
	occupied := state.OccupiedPositions()
	empty := state.EmptyPositions()
	for _, from := range occupied {
		for _, to := range empty {
			if found, _ := FindPath(state, from, to); found {
				moves = append(moves, model.Move{From: from, To: to})
			}
		}
	}
	return moves
}

// IsGameOver reports whether no valid moves exist. A nil state means the
// engine's current state; passing an explicit state supports what-if
// evaluation without touching turn sequencing.
func (e *Engine) IsGameOver(state *model.GameState) bool {
	return len(e.ValidMoves(state)) == 0
}

// ExecuteMove validates and applies a move against the current state.
// On any validation or pathfinding failure the state is left untouched
// and the result carries the specific error.
func (e *Engine) ExecuteMove(move model.Move) model.MoveResult {
	if e.current == nil {
		e.Reset()
	}
	state := e.current

	if !state.IsValidPosition(move.From) || !state.IsValidPosition(move.To) {
		return model.MoveResult{Err: model.ErrInvalidPosition}
	}
	if state.IsEmpty(move.From) {
		return model.MoveResult{Err: model.ErrSourceEmpty}
	}
	if !state.IsEmpty(move.To) {
		return model.MoveResult{Err: model.ErrDestinationOccupied}
	}

	found, path := FindPath(state, move.From, move.To)
	if !found {
		return model.MoveResult{Err: model.ErrNoPath}
	}

	// All mutation happens on a clone; the current state is only replaced
	// once the full turn has been computed.
	next := state.Clone()
	next.MoveCount++

	color := next.Get(move.From)
	next.Set(move.To, color)
	next.Set(move.From, model.Empty)

	// Match check at the destination only
	removed := removeMatchesAt(next, move.To, e.cfg.MatchLength)
	points := PointsPerBall * len(removed)

	// New balls spawn only when the move itself matched nothing. Lines
	// completed by the spawned balls are cleared but score nothing.
	var spawned []model.SpawnedBall
	if len(removed) == 0 {
		spawned = e.addNextBalls(next)
		if len(spawned) > 0 {
			auto := removeAllMatches(next, e.cfg.MatchLength)
			removed = append(removed, auto...)
		}
	}

	next.Score += points
	next.NextBalls = e.generateNextBalls()
	next.GameOver = e.IsGameOver(next)

	e.current = next

	e.logger.Debug("move executed",
		slog.String("move", move.String()),
		slog.Int("removed", len(removed)),
		slog.Int("points", points),
		slog.Int("spawned", len(spawned)),
		slog.Bool("game_over", next.GameOver),
	)

	return model.MoveResult{
		Success:       true,
		NewState:      next.Clone(),
		BallsRemoved:  removed,
		PointsEarned:  points,
		NewBallsAdded: spawned,
		Path:          path,
	}
}

// generateNextBalls draws the next-balls preview. The preview is empty
// when previews are disabled, in which case no balls spawn after a move.
func (e *Engine) generateNextBalls() []model.BallColor {
	if !e.cfg.ShowNextBalls {
		return nil
	}
	colors := model.ValidColors()[:e.cfg.ColorsCount]
	next := make([]model.BallColor, e.cfg.BallsPerTurn)
	for i := range next {
		next[i] = colors[e.random.Intn(len(colors))]
	}
	return next
}

// addRandomBalls places up to count balls of uniformly random colors on
// distinct random empty cells
func (e *Engine) addRandomBalls(state *model.GameState, count int) []model.SpawnedBall {
	empty := state.EmptyPositions()
	if count > len(empty) {
		count = len(empty)
	}
	if count == 0 {
		return nil
	}

	colors := model.ValidColors()[:e.cfg.ColorsCount]
	perm := e.random.Perm(len(empty))

	spawned := make([]model.SpawnedBall, 0, count)
	for i := 0; i < count; i++ {
		pos := empty[perm[i]]
		color := colors[e.random.Intn(len(colors))]
		state.Set(pos, color)
		spawned = append(spawned, model.SpawnedBall{Pos: pos, Color: color})
	}
	return spawned
}

// addNextBalls places the previewed colors on distinct random empty
// cells, capped at the number of empty cells
func (e *Engine) addNextBalls(state *model.GameState) []model.SpawnedBall {
	empty := state.EmptyPositions()
	count := len(state.NextBalls)
	if count > len(empty) {
		count = len(empty)
	}
	if count == 0 {
		return nil
	}

	perm := e.random.Perm(len(empty))

	spawned := make([]model.SpawnedBall, 0, count)
	for i := 0; i < count; i++ {
		pos := empty[perm[i]]
		color := state.NextBalls[i]
		state.Set(pos, color)
		spawned = append(spawned, model.SpawnedBall{Pos: pos, Color: color})
	}
	return spawned
}
