package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/linesgame/linesim/internal/dependencies/clock"
	"github.com/linesgame/linesim/internal/dependencies/random"
	"github.com/linesgame/linesim/internal/engine"
	"github.com/linesgame/linesim/internal/model"
	"github.com/linesgame/linesim/internal/storage"
)

// Controller manages persisted simulation sessions. A session stores its
// seed and full move log, so the engine can be rebuilt deterministically
// on any storage backend by replaying the log.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new session Controller
func NewController(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		logger:  logger.With(slog.String("component", "session_controller")),
	}
}

// CreateSession starts a new simulation with the given configuration.
// A zero seed is replaced with the current clock time so distinct
// sessions do not share a random stream by accident.
func (c *Controller) CreateSession(ctx context.Context, cfg model.GameConfig, seed int64) (*model.Session, error) {
	if seed == 0 {
		seed = c.clock.Now().UnixNano()
	}

	eng, err := engine.New(cfg, random.New(seed), c.logger)
	if err != nil {
		return nil, err
	}
	state := eng.Reset()

	now := c.clock.Now()
	session := &model.Session{
		ID:        model.SessionID(uuid.NewString()),
		Seed:      seed,
		Config:    cfg,
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.Int64("seed", seed),
		slog.Int("rows", cfg.Rows),
		slog.Int("cols", cfg.Cols),
	)

	return session, nil
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// GetState returns the current game state of a session
func (c *Controller) GetState(ctx context.Context, id model.SessionID) (*model.GameState, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return session.State, nil
}

// ValidMoves enumerates the moves currently available in a session
func (c *Controller) ValidMoves(ctx context.Context, id model.SessionID) ([]model.Move, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	eng, err := c.rebuildEngine(session)
	if err != nil {
		return nil, err
	}
	return eng.ValidMoves(nil), nil
}

// ExecuteMove applies a move to a session. The engine is rebuilt from the
// seed and move log, the move is executed, and on success the extended
// log and new state are persisted. Rule violations surface as the
// engine's sentinel errors and leave the session untouched.
func (c *Controller) ExecuteMove(ctx context.Context, id model.SessionID, move model.Move) (*model.MoveResult, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.State != nil && session.State.GameOver {
		return nil, model.ErrGameOver
	}

	eng, err := c.rebuildEngine(session)
	if err != nil {
		return nil, err
	}

	result := eng.ExecuteMove(move)
	if result.Err != nil {
		return nil, result.Err
	}

	session.Moves = append(session.Moves, move)
	session.State = result.NewState
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session after move",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("move executed",
		slog.String("session_id", string(session.ID)),
		slog.String("move", move.String()),
		slog.Int("points", result.PointsEarned),
		slog.Int("score", result.NewState.Score),
		slog.Bool("game_over", result.NewState.GameOver),
	)

	return &result, nil
}

// ResetSession restarts a session from its original seed, clearing the
// move log. The board returns to the exact initial layout.
func (c *Controller) ResetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(session.Config, random.New(session.Seed), c.logger)
	if err != nil {
		return nil, err
	}

	session.Moves = nil
	session.State = eng.Reset()
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session reset",
		slog.String("session_id", string(session.ID)),
	)

	return session, nil
}

// DeleteSession removes a session from storage
func (c *Controller) DeleteSession(ctx context.Context, id model.SessionID) error {
	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}
	c.logger.Info("session deleted",
		slog.String("session_id", string(id)),
	)
	return nil
}

// ListSessions returns the IDs of all stored sessions
func (c *Controller) ListSessions(ctx context.Context) ([]model.SessionID, error) {
	return c.storage.ListSessionIDs(ctx)
}

// rebuildEngine reconstructs a session's engine by replaying its move log
// from the original seed. A move that fails during replay means the
// stored log is corrupt.
func (c *Controller) rebuildEngine(session *model.Session) (*engine.Engine, error) {
	eng, err := engine.New(session.Config, random.New(session.Seed), c.logger)
	if err != nil {
		return nil, err
	}
	eng.Reset()

	for i, move := range session.Moves {
		if result := eng.ExecuteMove(move); result.Err != nil {
			return nil, fmt.Errorf("replaying move %d (%s) for session %s: %w",
				i, move.String(), session.ID, result.Err)
		}
	}
	return eng, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateSession(ctx context.Context, cfg model.GameConfig, seed int64) (*model.Session, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	GetState(ctx context.Context, id model.SessionID) (*model.GameState, error)
	ValidMoves(ctx context.Context, id model.SessionID) ([]model.Move, error)
	ExecuteMove(ctx context.Context, id model.SessionID, move model.Move) (*model.MoveResult, error)
	ResetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	ListSessions(ctx context.Context) ([]model.SessionID, error)
}

var _ ControllerInterface = (*Controller)(nil)
