package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linesgame/linesim/internal/model"
	"github.com/linesgame/linesim/internal/services/session"
)

// MaxPlayoutMoves is a safety limit for PlayOut loops
const MaxPlayoutMoves = 10000

// PlayedMove is one bot move applied to a session
type PlayedMove struct {
	Move   model.Move
	Result *model.MoveResult
}

// PlayoutResult summarizes a bot playing a session to completion
type PlayoutResult struct {
	MovesPlayed int
	FinalScore  int
	GameOver    bool
}

// Service drives bot play against persisted sessions
type Service struct {
	sessions   session.ControllerInterface
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(sessions session.ControllerInterface, strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		sessions:   sessions,
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot_service")),
	}
}

// Strategies lists the registered strategy names
func (s *Service) Strategies() []string {
	names := make([]string, 0, len(s.strategies))
	for name := range s.strategies {
		names = append(names, name)
	}
	return names
}

// PlayMove has the named strategy choose and execute one move on the
// session
func (s *Service) PlayMove(ctx context.Context, id model.SessionID, strategyName string) (*PlayedMove, error) {
	strategy, ok := s.strategies[strategyName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, strategyName)
	}

	state, err := s.sessions.GetState(ctx, id)
	if err != nil {
		return nil, err
	}
	if state.GameOver {
		return nil, model.ErrGameOver
	}

	moves, err := s.sessions.ValidMoves(ctx, id)
	if err != nil {
		return nil, err
	}

	move, err := strategy.ChooseMove(state, moves)
	if err != nil {
		return nil, err
	}

	result, err := s.sessions.ExecuteMove(ctx, id, move)
	if err != nil {
		return nil, err
	}

	s.logger.Info("bot move played",
		slog.String("session_id", string(id)),
		slog.String("strategy", strategyName),
		slog.String("move", move.String()),
		slog.Int("points", result.PointsEarned),
	)

	return &PlayedMove{Move: move, Result: result}, nil
}

// PlayOut has the named strategy play the session until game over or
// maxMoves, whichever comes first. maxMoves <= 0 means no caller limit.
func (s *Service) PlayOut(ctx context.Context, id model.SessionID, strategyName string, maxMoves int) (*PlayoutResult, error) {
	if _, ok := s.strategies[strategyName]; !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, strategyName)
	}

	if maxMoves <= 0 || maxMoves > MaxPlayoutMoves {
		maxMoves = MaxPlayoutMoves
	}

	result := &PlayoutResult{}
	for result.MovesPlayed < maxMoves {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		played, err := s.PlayMove(ctx, id, strategyName)
		if err != nil {
			return result, err
		}

		result.MovesPlayed++
		result.FinalScore = played.Result.NewState.Score
		if played.Result.NewState.GameOver {
			result.GameOver = true
			break
		}
	}

	s.logger.Info("bot playout finished",
		slog.String("session_id", string(id)),
		slog.String("strategy", strategyName),
		slog.Int("moves", result.MovesPlayed),
		slog.Int("score", result.FinalScore),
		slog.Bool("game_over", result.GameOver),
	)

	return result, nil
}
