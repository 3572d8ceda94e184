package bot

import (
	"log/slog"

	"github.com/linesgame/linesim/internal/dependencies/random"
	"github.com/linesgame/linesim/internal/model"
)

// Strategy defines how a bot picks its next move from the set of
// currently valid moves. Implementations must be deterministic for a
// given state, move list and random stream.
type Strategy interface {
	// Name identifies the strategy in APIs and CLI flags
	Name() string
	// ChooseMove selects one of the given valid moves
	ChooseMove(state *model.GameState, moves []model.Move) (model.Move, error)
}

// DefaultStrategies builds the standard strategy registry. The neural
// strategy is only registered when a network can be constructed.
func DefaultStrategies(cfg model.GameConfig, rnd random.Random, logger *slog.Logger) map[string]Strategy {
	strategies := map[string]Strategy{
		StrategyRandom: NewRandomStrategy(rnd),
		StrategyGreedy: NewGreedyStrategy(cfg),
	}
	if neural, err := NewNeuralStrategy(cfg, DefaultNetworkConfig(cfg)); err == nil {
		strategies[StrategyNeural] = neural
	} else {
		logger.Warn("neural strategy unavailable", slog.String("error", err.Error()))
	}
	return strategies
}

// Registered strategy names
const (
	StrategyRandom = "random"
	StrategyGreedy = "greedy"
	StrategyNeural = "neural"
)
