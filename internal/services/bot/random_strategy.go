package bot

import (
	"github.com/linesgame/linesim/internal/dependencies/random"
	"github.com/linesgame/linesim/internal/model"
)

// RandomStrategy picks a uniformly random valid move
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

var _ Strategy = (*RandomStrategy)(nil)

func (s *RandomStrategy) Name() string {
	return StrategyRandom
}

func (s *RandomStrategy) ChooseMove(state *model.GameState, moves []model.Move) (model.Move, error) {
	if len(moves) == 0 {
		return model.Move{}, model.ErrNoValidMoves
	}
	return moves[s.random.Intn(len(moves))], nil
}
