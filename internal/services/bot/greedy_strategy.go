package bot

import (
	"github.com/linesgame/linesim/internal/engine"
	"github.com/linesgame/linesim/internal/model"
)

// GreedyStrategy picks the move that completes the largest match right
// now, breaking ties by the longest same-color run the move creates.
// Among equally good moves the first in the valid-move enumeration wins,
// so the choice is fully deterministic.
type GreedyStrategy struct {
	cfg model.GameConfig
}

// NewGreedyStrategy creates a new GreedyStrategy for the given rules
func NewGreedyStrategy(cfg model.GameConfig) *GreedyStrategy {
	return &GreedyStrategy{cfg: cfg}
}

var _ Strategy = (*GreedyStrategy)(nil)

func (s *GreedyStrategy) Name() string {
	return StrategyGreedy
}

func (s *GreedyStrategy) ChooseMove(state *model.GameState, moves []model.Move) (model.Move, error) {
	if len(moves) == 0 {
		return model.Move{}, model.ErrNoValidMoves
	}

	best := moves[0]
	bestRemoved := -1
	bestRun := -1

	for _, move := range moves {
		after := state.Clone()
		after.Set(move.To, after.Get(move.From))
		after.Set(move.From, model.Empty)

		removed := len(engine.MatchAt(after, move.To, s.cfg.MatchLength))
		run := longestRunThrough(after, move.To)

		if removed > bestRemoved || (removed == bestRemoved && run > bestRun) {
			best = move
			bestRemoved = removed
			bestRun = run
		}
	}

	return best, nil
}

// longestRunThrough returns the length of the longest same-color line
// through pos across the four match axes
func longestRunThrough(state *model.GameState, pos model.Position) int {
	color := state.Get(pos)
	if color.IsEmpty() {
		return 0
	}

	axes := [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	longest := 0
	for _, axis := range axes {
		run := 1
		for _, sign := range []int{1, -1} {
			r, c := pos.Row+sign*axis[0], pos.Col+sign*axis[1]
			for state.IsValidPosition(model.Position{Row: r, Col: c}) &&
				state.Get(model.Position{Row: r, Col: c}) == color {
				run++
				r += sign * axis[0]
				c += sign * axis[1]
			}
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
