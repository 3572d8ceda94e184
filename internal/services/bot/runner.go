package bot

import (
	"github.com/linesgame/linesim/internal/engine"
	"github.com/linesgame/linesim/internal/model"
)

// MaxEpisodeMoves is a safety limit on self-play episode length
const MaxEpisodeMoves = 10000

// EpisodeResult summarizes one self-played game
type EpisodeResult struct {
	FinalState *model.GameState
	Moves      []model.Move
	// Features holds the one-hot encoding of the state before each move
	Features [][]float64
	Score    int
}

// RunEpisode plays one full game on the given engine with the given
// strategy, from reset until game over. The engine's random stream
// drives spawns; the strategy's stream (if any) drives move choice.
func RunEpisode(eng *engine.Engine, strategy Strategy) (EpisodeResult, error) {
	state := eng.Reset()

	result := EpisodeResult{}
	for i := 0; i < MaxEpisodeMoves; i++ {
		moves := eng.ValidMoves(nil)
		if len(moves) == 0 {
			break
		}

		move, err := strategy.ChooseMove(state, moves)
		if err != nil {
			return result, err
		}

		result.Features = append(result.Features, state.FeatureVector())
		result.Moves = append(result.Moves, move)

		moveResult := eng.ExecuteMove(move)
		if moveResult.Err != nil {
			return result, moveResult.Err
		}
		state = moveResult.NewState

		if state.GameOver {
			break
		}
	}

	result.FinalState = state
	result.Score = state.Score
	return result, nil
}
