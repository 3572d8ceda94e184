package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/linesgame/linesim/internal/dependencies/random"
	"github.com/linesgame/linesim/internal/engine"
	"github.com/linesgame/linesim/internal/model"
	"github.com/linesgame/linesim/internal/services/bot"
)

func newPlayCmd() *cobra.Command {
	var (
		seed         int64
		strategyName string
		episodes     int
		weightsPath  string
		showBoards   bool
		rows         int
		cols         int
		colors       int
		matchLength  int
		ballsPerTurn int
		initialBalls int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play full games locally with a bot strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg := model.GameConfig{
				Rows:          rows,
				Cols:          cols,
				ColorsCount:   colors,
				MatchLength:   matchLength,
				BallsPerTurn:  ballsPerTurn,
				InitialBalls:  initialBalls,
				ShowNextBalls: true,
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			if episodes < 1 {
				episodes = 1
			}

			strategy, err := buildStrategy(strategyName, cfg, weightsPath, seed)
			if err != nil {
				return err
			}

			fmt.Printf("strategy %s, base seed %d, %d episode(s)\n", strategy.Name(), seed, episodes)

			totalScore := 0
			totalMoves := 0
			bestScore := 0
			for episode := 0; episode < episodes; episode++ {
				eng, err := engine.New(cfg, random.New(seed+int64(episode)), logger)
				if err != nil {
					return err
				}

				result, err := bot.RunEpisode(eng, strategy)
				if err != nil {
					return err
				}

				totalScore += result.Score
				totalMoves += len(result.Moves)
				if result.Score > bestScore {
					bestScore = result.Score
				}

				fmt.Printf("episode %d: %d moves, score %d\n", episode+1, len(result.Moves), result.Score)
				if showBoards {
					fmt.Printf("%s\n", result.FinalState)
				}
			}

			fmt.Printf("total: avg score %.1f, avg moves %.1f, best score %d\n",
				float64(totalScore)/float64(episodes),
				float64(totalMoves)/float64(episodes),
				bestScore,
			)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Base random seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&strategyName, "strategy", bot.StrategyGreedy, "Bot strategy: random, greedy, neural")
	cmd.Flags().IntVar(&episodes, "episodes", 1, "Number of games to play")
	cmd.Flags().StringVar(&weightsPath, "weights", "", "Weights file for the neural strategy")
	cmd.Flags().BoolVar(&showBoards, "show-boards", false, "Print the final board of every episode")
	cmd.Flags().IntVar(&rows, "rows", 9, "Board rows")
	cmd.Flags().IntVar(&cols, "cols", 9, "Board columns")
	cmd.Flags().IntVar(&colors, "colors", 7, "Number of ball colors")
	cmd.Flags().IntVar(&matchLength, "match-length", 5, "Line length required to score")
	cmd.Flags().IntVar(&ballsPerTurn, "balls-per-turn", 3, "Balls spawned after a scoreless move")
	cmd.Flags().IntVar(&initialBalls, "initial-balls", 5, "Balls placed at game start")

	return cmd
}

// buildStrategy constructs the named strategy for local play
func buildStrategy(name string, cfg model.GameConfig, weightsPath string, seed int64) (bot.Strategy, error) {
	switch name {
	case bot.StrategyRandom:
		return bot.NewRandomStrategy(random.New(seed + 1)), nil
	case bot.StrategyGreedy:
		return bot.NewGreedyStrategy(cfg), nil
	case bot.StrategyNeural:
		netCfg := bot.DefaultNetworkConfig(cfg)
		if weightsPath != "" {
			loaded, err := bot.LoadNetworkConfig(weightsPath)
			if err != nil {
				return nil, err
			}
			netCfg = loaded
		}
		return bot.NewNeuralStrategy(cfg, netCfg)
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
}
