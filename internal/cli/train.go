package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linesgame/linesim/internal/model"
	"github.com/linesgame/linesim/internal/services/bot"
)

func newTrainCmd() *cobra.Command {
	var (
		episodes     int
		batchSize    int
		learningRate float64
		seed         int64
		output       string
		rows         int
		cols         int
		colors       int
		matchLength  int
		ballsPerTurn int
		initialBalls int
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the neural strategy through self-play",
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
			if err := cfg.Validate(); err != nil {
				return err
			}

			tcfg := bot.DefaultTrainingConfig(cfg)
			tcfg.Episodes = episodes
			tcfg.BatchSize = batchSize
			tcfg.LearningRate = learningRate
			tcfg.Seed = seed
			tcfg.Network.LearningRate = learningRate

			strategy, err := bot.Train(cfg, tcfg, logger)
			if err != nil {
				return err
			}

			if err := strategy.SaveWeights(output); err != nil {
				return err
			}

			fmt.Printf("weights saved to %s\n", output)
			return nil
		},
	}

	cmd.Flags().IntVar(&episodes, "episodes", 100, "Number of self-play games")
	cmd.Flags().IntVar(&batchSize, "batch-size", 256, "Training batch size")
	cmd.Flags().Float64Var(&learningRate, "learning-rate", 0.01, "SGD learning rate")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Base seed for self-play games")
	cmd.Flags().StringVar(&output, "output", "weights.json", "Output weights file")
	cmd.Flags().IntVar(&rows, "rows", 9, "Board rows")
	cmd.Flags().IntVar(&cols, "cols", 9, "Board columns")
	cmd.Flags().IntVar(&colors, "colors", 7, "Number of ball colors")
	cmd.Flags().IntVar(&matchLength, "match-length", 5, "Line length required to score")
	cmd.Flags().IntVar(&ballsPerTurn, "balls-per-turn", 3, "Balls spawned after a scoreless move")
	cmd.Flags().IntVar(&initialBalls, "initial-balls", 5, "Balls placed at game start")

	return cmd
}
