package bot

import (
	"log/slog"

	"github.com/patrikeh/go-deep/training"

	"github.com/linesgame/linesim/internal/dependencies/random"
	"github.com/linesgame/linesim/internal/engine"
	"github.com/linesgame/linesim/internal/model"
)

// TrainingConfig specifies parameters for self-play training
type TrainingConfig struct {
	Episodes       int
	BatchSize      int
	ReportInterval int
	LearningRate   float64
	Seed           int64
	Network        NetworkConfig
}

// DefaultTrainingConfig returns training parameters suited to the given
// rules configuration
func DefaultTrainingConfig(cfg model.GameConfig) TrainingConfig {
	return TrainingConfig{
		Episodes:       100,
		BatchSize:      256,
		ReportInterval: 10,
		LearningRate:   0.01,
		Seed:           1,
		Network:        DefaultNetworkConfig(cfg),
	}
}

// Train runs self-play reinforcement learning: the network plays full
// games, and each visited state is regressed toward the episode's final
// score. Returns the trained strategy, ready to save or play.
func Train(cfg model.GameConfig, tcfg TrainingConfig, logger *slog.Logger) (*NeuralStrategy, error) {
	logger = logger.With(slog.String("component", "bot_training"))

	strategy, err := NewNeuralStrategy(cfg, tcfg.Network)
	if err != nil {
		return nil, err
	}

	trainer := training.NewTrainer(training.NewSGD(tcfg.LearningRate, 0.5, 0.0, false), 1)

	var examples training.Examples
	totalScore := 0
	bestScore := 0

	logger.Info("self-play training started",
		slog.Int("episodes", tcfg.Episodes),
		slog.Int("batch_size", tcfg.BatchSize),
		slog.Int64("seed", tcfg.Seed),
	)

	for episode := 0; episode < tcfg.Episodes; episode++ {
		eng, err := engine.New(cfg, random.New(tcfg.Seed+int64(episode)), logger)
		if err != nil {
			return nil, err
		}

		result, err := RunEpisode(eng, strategy)
		if err != nil {
			return nil, err
		}

		totalScore += result.Score
		if result.Score > bestScore {
			bestScore = result.Score
		}

		// Every visited state is labeled with the episode outcome,
		// scaled down to keep regression targets small
		target := float64(result.Score) / 100.0
		for _, features := range result.Features {
			examples = append(examples, training.Example{
				Input:    features,
				Response: []float64{target},
			})
		}

		if len(examples) >= tcfg.BatchSize {
			examples.Shuffle()
			iterations := len(examples)/tcfg.BatchSize + 1
			trainer.Train(strategy.network, examples, nil, iterations)
			examples = nil
		}

		if tcfg.ReportInterval > 0 && (episode+1)%tcfg.ReportInterval == 0 {
			logger.Info("training progress",
				slog.Int("episode", episode+1),
				slog.Int("best_score", bestScore),
				slog.Float64("avg_score", float64(totalScore)/float64(episode+1)),
			)
		}
	}

	if len(examples) > 0 {
		examples.Shuffle()
		trainer.Train(strategy.network, examples, nil, 1)
	}

	logger.Info("self-play training finished",
		slog.Int("episodes", tcfg.Episodes),
		slog.Int("best_score", bestScore),
	)

	return strategy, nil
}
