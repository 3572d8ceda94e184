package bot

import (
	"encoding/json"
	"fmt"
	"os"

	deep "github.com/patrikeh/go-deep"

	"github.com/linesgame/linesim/internal/engine"
	"github.com/linesgame/linesim/internal/model"
)

// NetworkConfig defines the value network architecture and weights
type NetworkConfig struct {
	InputSize    int           `json:"input_size"`
	HiddenLayers []int         `json:"hidden_layers"`
	LearningRate float64       `json:"learning_rate"`
	Weights      [][][]float64 `json:"weights,omitempty"`
}

// DefaultNetworkConfig returns the default architecture for a board of
// the given dimensions. The input is the one-hot board encoding.
func DefaultNetworkConfig(cfg model.GameConfig) NetworkConfig {
	return NetworkConfig{
		InputSize:    cfg.Rows * cfg.Cols * model.PaletteSize,
		HiddenLayers: []int{64, 32},
		LearningRate: 0.01,
	}
}

// NeuralStrategy scores candidate moves with a small value network over
// the one-hot board encoding, combined with the immediate points a move
// earns. Untrained networks degrade to near-greedy play.
type NeuralStrategy struct {
	network *deep.Neural
	cfg     model.GameConfig
	netCfg  NetworkConfig
}

// NewNeuralStrategy builds a NeuralStrategy, applying pre-trained
// weights when the config carries them
func NewNeuralStrategy(cfg model.GameConfig, netCfg NetworkConfig) (*NeuralStrategy, error) {
	want := cfg.Rows * cfg.Cols * model.PaletteSize
	if netCfg.InputSize != want {
		return nil, fmt.Errorf("network input size %d does not match board encoding size %d", netCfg.InputSize, want)
	}

	layout := append([]int{}, netCfg.HiddenLayers...)
	layout = append(layout, 1)

	network := deep.NewNeural(&deep.Config{
		Inputs:     netCfg.InputSize,
		Layout:     layout,
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeRegression,
		Weight:     deep.NewNormal(0.0, 0.1),
		Bias:       true,
	})

	if netCfg.Weights != nil {
		network.ApplyWeights(netCfg.Weights)
	}

	return &NeuralStrategy{
		network: network,
		cfg:     cfg,
		netCfg:  netCfg,
	}, nil
}

var _ Strategy = (*NeuralStrategy)(nil)

func (s *NeuralStrategy) Name() string {
	return StrategyNeural
}

func (s *NeuralStrategy) ChooseMove(state *model.GameState, moves []model.Move) (model.Move, error) {
	if len(moves) == 0 {
		return model.Move{}, model.ErrNoValidMoves
	}

	best := moves[0]
	bestScore := -1e18

	for _, move := range moves {
		after := state.Clone()
		after.Set(move.To, after.Get(move.From))
		after.Set(move.From, model.Empty)

		// Immediate reward dominates; the network value breaks ties and
		// steers scoreless moves.
		points := engine.PointsPerBall * len(engine.MatchAt(after, move.To, s.cfg.MatchLength))
		score := float64(points) + s.Evaluate(after)

		if score > bestScore {
			best = move
			bestScore = score
		}
	}

	return best, nil
}

// Evaluate returns the network's value estimate for a state
func (s *NeuralStrategy) Evaluate(state *model.GameState) float64 {
	return s.network.Predict(state.FeatureVector())[0]
}

// SaveWeights writes the network architecture and weights to a JSON file
func (s *NeuralStrategy) SaveWeights(path string) error {
	cfg := s.netCfg
	cfg.Weights = s.network.Dump().Weights

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadNetworkConfig reads a NetworkConfig from a JSON weights file
func LoadNetworkConfig(path string) (NetworkConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NetworkConfig{}, err
	}

	var cfg NetworkConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return NetworkConfig{}, err
	}
	return cfg, nil
}
