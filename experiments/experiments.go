package experiments

import (
	"context"
	"fmt"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/player"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
)

// Summary counts results per match-up, keyed by agent ID.
type Summary struct {
	Games int
	Wins  map[int]int
	Ties  int
}

type Experiment struct {
	Name     string
	Size     int
	NumGames int // Per match up
	OutDir   string
}

// RunDepthExperiment pairs a random player against minimax players with a
// growing search horizon.
func (x Experiment) RunDepthExperiment(ctx context.Context) (Summary, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: 1}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.MinimaxAgent, MaxDepth: 1, Goroutines: 1},
		{ID: 2, Kind: metrics.MinimaxAgent, MaxDepth: 2, Goroutines: 1},
		{ID: 3, Kind: metrics.MinimaxAgent, MaxDepth: 4, Goroutines: 1},
		{ID: 4, Kind: metrics.MinimaxAgent, MaxDepth: x.Size * x.Size, Goroutines: 1, Pruning: true},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return x.run(ctx, append(configs, baseline), matchUps)
}

// RunParallelizationExperiment plays full-depth minimax players with more
// goroutines against the sequential one. Every game should be a tie.
func (x Experiment) RunParallelizationExperiment(ctx context.Context) (Summary, error) {
	depth := x.Size * x.Size
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.MinimaxAgent, MaxDepth: depth, Goroutines: 1, Pruning: true}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.MinimaxAgent, MaxDepth: depth, Goroutines: 2, Pruning: true},
		{ID: 2, Kind: metrics.MinimaxAgent, MaxDepth: depth, Goroutines: 4, Pruning: true},
		{ID: 3, Kind: metrics.MinimaxAgent, MaxDepth: depth, Goroutines: 8, Pruning: true},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return x.run(ctx, append(configs, baseline), matchUps)
}

func (x Experiment) run(ctx context.Context, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (Summary, error) {
	// Run a number of games for each matchup
	count := 0
	summary := Summary{Wins: map[int]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < x.NumGames; i++ {
			// Alternate the starting side between games
			first := game.Human
			if i%2 == 1 {
				first = game.AI
			}

			winner, gameMetric, moveMetrics, err := x.runGame(ctx, first, config1, config2, i)
			if err != nil {
				return summary, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			summary.Games++
			switch winner {
			case game.Human.String():
				summary.Wins[config1.ID]++
			case game.AI.String():
				summary.Wins[config2.ID]++
			default:
				summary.Ties++
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	if err := x.store(configs, gameRecords, moveRecords); err != nil {
		return summary, err
	}
	return summary, nil
}

func (x Experiment) store(configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(x.OutDir, x.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored experiment results in %s", writer.Dir())
	return nil
}

// runGame executes a single game with config1 playing Human and config2 playing AI
func (x Experiment) runGame(ctx context.Context, first game.Mark, config1, config2 metrics.AgentConfig, gameIndex int) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	players := map[game.Mark]player.Player{
		game.Human: createPlayer(config1, gameIndex),
		game.AI:    createPlayer(config2, gameIndex),
	}
	local, err := engine.LocalEngine(x.Size, first, players)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	var e engine.Engine = local
	return e.Run(ctx)
}

func createPlayer(config metrics.AgentConfig, gameIndex int) player.Player {
	if config.Kind == metrics.RandomAgent {
		return player.NewRandom(config.Seed + uint64(gameIndex))
	}

	options := []searcher.Option{
		searcher.WithMaxDepth(config.MaxDepth),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithMetrics(),
	}
	if config.Pruning {
		options = append(options, searcher.WithPruning())
	}
	return player.NewMinimax(searcher.NewSearcher(options...))
}
