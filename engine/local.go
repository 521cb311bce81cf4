package engine

import (
	"context"
	"fmt"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/player"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Local struct {
	Game     *Game
	Players  map[game.Mark]player.Player
	MaxMoves int // Run stops without a winner after this many moves
}

// LocalEngine sets up a game between two in-process players, one per mark.
func LocalEngine(size int, first game.Mark, players map[game.Mark]player.Player) (*Local, error) {
	if players[game.Human] == nil || players[game.AI] == nil {
		panic("need a player for each mark")
	}

	g, err := NewGame(size, first)
	if err != nil {
		return nil, err
	}

	return &Local{
		Game:     g,
		Players:  players,
		MaxMoves: meta.MAX_MOVES,
	}, nil
}

// Run asks the side to move for a move and commits it until the game ends.
func (e *Local) Run(ctx context.Context) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Game.CurrentPlayer().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", e.Game.CurrentPlayer())

	step := 1
	for e.Game.Status() == InProgress && step <= e.MaxMoves {
		mark := e.Game.CurrentPlayer()
		p := e.Players[mark]

		move, searchMetric, err := p.FindMove(ctx, e.Game.Board(), mark)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("player %s (%s) failed to move: %w", mark, p.Name(), err)
		}
		if err := e.Game.PlayAs(mark, move); err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("player %s (%s) played %s: %w", mark, p.Name(), move, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mark.String(),
			Row:          move.Row,
			Col:          move.Col,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: player %s (%s) plays %s", step, mark, p.Name(), move)
		step++
	}

	winner := ""
	if e.Game.Winner() != game.Empty {
		winner = e.Game.Winner().String()
		log.Info().Msgf("game over after %d moves, winner: %s", len(moveMetrics), winner)
	} else if e.Game.Status() == InProgress {
		log.Warn().Msgf("stopped after %d moves (no winner yet)", len(moveMetrics))
	} else {
		log.Info().Msgf("game over after %d moves, tie", len(moveMetrics))
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return winner, gameMetric, moveMetrics, nil
}
