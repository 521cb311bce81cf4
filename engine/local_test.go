package engine

import (
	"context"
	"testing"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/player"
	"tictactoe/searcher"

	"github.com/stretchr/testify/require"
)

type scriptedPlayer struct {
	moves []game.Move
	next  int
}

func (p *scriptedPlayer) Name() string {
	return "scripted"
}

func (p *scriptedPlayer) FindMove(ctx context.Context, board *game.Board, mark game.Mark) (game.Move, metrics.SearchMetric, error) {
	move := p.moves[p.next]
	p.next++
	return move, metrics.SearchMetric{}, nil
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("perfect play ends in a tie", func(t *testing.T) {
		e, err := LocalEngine(3, game.Human, map[game.Mark]player.Player{
			game.Human: player.NewMinimax(searcher.NewSearcher(searcher.WithPruning())),
			game.AI:    player.NewMinimax(searcher.NewSearcher()),
		})
		require.NoError(t, err)

		winner, gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, "", winner, "Perfect play should not produce a winner")
		require.Equal(t, Tie, e.Game.Status())
		require.Equal(t, 9, gameMetric.TotalMoves)
		require.Equal(t, "X", gameMetric.StartingPlayer)
		require.Len(t, moveMetrics, 9)
		require.Equal(t, "X", moveMetrics[0].Player)
		require.Equal(t, "O", moveMetrics[1].Player)
	})

	t.Run("minimax never loses to a random player", func(t *testing.T) {
		for seed := uint64(0); seed < 5; seed++ {
			e, err := LocalEngine(3, game.Human, map[game.Mark]player.Player{
				game.Human: player.NewRandom(seed),
				game.AI:    player.NewMinimax(searcher.NewSearcher(searcher.WithPruning())),
			})
			require.NoError(t, err)

			winner, _, _, err := e.Run(context.Background())

			require.NoError(t, err)
			require.NotEqual(t, "X", winner, "seed %d", seed)
		}
	})

	t.Run("scripted win is reported", func(t *testing.T) {
		e, err := LocalEngine(3, game.Human, map[game.Mark]player.Player{
			game.Human: &scriptedPlayer{moves: []game.Move{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}},
			game.AI:    &scriptedPlayer{moves: []game.Move{{Row: 0, Col: 1}, {Row: 0, Col: 2}}},
		})
		require.NoError(t, err)

		winner, gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, "X", winner)
		require.Equal(t, "X", gameMetric.Winner)
		require.Equal(t, 5, gameMetric.TotalMoves)
		require.Equal(t, 2, moveMetrics[4].Row)
		require.Equal(t, 2, moveMetrics[4].Col)
	})

	t.Run("illegal move stops the game", func(t *testing.T) {
		e, err := LocalEngine(3, game.Human, map[game.Mark]player.Player{
			game.Human: &scriptedPlayer{moves: []game.Move{{Row: 0, Col: 0}}},
			game.AI:    &scriptedPlayer{moves: []game.Move{{Row: 0, Col: 0}}},
		})
		require.NoError(t, err)

		_, _, moveMetrics, err := e.Run(context.Background())

		require.ErrorIs(t, err, game.ErrInvalidMove)
		require.Len(t, moveMetrics, 1)
	})

	t.Run("move limit stops the game without a winner", func(t *testing.T) {
		e, err := LocalEngine(3, game.Human, map[game.Mark]player.Player{
			game.Human: player.NewRandom(3),
			game.AI:    player.NewRandom(4),
		})
		require.NoError(t, err)
		require.Equal(t, 64, e.MaxMoves)
		e.MaxMoves = 3

		winner, gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, "", winner)
		require.Equal(t, 3, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 3)
		require.Equal(t, InProgress, e.Game.Status())
	})

	t.Run("runs through the Engine interface", func(t *testing.T) {
		local, err := LocalEngine(3, game.Human, map[game.Mark]player.Player{
			game.Human: &scriptedPlayer{moves: []game.Move{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}},
			game.AI:    &scriptedPlayer{moves: []game.Move{{Row: 0, Col: 1}, {Row: 0, Col: 2}}},
		})
		require.NoError(t, err)
		var e Engine = local

		winner, _, _, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, "X", winner)
	})

	t.Run("canceled context stops a searching player", func(t *testing.T) {
		e, err := LocalEngine(3, game.AI, map[game.Mark]player.Player{
			game.Human: player.NewRandom(1),
			game.AI:    player.NewMinimax(searcher.NewSearcher()),
		})
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, _, err = e.Run(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalEngineSetup(t *testing.T) {
	t.Run("panics without a player per mark", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(3, game.Human, map[game.Mark]player.Player{game.AI: player.NewRandom(1)})
		})
	})

	t.Run("rejects an invalid size", func(t *testing.T) {
		_, err := LocalEngine(0, game.Human, map[game.Mark]player.Player{
			game.Human: player.NewRandom(1),
			game.AI:    player.NewRandom(2),
		})
		require.ErrorIs(t, err, game.ErrInvalidSize)
	})
}
