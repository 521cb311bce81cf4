package player

import (
	"context"
	"testing"
	"tictactoe/game"
	"tictactoe/searcher"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) *game.Board {
	t.Helper()
	b, err := game.ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

func TestMinimaxPlayer(t *testing.T) {
	p := NewMinimax(searcher.NewSearcher(searcher.WithMetrics()))

	t.Run("plays the AI side directly", func(t *testing.T) {
		b := mustParse(t,
			"OO ",
			"XX ",
			"   ",
		)

		move, metric, err := p.FindMove(context.Background(), b, game.AI)

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 0, Col: 2}, move)
		require.Equal(t, 9-0, metric.Score)
	})

	t.Run("plays the Human side on a mirrored board", func(t *testing.T) {
		b := mustParse(t,
			"OO ",
			"XX ",
			"   ",
		)
		before := b.Copy()

		move, _, err := p.FindMove(context.Background(), b, game.Human)

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 1, Col: 2}, move, "Human should complete its own row")
		require.True(t, before.Equal(b))
	})

	t.Run("reports a full board", func(t *testing.T) {
		b := mustParse(t, "XOX", "OXO", "OXO")

		move, _, err := p.FindMove(context.Background(), b, game.AI)

		require.ErrorIs(t, err, ErrNoMove)
		require.True(t, move.IsNone())
	})

	t.Run("names its depth", func(t *testing.T) {
		require.Equal(t, "minimax(depth=9)", p.Name())
	})
}

func TestRandomPlayer(t *testing.T) {
	t.Run("only picks empty cells", func(t *testing.T) {
		p := NewRandom(7)
		b := mustParse(t,
			"XO ",
			"OX ",
			"XO ",
		)

		for i := 0; i < 20; i++ {
			move, _, err := p.FindMove(context.Background(), b, game.Human)
			require.NoError(t, err)
			require.Equal(t, 2, move.Col)
		}
	})

	t.Run("same seed replays the same moves", func(t *testing.T) {
		b, _ := game.NewBoard(4)
		p1 := NewRandom(42)
		p2 := NewRandom(42)

		for i := 0; i < 10; i++ {
			m1, _, err1 := p1.FindMove(context.Background(), b, game.AI)
			m2, _, err2 := p2.FindMove(context.Background(), b, game.AI)
			require.NoError(t, err1)
			require.NoError(t, err2)
			require.Equal(t, m1, m2)
		}
	})

	t.Run("reports a full board", func(t *testing.T) {
		b := mustParse(t, "XO", "OX")

		_, _, err := NewRandom(1).FindMove(context.Background(), b, game.AI)

		require.ErrorIs(t, err, ErrNoMove)
	})

	t.Run("honors a canceled context", func(t *testing.T) {
		b, _ := game.NewBoard(3)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := NewRandom(1).FindMove(ctx, b, game.AI)

		require.ErrorIs(t, err, context.Canceled)
	})
}
