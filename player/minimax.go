package player

import (
	"context"
	"fmt"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
)

type minimaxPlayer struct {
	searcher *searcher.Searcher
}

// NewMinimax returns a player that searches for the best move. The search
// always maximizes for game.AI, so the Human side plays on a mirrored board.
func NewMinimax(s *searcher.Searcher) Player {
	return minimaxPlayer{searcher: s}
}

func (p minimaxPlayer) Name() string {
	return fmt.Sprintf("minimax(depth=%d)", p.searcher.MaxDepth())
}

func (p minimaxPlayer) FindMove(ctx context.Context, board *game.Board, mark game.Mark) (game.Move, metrics.SearchMetric, error) {
	if mark == game.Human {
		board = board.Mirror()
	}
	result, err := p.searcher.Evaluate(ctx, board)
	if err != nil {
		return result.Move, result.Metric, fmt.Errorf("search interrupted: %w", err)
	}
	if result.Move.IsNone() {
		return result.Move, result.Metric, ErrNoMove
	}
	return result.Move, result.Metric, nil
}
