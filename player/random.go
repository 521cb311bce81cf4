package player

import (
	"context"
	"fmt"
	"sync"
	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

type randomPlayer struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed uint64
}

// NewRandom returns a player that picks uniformly among the empty cells.
// Equal seeds replay the same moves.
func NewRandom(seed uint64) Player {
	return &randomPlayer{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

func (p *randomPlayer) Name() string {
	return fmt.Sprintf("random(seed=%d)", p.seed)
}

func (p *randomPlayer) FindMove(ctx context.Context, board *game.Board, mark game.Mark) (game.Move, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return game.NoMove, metrics.SearchMetric{}, err
	}
	moves := board.EmptyCells()
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}, ErrNoMove
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return moves[p.rng.Intn(len(moves))], metrics.SearchMetric{Candidates: len(moves)}, nil
}
