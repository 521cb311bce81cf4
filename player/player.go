package player

import (
	"context"
	"errors"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

var ErrNoMove = errors.New("no legal move")

// Player chooses where mark goes next on board. Implementations must leave
// board unchanged.
type Player interface {
	FindMove(ctx context.Context, board *game.Board, mark game.Mark) (game.Move, metrics.SearchMetric, error)
	Name() string
}
