package engine

import (
	"context"
	"tictactoe/experiments/metrics"
)

type Engine interface {
	// Run plays a game until a side wins or the board is full
	Run(ctx context.Context) (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
