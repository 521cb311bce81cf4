package searcher

import (
	"context"
	"math"
	"sync"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/meta"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Candidate is a root move together with its minimax score. With pruning,
// a move that cannot beat an earlier one carries an upper bound instead.
type Candidate struct {
	Move  game.Move
	Score int
}

type Result struct {
	Move       game.Move
	Score      int
	Candidates []Candidate
	Metric     metrics.SearchMetric
}

// Searcher picks the AI's move by scoring every empty cell with minimax.
type Searcher struct {
	maxDepth     int
	goroutines   int
	pruning      bool
	newCollector func() metrics.Collector
}

func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithGoroutines evaluates root moves in parallel on copies of the board.
func WithGoroutines(goroutines int) Option {
	return func(s *Searcher) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithPruning scores root moves with alpha-beta instead of plain minimax.
// The chosen move and its score do not change.
func WithPruning() Option {
	return func(s *Searcher) {
		s.pruning = true
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.newCollector = metrics.NewCollector
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		maxDepth:     meta.DefaultMaxDepth,
		goroutines:   1,
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) MaxDepth() int {
	return s.maxDepth
}

// SelectMove returns the move Searcher would play for AI on board, or
// game.NoMove when the board is full. A maxDepth of 0 or less searches to
// meta.DefaultMaxDepth, unlike Minimax which scores that horizon as 0.
func SelectMove(board *game.Board, maxDepth int) game.Move {
	result, _ := NewSearcher(WithMaxDepth(maxDepth)).Evaluate(context.Background(), board)
	return result.Move
}

func (s *Searcher) SelectMove(ctx context.Context, board *game.Board) (game.Move, error) {
	result, err := s.Evaluate(ctx, board)
	return result.Move, err
}

// Evaluate scores every empty cell of board in row-major order and keeps the
// first move with the strictly greatest score. The board is unchanged on
// return. When ctx is done the search stops between root moves and the best
// move found so far is returned along with ctx.Err().
func (s *Searcher) Evaluate(ctx context.Context, board *game.Board) (Result, error) {
	collector := s.newCollector()
	collector.Start(s.goroutines, s.maxDepth, s.pruning)

	moves := board.EmptyCells()
	var scores []*int
	if s.goroutines > 1 && len(moves) > 1 {
		scores = s.scoreParallel(ctx, board, moves, collector)
	} else {
		scores = s.scoreSequential(ctx, board, moves, collector)
	}

	result := Result{Move: game.NoMove, Score: math.MinInt}
	for i, score := range scores {
		if score == nil { // Not reached before cancellation
			continue
		}
		result.Candidates = append(result.Candidates, Candidate{Move: moves[i], Score: *score})
		if *score > result.Score {
			result.Score = *score
			result.Move = moves[i]
		}
	}

	err := ctx.Err()
	result.Metric = collector.Complete(result.Score, err != nil)
	log.Debug().
		Stringer("move", result.Move).
		Int("score", result.Score).
		Int64("nodes", result.Metric.Nodes).
		Dur("duration", result.Metric.Duration).
		Msg("selected move")
	return result, err
}

func (s *Searcher) scoreSequential(ctx context.Context, board *game.Board, moves []game.Move, collector metrics.Collector) []*int {
	scores := make([]*int, len(moves))
	best := math.MinInt
	for i, move := range moves {
		if ctx.Err() != nil {
			break
		}
		score := s.scoreMove(board, move, best, collector)
		best = max(best, score)
		scores[i] = &score
	}
	return scores
}

func (s *Searcher) scoreParallel(ctx context.Context, board *game.Board, moves []game.Move, collector metrics.Collector) []*int {
	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	scores := make([]*int, len(moves))
	var wg sync.WaitGroup
	for i := 0; i < min(s.goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				if ctx.Err() != nil {
					return
				}
				// Each root move gets its own exact score, so no window is shared.
				score := s.scoreMove(board.Copy(), moves[i], math.MinInt, collector)
				scores[i] = &score
			}
		}()
	}

	wg.Wait()
	return scores
}

// scoreMove places AI on move, scores the reply, and clears the cell again.
// With pruning, scores at or below floor are upper bounds and never beat it.
func (s *Searcher) scoreMove(board *game.Board, move game.Move, floor int, collector metrics.Collector) int {
	defer place(board, move.Row, move.Col, game.AI)()

	sr := newSearch(board, s.maxDepth)
	var score int
	if s.pruning {
		score = sr.alphaBeta(0, floor, math.MaxInt, false)
	} else {
		score = sr.minimax(0, false)
	}
	collector.AddNodes(sr.nodes)
	collector.AddCandidate()
	return score
}
