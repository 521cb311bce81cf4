package searcher

import (
	"math"
	"tictactoe/game"
)

// MinimaxAlphaBeta returns the same score as Minimax for any root window
// that contains the true value. Outside the window the result is only a
// bound, which is enough to rank root moves.
func MinimaxAlphaBeta(board *game.Board, depth int, maximizing bool, maxDepth int) int {
	return newSearch(board, maxDepth).alphaBeta(depth, math.MinInt, math.MaxInt, maximizing)
}

func (s *search) alphaBeta(depth, alpha, beta int, maximizing bool) int {
	s.nodes++
	if score, ok := s.terminal(depth); ok {
		return score
	}

	n := s.board.Size()
	if maximizing {
		best := math.MinInt
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				if s.board.Get(row, col) != game.Empty {
					continue
				}
				best = max(best, s.childAlphaBeta(row, col, game.AI, depth+1, alpha, beta, false))
				alpha = max(alpha, best)
				if alpha >= beta {
					return best
				}
			}
		}
		return best
	}

	best := math.MaxInt
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if s.board.Get(row, col) != game.Empty {
				continue
			}
			best = min(best, s.childAlphaBeta(row, col, game.Human, depth+1, alpha, beta, true))
			beta = min(beta, best)
			if alpha >= beta {
				return best
			}
		}
	}
	return best
}

func (s *search) childAlphaBeta(row, col int, mark game.Mark, depth, alpha, beta int, maximizing bool) int {
	defer place(s.board, row, col, mark)()
	return s.alphaBeta(depth, alpha, beta, maximizing)
}
