package searcher

import (
	"math"
	"tictactoe/game"
)

// search holds the board shared by every frame of one recursive search.
// Each speculative placement is undone before the frame that made it returns.
type search struct {
	board     *game.Board
	maxDepth  int
	criterion int
	nodes     int64
}

func newSearch(board *game.Board, maxDepth int) *search {
	n := board.Size()
	return &search{
		board:     board,
		maxDepth:  maxDepth,
		criterion: n * n,
	}
}

// Minimax scores board with AI to maximize and Human to minimize. A win for
// AI scores size² − depth, a win for Human −size² + depth, and a tie or a
// position at maxDepth scores 0. The board is left as it was found.
func Minimax(board *game.Board, depth int, maximizing bool, maxDepth int) int {
	return newSearch(board, maxDepth).minimax(depth, maximizing)
}

// terminal scores positions that end the recursion.
func (s *search) terminal(depth int) (int, bool) {
	if game.HasWin(s.board, game.AI) {
		return s.criterion - depth, true
	}
	if game.HasWin(s.board, game.Human) {
		return -s.criterion + depth, true
	}
	if game.IsTie(s.board) || depth >= s.maxDepth {
		return 0, true
	}
	return 0, false
}

func (s *search) minimax(depth int, maximizing bool) int {
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
				best = max(best, s.child(row, col, game.AI, depth+1, false))
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
			best = min(best, s.child(row, col, game.Human, depth+1, true))
		}
	}
	return best
}

func (s *search) child(row, col int, mark game.Mark, depth int, maximizing bool) int {
	defer place(s.board, row, col, mark)()
	return s.minimax(depth, maximizing)
}

// place sets mark on an empty cell and returns the function that clears it.
func place(board *game.Board, row, col int, mark game.Mark) (restore func()) {
	board.Set(row, col, mark)
	return func() {
		board.Set(row, col, game.Empty)
	}
}
