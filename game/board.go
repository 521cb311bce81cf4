package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSize = errors.New("board size must be positive")
	ErrInvalidMove = errors.New("invalid move")
)

// Board is an N×N grid of marks stored in row-major order.
type Board struct {
	size  int
	cells []Mark
}

// NewBoard returns an empty board of the given size.
func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return &Board{
		size:  size,
		cells: make([]Mark, size*size),
	}, nil
}

// ParseBoard builds a board from one string per row, using the printed
// symbols ("X", "O", and " " or "." for empty cells).
func ParseBoard(rows ...string) (*Board, error) {
	b, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != b.size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(runes), b.size)
		}
		for c, symbol := range runes {
			mark, ok := ParseMark(symbol)
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown symbol %q", r, c, symbol)
			}
			b.Set(r, c, mark)
		}
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("cell (%d, %d) is out of bounds for size %d", row, col, b.size))
	}
	return row*b.size + col
}

// Get returns the mark at (row, col). It panics if the cell is out of bounds.
func (b *Board) Get(row, col int) Mark {
	return b.cells[b.index(row, col)]
}

// Set overwrites the cell without checking whether it is empty. Search code
// uses it for speculative placements it restores afterwards. It panics if
// the cell is out of bounds.
func (b *Board) Set(row, col int, mark Mark) {
	b.cells[b.index(row, col)] = mark
}

// Place commits mark on an empty in-bounds cell.
func (b *Board) Place(move Move, mark Mark) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: cannot place an empty mark", ErrInvalidMove)
	}
	if !b.InBounds(move.Row, move.Col) {
		return fmt.Errorf("%w: %s is out of bounds for size %d", ErrInvalidMove, move, b.size)
	}
	if b.Get(move.Row, move.Col) != Empty {
		return fmt.Errorf("%w: %s is already taken", ErrInvalidMove, move)
	}
	b.Set(move.Row, move.Col, mark)
	return nil
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

func (b *Board) IsEmpty(row, col int) bool {
	return b.InBounds(row, col) && b.Get(row, col) == Empty
}

// IsFull reports whether no cell is empty.
func (b *Board) IsFull() bool {
	for _, cell := range b.cells {
		if cell == Empty {
			return false
		}
	}
	return true
}

// EmptyCells lists the empty cells in row-major order.
func (b *Board) EmptyCells() []Move {
	moves := []Move{}
	for i, cell := range b.cells {
		if cell == Empty {
			moves = append(moves, Move{Row: i / b.size, Col: i % b.size})
		}
	}
	return moves
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cells := make([]Mark, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Mirror returns a copy with the Human and AI marks swapped.
func (b *Board) Mirror() *Board {
	mirrored := b.Copy()
	for i, cell := range mirrored.cells {
		mirrored.cells[i] = cell.Opponent()
	}
	return mirrored
}

// Equal reports whether both boards have the same size and cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (b *Board) String() string {
	var sb strings.Builder
	separator := strings.Repeat("-", b.size*4) + "\n"
	sb.WriteString(separator)
	for row := 0; row < b.size; row++ {
		symbols := make([]string, b.size)
		for col := 0; col < b.size; col++ {
			symbols[col] = b.Get(row, col).String()
		}
		sb.WriteString("| " + strings.Join(symbols, " | ") + " |\n")
		sb.WriteString(separator)
	}
	return sb.String()
}
