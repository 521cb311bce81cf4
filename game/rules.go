package game

// HasWin reports whether a full row, column or diagonal holds only mark.
// Lines are checked rows first, then columns, then both diagonals.
func HasWin(b *Board, mark Mark) bool {
	if !mark.IsPlayer() {
		return false
	}
	n := b.Size()

	for row := 0; row < n; row++ {
		if lineOf(b, mark, func(i int) (int, int) { return row, i }) {
			return true
		}
	}

	for col := 0; col < n; col++ {
		if lineOf(b, mark, func(i int) (int, int) { return i, col }) {
			return true
		}
	}

	if lineOf(b, mark, func(i int) (int, int) { return i, i }) {
		return true
	}
	return lineOf(b, mark, func(i int) (int, int) { return i, n - i - 1 })
}

func lineOf(b *Board, mark Mark, cell func(i int) (row, col int)) bool {
	for i := 0; i < b.Size(); i++ {
		if b.Get(cell(i)) != mark {
			return false
		}
	}
	return true
}

// IsTie reports whether the board is full. Callers check for a winner first.
func IsTie(b *Board) bool {
	return b.IsFull()
}

// Winner returns the mark holding a complete line, or Empty if none does.
// Human is checked before AI.
func Winner(b *Board) Mark {
	for _, mark := range []Mark{Human, AI} {
		if HasWin(b, mark) {
			return mark
		}
	}
	return Empty
}

// IsTerminal reports whether either side has won or the board is full.
func IsTerminal(b *Board) bool {
	return Winner(b) != Empty || IsTie(b)
}
