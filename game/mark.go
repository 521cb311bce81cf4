package game

// Mark is the content of a board cell.
type Mark int

const (
	Empty Mark = iota
	Human
	AI
)

func (m Mark) String() string {
	switch m {
	case Human:
		return "X"
	case AI:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case Human:
		return AI
	case AI:
		return Human
	default:
		return Empty
	}
}

// IsPlayer reports whether m belongs to one of the two players.
func (m Mark) IsPlayer() bool {
	return m == Human || m == AI
}

// ParseMark maps a printed symbol back to its mark.
func ParseMark(r rune) (Mark, bool) {
	switch r {
	case 'X', 'x':
		return Human, true
	case 'O', 'o':
		return AI, true
	case ' ', '.', '_':
		return Empty, true
	default:
		return Empty, false
	}
}
