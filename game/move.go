package game

import "fmt"

// Move claims the empty cell at (Row, Col).
type Move struct {
	Row int
	Col int
}

// NoMove is returned when a board has no empty cell left.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) IsNone() bool {
	return m == NoMove
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}
