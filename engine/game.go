package engine

import (
	"errors"
	"fmt"
	"tictactoe/game"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrNotYourTurn = errors.New("not your turn")
)

type Status int

const (
	InProgress Status = iota
	Won
	Tie
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Tie:
		return "tie"
	default:
		return "in progress"
	}
}

// Game is the state of one match: the board, whose turn it is, and how the
// match stands.
type Game struct {
	board         *game.Board
	currentPlayer game.Mark
	status        Status
	winner        game.Mark
	moves         []game.Move
}

// NewGame starts a game on an empty board with first to move.
func NewGame(size int, first game.Mark) (*Game, error) {
	if !first.IsPlayer() {
		return nil, fmt.Errorf("first player must be Human or AI, got %q", first.String())
	}
	board, err := game.NewBoard(size)
	if err != nil {
		return nil, err
	}
	return &Game{
		board:         board,
		currentPlayer: first,
	}, nil
}

// Board returns a copy of the current board.
func (g *Game) Board() *game.Board {
	return g.board.Copy()
}

func (g *Game) CurrentPlayer() game.Mark {
	return g.currentPlayer
}

func (g *Game) Status() Status {
	return g.status
}

// Winner returns the winning mark, or game.Empty while in progress or tied.
func (g *Game) Winner() game.Mark {
	return g.winner
}

// Moves returns the committed moves in play order.
func (g *Game) Moves() []game.Move {
	return append([]game.Move(nil), g.moves...)
}

// Play commits move for the side to move, then checks for a win or a tie
// before passing the turn.
func (g *Game) Play(move game.Move) error {
	if g.status != InProgress {
		return ErrGameOver
	}
	if err := g.board.Place(move, g.currentPlayer); err != nil {
		return err
	}
	g.moves = append(g.moves, move)

	if game.HasWin(g.board, g.currentPlayer) {
		g.status = Won
		g.winner = g.currentPlayer
		return nil
	}
	if game.IsTie(g.board) {
		g.status = Tie
		return nil
	}
	g.currentPlayer = g.currentPlayer.Opponent()
	return nil
}

// PlayAs is Play with a check that mark is the side to move.
func (g *Game) PlayAs(mark game.Mark, move game.Move) error {
	if g.status == InProgress && mark != g.currentPlayer {
		return fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.currentPlayer)
	}
	return g.Play(move)
}
