package engine

import (
	"errors"
	"testing"
	"tictactoe/game"
)

func TestNewGame(t *testing.T) {
	g, err := NewGame(3, game.Human)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if g.CurrentPlayer() != game.Human {
		t.Errorf("expected Human to move first, got %v", g.CurrentPlayer())
	}
	if g.Status() != InProgress {
		t.Errorf("expected status in progress, got %v", g.Status())
	}
	if len(g.Board().EmptyCells()) != 9 {
		t.Errorf("expected an empty 3x3 board, got\n%s", g.Board())
	}

	if _, err := NewGame(0, game.Human); !errors.Is(err, game.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize for size 0, got %v", err)
	}
	if _, err := NewGame(3, game.Empty); err == nil {
		t.Error("expected error for an empty first player, got none")
	}
}

func TestGamePlay_AlternatesTurns(t *testing.T) {
	g, _ := NewGame(3, game.Human)

	if err := g.Play(game.Move{Row: 1, Col: 1}); err != nil {
		t.Fatalf("expected no error for a valid move, got %v", err)
	}
	if g.CurrentPlayer() != game.AI {
		t.Errorf("expected AI to move second, got %v", g.CurrentPlayer())
	}

	if err := g.Play(game.Move{Row: 0, Col: 0}); err != nil {
		t.Fatalf("expected no error for a valid move, got %v", err)
	}
	if g.CurrentPlayer() != game.Human {
		t.Errorf("expected turn to pass back to Human, got %v", g.CurrentPlayer())
	}

	board := g.Board()
	if board.Get(1, 1) != game.Human || board.Get(0, 0) != game.AI {
		t.Errorf("expected marks to be committed, got\n%s", board)
	}
	if len(g.Moves()) != 2 {
		t.Errorf("expected 2 recorded moves, got %d", len(g.Moves()))
	}
}

func TestGamePlay_IllegalMove(t *testing.T) {
	g, _ := NewGame(3, game.Human)
	_ = g.Play(game.Move{Row: 0, Col: 0})

	err := g.Play(game.Move{Row: 0, Col: 0})
	if !errors.Is(err, game.ErrInvalidMove) {
		t.Errorf("expected ErrInvalidMove for an occupied cell, got %v", err)
	}
	if g.CurrentPlayer() != game.AI {
		t.Errorf("expected the turn to stay with AI after an illegal move, got %v", g.CurrentPlayer())
	}

	err = g.Play(game.Move{Row: 3, Col: 0})
	if !errors.Is(err, game.ErrInvalidMove) {
		t.Errorf("expected ErrInvalidMove for an out of bounds cell, got %v", err)
	}
}

func TestGamePlay_Win(t *testing.T) {
	g, _ := NewGame(3, game.Human)
	moves := []game.Move{
		{Row: 0, Col: 0}, // X
		{Row: 1, Col: 0}, // O
		{Row: 0, Col: 1}, // X
		{Row: 1, Col: 1}, // O
		{Row: 0, Col: 2}, // X wins
	}
	for _, move := range moves {
		if err := g.Play(move); err != nil {
			t.Fatalf("unexpected error playing %s: %v", move, err)
		}
	}

	if g.Status() != Won || g.Winner() != game.Human {
		t.Errorf("expected Human to win, got status=%v winner=%v", g.Status(), g.Winner())
	}

	err := g.Play(game.Move{Row: 2, Col: 2})
	if err == nil || err.Error() != "game is over - no moves allowed" {
		t.Errorf("expected 'game is over - no moves allowed' error, got %v", err)
	}
}

func TestGamePlay_Tie(t *testing.T) {
	g, _ := NewGame(3, game.Human)
	// X O X
	// X O O
	// O X X
	moves := []game.Move{
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 0, Col: 2}, {Row: 1, Col: 1},
		{Row: 1, Col: 0}, {Row: 2, Col: 0},
		{Row: 2, Col: 1}, {Row: 1, Col: 2},
		{Row: 2, Col: 2},
	}
	for _, move := range moves {
		if err := g.Play(move); err != nil {
			t.Fatalf("unexpected error playing %s: %v", move, err)
		}
	}

	if g.Status() != Tie {
		t.Errorf("expected a tie, got %v\n%s", g.Status(), g.Board())
	}
	if g.Winner() != game.Empty {
		t.Errorf("expected no winner, got %v", g.Winner())
	}
}

func TestGamePlayAs(t *testing.T) {
	g, _ := NewGame(3, game.AI)

	err := g.PlayAs(game.Human, game.Move{Row: 0, Col: 0})
	if !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("expected ErrNotYourTurn, got %v", err)
	}

	if err := g.PlayAs(game.AI, game.Move{Row: 0, Col: 0}); err != nil {
		t.Errorf("expected no error for the side to move, got %v", err)
	}
}

func TestGameBoardIsACopy(t *testing.T) {
	g, _ := NewGame(3, game.Human)

	b := g.Board()
	b.Set(0, 0, game.AI)

	if g.Board().Get(0, 0) != game.Empty {
		t.Error("expected the game board to be unaffected by changes to the returned copy")
	}
}
