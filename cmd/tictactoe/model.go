package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/player"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

type aiMoveMsg struct {
	move   game.Move
	metric metrics.SearchMetric
	err    error
}

type model struct {
	size     int
	first    game.Mark
	game     *engine.Game
	ai       player.Player
	cursor   game.Move
	thinking bool
	message  string
}

func newModel(size int, first game.Mark, ai player.Player) (model, error) {
	g, err := engine.NewGame(size, first)
	if err != nil {
		return model{}, err
	}
	return model{
		size:     size,
		first:    first,
		game:     g,
		ai:       ai,
		thinking: first == game.AI,
	}, nil
}

func (m model) Init() tea.Cmd {
	if m.thinking {
		return m.searchAI()
	}
	return nil
}

// searchAI searches on a copy of the board so the view never sees
// speculative placements.
func (m model) searchAI() tea.Cmd {
	board := m.game.Board()
	ai := m.ai
	return func() tea.Msg {
		move, metric, err := ai.FindMove(context.Background(), board, game.AI)
		return aiMoveMsg{move: move, metric: metric, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case aiMoveMsg:
		m.thinking = false
		if msg.err != nil {
			m.message = fmt.Sprintf("AI failed to move: %v", msg.err)
			log.Error().Err(msg.err).Msg("ai move")
			return m, nil
		}
		if err := m.game.PlayAs(game.AI, msg.move); err != nil {
			m.message = err.Error()
			log.Error().Err(err).Stringer("move", msg.move).Msg("ai move rejected")
			return m, nil
		}
		m.message = fmt.Sprintf("AI plays %d, %d", msg.move.Row, msg.move.Col)
		log.Info().
			Stringer("move", msg.move).
			Int("score", msg.metric.Score).
			Int64("nodes", msg.metric.Nodes).
			Dur("duration", msg.metric.Duration).
			Msg("ai played")
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		if m.thinking {
			return m, nil
		}
		restarted, err := newModel(m.size, m.first, m.ai)
		if err != nil {
			m.message = err.Error()
			return m, nil
		}
		log.Info().Msg("game restarted")
		return restarted, restarted.Init()
	case "up", "k":
		m.cursor.Row = max(m.cursor.Row-1, 0)
	case "down", "j":
		m.cursor.Row = min(m.cursor.Row+1, m.size-1)
	case "left", "h":
		m.cursor.Col = max(m.cursor.Col-1, 0)
	case "right", "l":
		m.cursor.Col = min(m.cursor.Col+1, m.size-1)
	case "enter", " ":
		return m.playHuman()
	}
	return m, nil
}

func (m model) playHuman() (tea.Model, tea.Cmd) {
	if m.thinking || m.game.Status() != engine.InProgress {
		return m, nil
	}
	err := m.game.PlayAs(game.Human, m.cursor)
	switch {
	case errors.Is(err, game.ErrInvalidMove):
		m.message = "Invalid move. Please try again."
		return m, nil
	case err != nil:
		m.message = err.Error()
		return m, nil
	}
	log.Info().Stringer("move", m.cursor).Msg("human played")
	m.message = ""

	if m.game.Status() != engine.InProgress {
		return m, nil
	}
	m.thinking = true
	return m, m.searchAI()
}

func (m model) View() string {
	var sb strings.Builder
	board := m.game.Board()

	separator := strings.Repeat("-", m.size*4+1) + "\n"
	sb.WriteString(separator)
	for row := 0; row < m.size; row++ {
		sb.WriteString("|")
		for col := 0; col < m.size; col++ {
			symbol := board.Get(row, col).String()
			if m.cursor == (game.Move{Row: row, Col: col}) && m.game.Status() == engine.InProgress {
				sb.WriteString("[" + symbol + "]|")
			} else {
				sb.WriteString(" " + symbol + " |")
			}
		}
		sb.WriteString("\n" + separator)
	}

	sb.WriteString("\n")
	switch m.game.Status() {
	case engine.Won:
		sb.WriteString(fmt.Sprintf("%s wins!\n", m.game.Winner()))
	case engine.Tie:
		sb.WriteString("It's a tie!\n")
	default:
		if m.thinking {
			sb.WriteString("AI is thinking...\n")
		} else {
			sb.WriteString(fmt.Sprintf("%s to move\n", m.game.CurrentPlayer()))
		}
	}
	if m.message != "" {
		sb.WriteString(m.message + "\n")
	}
	sb.WriteString("\narrows/hjkl: move  enter: place  r: restart  q: quit\n")
	return sb.String()
}
