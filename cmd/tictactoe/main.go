package main

import (
	"flag"
	"fmt"
	"os"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/player"
	"tictactoe/searcher"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	size := flag.Int("size", meta.DefaultSize, "Board size (e.g., 3 for 3x3)")
	depth := flag.Int("depth", meta.DefaultMaxDepth, "Max depth for AI calculation")
	goroutines := flag.Int("goroutines", 1, "Number of goroutines evaluating root moves")
	pruning := flag.Bool("pruning", false, "Use alpha-beta pruning")
	aiFirst := flag.Bool("ai-first", false, "Let the AI open the game")
	logFile := flag.String("log", "tictactoe.log", "Log file")
	flag.Parse()

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	log.Logger = zerolog.New(f).With().Timestamp().Logger()

	options := []searcher.Option{
		searcher.WithMaxDepth(*depth),
		searcher.WithGoroutines(*goroutines),
		searcher.WithMetrics(),
	}
	if *pruning {
		options = append(options, searcher.WithPruning())
	}
	ai := player.NewMinimax(searcher.NewSearcher(options...))

	first := game.Human
	if *aiFirst {
		first = game.AI
	}
	m, err := newModel(*size, first, ai)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	log.Info().Int("size", *size).Int("depth", *depth).Msg("starting game")
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Error().Err(err).Msg("program exited")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
