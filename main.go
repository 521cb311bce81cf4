package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"tictactoe/experiments"
	"tictactoe/meta"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	name := flag.String("experiment", "depth", "Experiment to run: depth or parallelization")
	size := flag.Int("size", meta.DefaultSize, "Board size")
	numGames := flag.Int("games", meta.NUM_GAMES, "Number of games per match-up")
	outDir := flag.String("out", "experiments", "Directory for experiment results")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(*level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	x := experiments.Experiment{Name: *name, Size: *size, NumGames: *numGames, OutDir: *outDir}

	var (
		summary experiments.Summary
		err     error
	)
	switch *name {
	case "depth":
		summary, err = x.RunDepthExperiment(ctx)
	case "parallelization":
		summary, err = x.RunParallelizationExperiment(ctx)
	default:
		log.Fatal().Msgf("unknown experiment %q", *name)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *name)
	}

	log.Info().
		Int("games", summary.Games).
		Int("ties", summary.Ties).
		Interface("wins", summary.Wins).
		Msg("experiment finished")
}
