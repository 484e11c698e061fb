package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shimajiteppei/gemini/ai"
	"github.com/shimajiteppei/gemini/ai/negamax"
	"github.com/shimajiteppei/gemini/automatic"
	"github.com/shimajiteppei/gemini/config"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	newBlack := func(int) ai.Player {
		s := negamax.NewSolver(cfg.Depth)
		s.SetNodeBudget(cfg.NodeBudget)
		if cfg.TTMemoryFraction > 0 {
			t := negamax.NewTranspositionTable(negamax.DefaultTableSize)
			t.Reset(cfg.TTMemoryFraction)
			s.SetTranspositionTable(t)
		}
		return s
	}
	newWhite := func(i int) ai.Player {
		return ai.NewRandomPlayer(cfg.RandomSeed + uint64(i))
	}

	result, err := automatic.PlaySeries(cfg.Games, newBlack, newWhite)
	if err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
	log.Info().Int("black-wins", result.BlackWins).
		Int("white-wins", result.WhiteWins).
		Int("draws", result.Draws).
		Msg("done")
}
