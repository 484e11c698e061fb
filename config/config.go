package config

import "github.com/namsral/flag"

type Config struct {
	Depth            int
	NodeBudget       uint64
	RandomSeed       uint64
	Games            int
	TTMemoryFraction float64
	Debug            bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("gemini", flag.ContinueOnError)
	fs.IntVar(&c.Depth, "depth", 7, "search depth in plies for the alpha-beta player")
	fs.Uint64Var(&c.NodeBudget, "node-budget", 250000, "node budget per move selection")
	fs.Uint64Var(&c.RandomSeed, "random-seed", 1, "seed for the random player")
	fs.IntVar(&c.Games, "games", 1, "number of self-play games")
	fs.Float64Var(&c.TTMemoryFraction, "tt-memory-fraction", 0, "if nonzero, size the transposition table to this fraction of system memory")
	fs.BoolVar(&c.Debug, "debug", false, "log debug events")
	err := fs.Parse(args)
	return err
}
