package config

import (
	"runtime"

	"github.com/namsral/flag"
)

type Config struct {
	StartRecord string
	MaxDepth    int
	Threads     int
	Debug       bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("ataxx", flag.ContinueOnError)
	fs.StringVar(&c.StartRecord, "record", "", "record notation of the position to start from; empty for the standard start")
	fs.IntVar(&c.MaxDepth, "max-depth", 8, "deepest perft level to run")
	fs.IntVar(&c.Threads, "threads", runtime.NumCPU(), "worker count for parallel perft")
	fs.BoolVar(&c.Debug, "debug", false, "debug logging")
	err := fs.Parse(args)
	return err
}
