package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kapell/ataxx/config"
	"github.com/kapell/ataxx/fen"
	"github.com/kapell/ataxx/game"
	"github.com/kapell/ataxx/perft"
)

func main() {
	cfg := &config.Config{}
	cfg.Load(os.Args[1:])

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	pos := game.NewPosition()
	if cfg.StartRecord != "" {
		var err error
		pos, err = fen.Parse(cfg.StartRecord)
		if err != nil {
			log.Fatal().Err(err).Str("record", cfg.StartRecord).Msg("parsing record")
		}
	}
	log.Info().Str("record", fen.Encode(&pos)).Int("threads", cfg.Threads).
		Msg("starting perft run")

	for depth := 0; depth <= cfg.MaxDepth; depth++ {
		tstart := time.Now()
		nodes := perft.ParallelPerft(&pos, depth, cfg.Threads)
		elapsed := time.Since(tstart)
		nps := float64(nodes) / elapsed.Seconds()
		fmt.Printf("depth %d: %d\n", depth, nodes)
		log.Debug().Int("depth", depth).Uint64("nodes", nodes).
			Float64("nps", nps).Msg("level done")
	}
}
