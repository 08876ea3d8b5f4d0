package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/walrusbot/walrus/internal/arena"
	"github.com/walrusbot/walrus/internal/utils"
)

type config struct {
	concurrency int
	depthA      int
	depthB      int
	random      bool
	maxPlies    int
	games       int
	openings    string
	pgn         string
	logLevel    string
}

func main() {
	var cfg = config{}
	flag.IntVar(&cfg.concurrency, "concurrency", 4, "number of games played at once")
	flag.IntVar(&cfg.depthA, "depth", 4, "search depth of engine A")
	flag.IntVar(&cfg.depthB, "depthb", 3, "search depth of engine B")
	flag.BoolVar(&cfg.random, "random", false, "engine B plays random moves")
	flag.IntVar(&cfg.maxPlies, "maxplies", 300, "adjudicate a draw after this many plies")
	flag.IntVar(&cfg.games, "games", 0, "number of games, 0 plays every opening twice")
	flag.StringVar(&cfg.openings, "openings", "", "file with opening FENs")
	flag.StringVar(&cfg.pgn, "pgn", "", "file to write games to")
	flag.StringVar(&cfg.logLevel, "loglevel", "info", "log level")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	var logger, err = utils.NewLogger(os.Stderr, cfg.logLevel)
	if err != nil {
		return err
	}

	var text string
	if cfg.openings != "" {
		var data, err = os.ReadFile(cfg.openings)
		if err != nil {
			return err
		}
		text = string(data)
	}
	var openings = arena.Openings(text)
	if cfg.games > 0 {
		openings = cycle(openings, (cfg.games+1)/2)
	}

	var a = &arena.Arena{
		Concurrency: cfg.concurrency,
		MaxPlies:    cfg.maxPlies,
		Openings:    openings,
		NewEngineA:  func() arena.Player { return arena.NewEnginePlayer(cfg.depthA) },
		NewEngineB: func() arena.Player {
			if cfg.random {
				return arena.RandomPlayer{}
			}
			return arena.NewEnginePlayer(cfg.depthB)
		},
		Logger: logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := a.Run(ctx)
	if cfg.pgn != "" {
		if werr := writePGN(cfg.pgn, summary); werr != nil && err == nil {
			err = werr
		}
	}
	fmt.Println(arena.FormatSummary(summary))
	return err
}

func cycle(openings []string, n int) []string {
	var result = make([]string, 0, n)
	for i := 0; i < n && len(openings) > 0; i++ {
		result = append(result, openings[i%len(openings)])
	}
	return result
}

func writePGN(path string, summary arena.Summary) error {
	var f, err = os.Create(path)
	if err != nil {
		return err
	}
	for _, g := range summary.Games {
		if _, err := fmt.Fprintf(f, "%s\n\n", g.PGN); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
