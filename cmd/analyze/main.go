package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/walrusbot/walrus/internal/analysis"
	"github.com/walrusbot/walrus/internal/utils"
	"github.com/walrusbot/walrus/pkg/engine"
)

type config struct {
	input    string
	depth    int
	workers  int
	logLevel string
}

func main() {
	var cfg = config{}
	flag.StringVar(&cfg.input, "input", "", "file with one FEN or EPD per line (default stdin)")
	flag.IntVar(&cfg.depth, "depth", engine.DefaultDepth, "search depth in plies")
	flag.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "number of concurrent searches")
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

	var in io.Reader = os.Stdin
	if cfg.input != "" {
		var f, err = os.Open(cfg.input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	fens, err := analysis.LoadFENs(in)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var service = &analysis.Service{
		Depth:   cfg.depth,
		Workers: cfg.workers,
		Logger:  logger,
	}
	results, err := service.Run(ctx, fens)
	if err != nil {
		return err
	}
	return analysis.WriteResults(os.Stdout, results)
}
