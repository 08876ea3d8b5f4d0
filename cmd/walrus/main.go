package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/walrusbot/walrus/internal/utils"
	"github.com/walrusbot/walrus/pkg/engine"
	"github.com/walrusbot/walrus/pkg/uci"
)

const (
	name   = "Walrus"
	author = "Walrus authors"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

func main() {
	var options = engine.NewOptions()
	var logLevel string
	flag.IntVar(&options.Depth, "depth", options.Depth, "search depth in plies")
	flag.StringVar(&logLevel, "loglevel", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	var logger, err = utils.NewLogger(os.Stderr, logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger.Info().
		Str("versionName", versionName).
		Str("buildDate", buildDate).
		Str("gitRevision", gitRevision).
		Str("runtimeVersion", runtime.Version()).
		Str("goarch", runtime.GOARCH).
		Str("goos", runtime.GOOS).
		Msg(name)

	var eng = engine.NewEngine(options)

	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "Depth", Min: 1, Max: engine.MaxDepth, Value: &eng.Options.Depth},
		},
		os.Stdout,
	)
	protocol.Run(os.Stdin, logger)
}
