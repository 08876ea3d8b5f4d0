package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/walrusbot/walrus/internal/server"
	"github.com/walrusbot/walrus/internal/utils"
	"github.com/walrusbot/walrus/pkg/engine"
)

func main() {
	var addr, logLevel string
	var options = engine.NewOptions()
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.IntVar(&options.Depth, "depth", 4, "default search depth")
	flag.StringVar(&logLevel, "loglevel", "info", "log level")
	flag.Parse()

	if err := run(addr, logLevel, options); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(addr, logLevel string, options engine.Options) error {
	var logger, err = utils.NewLogger(os.Stderr, logLevel)
	if err != nil {
		return err
	}
	var srv = &http.Server{
		Addr:    addr,
		Handler: server.New(engine.NewEngine(options), logger).Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("addr", addr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
