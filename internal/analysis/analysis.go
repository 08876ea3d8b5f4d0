package analysis

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/walrusbot/walrus/pkg/board"
	"github.com/walrusbot/walrus/pkg/common"
	"github.com/walrusbot/walrus/pkg/engine"
)

type Result struct {
	FEN      string
	BestMove string
	Score    common.UciScore
	Nodes    int64
	PV       string
	Time     time.Duration
}

// Service searches a list of positions, one engine per worker.
type Service struct {
	Depth   int
	Workers int
	Logger  zerolog.Logger
}

// LoadFENs reads one position per line. Blank lines and lines starting
// with # are skipped. EPD lines lose their operations and get zero clocks.
func LoadFENs(r io.Reader) ([]string, error) {
	var result []string
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var fields = strings.Fields(line)
		if len(fields) > 4 && strings.Contains(line, ";") {
			line = strings.Join(fields[:4], " ") + " 0 1"
		}
		result = append(result, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Run analyzes fens and returns results in input order. Cancellation is
// observed between positions.
func (s *Service) Run(ctx context.Context, fens []string) ([]Result, error) {
	var positions = make([]*board.Position, len(fens))
	for i, fen := range fens {
		var p, err = board.NewPositionFromFEN(fen)
		if err != nil {
			return nil, fmt.Errorf("position %v: %w", i+1, err)
		}
		positions[i] = p
	}

	var workers = max(1, s.Workers)
	s.Logger.Info().
		Int("positions", len(fens)).
		Int("workers", workers).
		Int("depth", s.Depth).
		Msg("analysis started")

	g, ctx := errgroup.WithContext(ctx)

	var jobs = make(chan int)
	var results = make([]Result, len(fens))

	g.Go(func() error {
		defer close(jobs)
		for i := range positions {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- i:
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			var eng = engine.NewEngine(engine.Options{Depth: s.Depth})
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i] = s.analyze(eng, fens[i], positions[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) analyze(eng *engine.Engine, fen string, p *board.Position) Result {
	var si = eng.Search(common.SearchParams{Position: p})
	var result = Result{
		FEN:   fen,
		Score: si.Score,
		Nodes: si.Nodes,
		PV:    common.LineString(si.MainLine),
		Time:  si.Time,
	}
	if len(si.MainLine) != 0 {
		result.BestMove = si.MainLine[0].String()
	}
	s.Logger.Debug().
		Str("fen", fen).
		Str("bestmove", result.BestMove).
		Int64("nodes", result.Nodes).
		Dur("time", result.Time).
		Msg("position analyzed")
	return result
}

func FormatScore(score common.UciScore) string {
	if score.Mate != 0 {
		return fmt.Sprintf("mate %v", score.Mate)
	}
	return fmt.Sprintf("cp %v", score.Centipawns)
}

// WriteResults prints one tab separated line per result.
func WriteResults(w io.Writer, results []Result) error {
	for _, r := range results {
		var bestMove = r.BestMove
		if bestMove == "" {
			bestMove = "0000"
		}
		var _, err = fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\n",
			r.FEN, bestMove, FormatScore(r.Score), r.Nodes, r.PV)
		if err != nil {
			return err
		}
	}
	return nil
}
