package arena

import (
	"context"
	"sync"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Arena plays pairs of games from each opening, engine A taking each color once.
type Arena struct {
	Concurrency int
	MaxPlies    int
	Openings    []string
	NewEngineA  func() Player
	NewEngineB  func() Player
	Logger      zerolog.Logger
}

type Summary struct {
	Wins, Losses, Draws int
	Games               []GameResult
}

func (a *Arena) Run(ctx context.Context) (Summary, error) {
	a.Logger.Info().
		Int("openings", len(a.Openings)).
		Int("concurrency", a.Concurrency).
		Msg("arena started")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan GameResult)

	g.Go(func() error {
		defer close(gameInfos)
		return a.loadOpenings(ctx, gameInfos)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < max(1, a.Concurrency); i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var summary Summary
	for res := range gameResults {
		summary.add(res)
		var stat = computeStat(summary.Wins, summary.Losses, summary.Draws)
		a.Logger.Info().
			Int("game", res.GameNumber).
			Str("result", string(res.Outcome)).
			Str("comment", res.Comment).
			Int("wins", summary.Wins).
			Int("losses", summary.Losses).
			Int("draws", summary.Draws).
			Str("elo", formatElo(stat.eloDifference)).
			Msg("game finished")
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}
	return summary, nil
}

func (s *Summary) add(res GameResult) {
	s.Games = append(s.Games, res)
	switch {
	case res.Outcome == chess.Draw:
		s.Draws++
	case res.Outcome == chess.WhiteWon && res.EngineAIsWhite,
		res.Outcome == chess.BlackWon && !res.EngineAIsWhite:
		s.Wins++
	default:
		s.Losses++
	}
}

func (a *Arena) loadOpenings(ctx context.Context, gameInfos chan<- gameInfo) error {
	for i, opening := range a.Openings {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: false, gameNumber: 1 + 2*i + 1}:
		}
	}
	return nil
}

func (a *Arena) playGames(
	ctx context.Context,
	gameInfos <-chan gameInfo,
	gameResults chan<- GameResult,
) error {
	var engineA = a.NewEngineA()
	var engineB = a.NewEngineB()
	for info := range gameInfos {
		var white, black = engineA, engineB
		if !info.engineAIsWhite {
			white, black = black, white
		}
		var res, err = PlayGame(white, black, info.opening, a.MaxPlies)
		if err != nil {
			return err
		}
		res.GameNumber = info.gameNumber
		res.EngineAIsWhite = info.engineAIsWhite
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
