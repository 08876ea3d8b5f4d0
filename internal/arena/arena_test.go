package arena

import (
	"context"
	"testing"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
)

const mateInOne = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"

func TestRandomGameTerminates(t *testing.T) {
	for i := 0; i < 5; i++ {
		var res, err = PlayGame(RandomPlayer{}, RandomPlayer{}, chess.StartingPosition().String(), 40)
		if err != nil {
			t.Fatal(err)
		}
		if res.Outcome == chess.NoOutcome {
			t.Fatalf("game %v has no outcome", i)
		}
		if res.Plies > 40 {
			t.Errorf("game %v: %v plies", i, res.Plies)
		}
		if res.PGN == "" {
			t.Error("empty PGN")
		}
	}
}

func TestEngineFindsMate(t *testing.T) {
	var res, err = PlayGame(NewEnginePlayer(2), RandomPlayer{}, mateInOne, 100)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != chess.WhiteWon || res.Plies != 1 {
		t.Errorf("got %v after %v plies, want 1-0 after 1", res.Outcome, res.Plies)
	}
	if res.Comment != chess.Checkmate.String() {
		t.Errorf("comment %q", res.Comment)
	}
}

func TestArenaSummary(t *testing.T) {
	var openings = Openings("")[:2]
	var a = &Arena{
		Concurrency: 2,
		MaxPlies:    20,
		Openings:    openings,
		NewEngineA:  func() Player { return NewEnginePlayer(1) },
		NewEngineB:  func() Player { return RandomPlayer{} },
		Logger:      zerolog.Nop(),
	}
	var summary, err = a.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Games) != 2*len(openings) {
		t.Fatalf("%v games played", len(summary.Games))
	}
	if summary.Wins+summary.Losses+summary.Draws != len(summary.Games) {
		t.Errorf("summary %+v does not add up", summary)
	}
	var seen = make(map[int]bool)
	for _, g := range summary.Games {
		seen[g.GameNumber] = true
	}
	for i := 1; i <= len(summary.Games); i++ {
		if !seen[i] {
			t.Errorf("game %v missing", i)
		}
	}
}

func TestArenaCanceled(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var a = &Arena{
		Concurrency: 1,
		MaxPlies:    10,
		Openings:    Openings(""),
		NewEngineA:  func() Player { return RandomPlayer{} },
		NewEngineB:  func() Player { return RandomPlayer{} },
		Logger:      zerolog.Nop(),
	}
	if _, err := a.Run(ctx); err == nil {
		t.Error("expected error")
	}
}

func TestComputeStat(t *testing.T) {
	var s = computeStat(10, 10, 5)
	if s.winningFraction != 0.5 || s.eloDifference != 0 || s.los != 0.5 {
		t.Errorf("even match: %+v", s)
	}
	s = computeStat(15, 5, 0)
	if s.eloDifference <= 0 || s.los <= 0.5 {
		t.Errorf("winning match: %+v", s)
	}
}

func TestOpenings(t *testing.T) {
	var list = Openings("// comment\n\nfen one\n  fen two  \n")
	if len(list) != 2 || list[0] != "fen one" || list[1] != "fen two" {
		t.Errorf("got %q", list)
	}
	for _, fen := range Openings("") {
		if _, err := chess.FEN(fen); err != nil {
			t.Errorf("%v: %v", fen, err)
		}
	}
}

func TestFormatSummary(t *testing.T) {
	var tests = []struct {
		summary Summary
		want    string
	}{
		{Summary{Wins: 1, Losses: 1, Draws: 2}, "+1 -1 =2 score 50.0% elo 0.0 los 50.0%"},
		{Summary{Wins: 4}, "+4 -0 =0 score 100.0% elo n/a los 97.7%"},
		{Summary{Losses: 2}, "+0 -2 =0 score 0.0% elo n/a los 7.9%"},
		{Summary{}, "+0 -0 =0 score 0.0% elo 0.0 los 0.0%"},
	}
	for _, test := range tests {
		if got := FormatSummary(test.summary); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}
