package engine

import (
	"github.com/rs/zerolog"

	. "github.com/walrusbot/walrus/pkg/common"
)

type nopReporter struct{}

func (nopReporter) CurrentMove(index int, move Move) {}
func (nopReporter) BestLine(si SearchInfo)           {}

// LogReporter writes root events as structured log records.
type LogReporter struct {
	Logger zerolog.Logger
}

func (r LogReporter) CurrentMove(index int, move Move) {
	r.Logger.Debug().
		Int("index", index).
		Str("move", move.String()).
		Msg("currmove")
}

func (r LogReporter) BestLine(si SearchInfo) {
	var ev = r.Logger.Info().
		Int("depth", si.Depth).
		Int64("nodes", si.Nodes).
		Dur("time", si.Time)
	if si.Score.Mate != 0 {
		ev = ev.Int("mate", si.Score.Mate)
	} else {
		ev = ev.Int("cp", si.Score.Centipawns)
	}
	ev.Str("pv", LineString(si.MainLine)).Msg("bestline")
}

// MultiReporter fans root events out to several reporters.
type MultiReporter []Reporter

func (m MultiReporter) CurrentMove(index int, move Move) {
	for _, r := range m {
		r.CurrentMove(index, move)
	}
}

func (m MultiReporter) BestLine(si SearchInfo) {
	for _, r := range m {
		r.BestLine(si)
	}
}
