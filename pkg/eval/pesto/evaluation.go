package pesto

import (
	. "github.com/walrusbot/walrus/pkg/common"
)

// MaxPhase is the game phase of a full set of pieces.
const MaxPhase = 24

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate scores p for the side to move.
func (e *EvaluationService) Evaluate(p Position) int {
	return Trace(p).Score
}

// Breakdown is the detail behind one static evaluation.
type Breakdown struct {
	Middle  int // middle-game score for the side to move
	End     int // end-game score for the side to move
	MgPhase int
	EgPhase int
	Score   int
}

func Trace(p Position) Breakdown {
	var (
		mg, eg [2]int
		phase  int
	)
	for sq := 0; sq < SquareCount; sq++ {
		var piece = p.PieceOn(sq)
		if piece == PieceNone {
			continue
		}
		var side, kind = piece.Side(), piece.Kind()
		mg[side] += mgTable[side][kind][sq]
		eg[side] += egTable[side][kind][sq]
		phase += phaseIncrement[kind]
	}

	var us, them = SideWhite, SideBlack
	if !p.WhiteToMove() {
		us, them = them, us
	}

	var b = Breakdown{
		Middle:  mg[us] - mg[them],
		End:     eg[us] - eg[them],
		MgPhase: min(phase, MaxPhase),
	}
	b.EgPhase = MaxPhase - b.MgPhase
	b.Score = (b.MgPhase*b.Middle + b.EgPhase*b.End) / MaxPhase
	return b
}
