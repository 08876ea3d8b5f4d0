package engine

import (
	. "github.com/walrusbot/walrus/pkg/common"
)

const (
	valueDraw = 0
	// Checkmate is the score of a mated side. No material or positional
	// score comes near it.
	Checkmate     = 100_000_000
	valueInfinity = Checkmate + 1
)

// MateMoves converts a mate distance in plies into full moves, positive when
// the side to move delivers the mate. It returns 0 when score is not a mate.
func MateMoves(score, plies int) int {
	if plies <= 0 || (score < Checkmate && score > -Checkmate) {
		return 0
	}
	var moves = (plies + 1) / 2
	if score < 0 {
		return -moves
	}
	return moves
}

func newUciScore(score, matePlies int) UciScore {
	if mate := MateMoves(score, matePlies); mate != 0 {
		return UciScore{Mate: mate}
	}
	return UciScore{Centipawns: score}
}

func nextPly(plies int) int {
	if plies == 0 {
		return 0
	}
	return plies + 1
}

func prependMove(m Move, line []Move) []Move {
	var result = make([]Move, 1+len(line))
	result[0] = m
	copy(result[1:], line)
	return result
}
