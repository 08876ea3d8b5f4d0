package common

import (
	"errors"
	"strings"
)

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const SquareCount = 64

// Squares are numbered a1 = 0, b1 = 1, ..., h8 = 63.
const (
	SquareA1 = 0
	SquareE1 = 4
	SquareH1 = 7
	SquareA8 = 56
	SquareE8 = 60
	SquareH8 = 63
)

// FlipSquare mirrors a square vertically (a1 <-> a8).
func FlipSquare(sq int) int {
	return sq ^ 0b111000
}

func File(sq int) int {
	return sq & 7
}

func Rank(sq int) int {
	return sq >> 3
}

func MakeSquare(file, rank int) int {
	return (rank << 3) | file
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func SquareName(sq int) string {
	var file = fileNames[File(sq)]
	var rank = rankNames[Rank(sq)]
	return string(file) + string(rank)
}

func ParseSquare(s string) (int, error) {
	if len(s) != 2 {
		return 0, errors.New("bad square")
	}
	var file = strings.IndexByte(fileNames, s[0])
	var rank = strings.IndexByte(rankNames, s[1])
	if file < 0 || rank < 0 {
		return 0, errors.New("bad square")
	}
	return MakeSquare(file, rank), nil
}
