package common

import "time"

// Move is one legal transition produced by a Position.
type Move interface {
	// String returns the move in long algebraic notation (e2e4, e7e8q).
	String() string
	IsCapture() bool
	IsCastle() bool
	GivesCheck() bool
	IsPromotion() bool
}

// Position is an immutable game state. MakeMove never modifies the receiver.
type Position interface {
	// GenerateMoves returns all legal moves in generator order.
	GenerateMoves() []Move
	MakeMove(m Move) Position
	// IsCheck reports whether the side to move is in check.
	IsCheck() bool
	WhiteToMove() bool
	PieceOn(sq int) Piece
}

type UciScore struct {
	Centipawns int
	Mate       int
}

type SearchInfo struct {
	Depth    int
	Score    UciScore
	Nodes    int64
	Time     time.Duration
	MainLine []Move
}

// Reporter observes the root of a search. Calls are made synchronously from
// the searching goroutine.
type Reporter interface {
	// CurrentMove is called before each root move is searched.
	CurrentMove(index int, move Move)
	// BestLine is called whenever the best root line improves.
	BestLine(si SearchInfo)
}

type SearchParams struct {
	Position Position
	// Depth overrides the engine depth when positive.
	Depth    int
	Reporter Reporter
}
