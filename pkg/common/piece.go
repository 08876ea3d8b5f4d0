package common

// Piece kinds.
const (
	Empty = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const (
	SideWhite = 0
	SideBlack = 1
)

// Piece identifies the occupant of a square. The zero value is an empty square.
type Piece uint8

const (
	PieceNone Piece = 0
	blackFlag Piece = 8
)

func MakePiece(kind int, white bool) Piece {
	if kind == Empty {
		return PieceNone
	}
	var p = Piece(kind)
	if !white {
		p |= blackFlag
	}
	return p
}

func (p Piece) Kind() int {
	return int(p &^ blackFlag)
}

func (p Piece) IsWhite() bool {
	return p&blackFlag == 0
}

func (p Piece) Side() int {
	if p.IsWhite() {
		return SideWhite
	}
	return SideBlack
}

const pieceLetters = ".pnbrqk"

// String returns the FEN letter of the piece, "." for an empty square.
func (p Piece) String() string {
	var kind = p.Kind()
	if kind > King {
		return "?"
	}
	var s = pieceLetters[kind : kind+1]
	if p != PieceNone && p.IsWhite() {
		s = string(s[0] - 'a' + 'A')
	}
	return s
}
