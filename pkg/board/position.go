package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"github.com/walrusbot/walrus/pkg/common"
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	errIllegalMove = errors.New("illegal move")
	errMoveSyntax  = errors.New("bad move syntax")
)

// Position adapts a notnil/chess position to common.Position.
type Position struct {
	pos   *chess.Position
	check bool
}

func NewPositionFromFEN(fen string) (*Position, error) {
	var opt, err = chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	return FromChess(chess.NewGame(opt).Position()), nil
}

func MustPositionFromFEN(fen string) *Position {
	var p, err = NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// FromChess wraps pos. The side to move is checked for check once here.
func FromChess(pos *chess.Position) *Position {
	var b = pos.Board()
	var kingSq = findKing(b, pos.Turn())
	return &Position{
		pos:   pos,
		check: kingSq >= 0 && isAttacked(b, kingSq, pos.Turn().Other()),
	}
}

func (p *Position) Chess() *chess.Position {
	return p.pos
}

func (p *Position) FEN() string {
	return p.pos.String()
}

func (p *Position) String() string {
	return p.pos.String()
}

func (p *Position) GenerateMoves() []common.Move {
	var moves = p.pos.ValidMoves()
	var result = make([]common.Move, len(moves))
	for i, m := range moves {
		result[i] = &Move{m: m}
	}
	return result
}

func (p *Position) MakeMove(m common.Move) common.Position {
	var move = m.(*Move)
	return &Position{
		pos:   p.pos.Update(move.m),
		check: move.m.HasTag(chess.Check),
	}
}

// MakeMoveLAN applies a move in long algebraic notation if it is legal.
func (p *Position) MakeMoveLAN(lan string) (*Position, error) {
	if err := checkLAN(lan); err != nil {
		return nil, err
	}
	for _, m := range p.pos.ValidMoves() {
		if m.String() == lan {
			return &Position{
				pos:   p.pos.Update(m),
				check: m.HasTag(chess.Check),
			}, nil
		}
	}
	return nil, fmt.Errorf("%w %v", errIllegalMove, lan)
}

// checkLAN accepts from and to squares with an optional promotion letter.
func checkLAN(lan string) error {
	if len(lan) != 4 && len(lan) != 5 {
		return fmt.Errorf("%w %q", errMoveSyntax, lan)
	}
	for _, s := range []string{lan[0:2], lan[2:4]} {
		if _, err := common.ParseSquare(s); err != nil {
			return fmt.Errorf("%w %q: %w", errMoveSyntax, lan, err)
		}
	}
	if len(lan) == 5 && !strings.ContainsRune("nbrq", rune(lan[4])) {
		return fmt.Errorf("%w %q", errMoveSyntax, lan)
	}
	return nil
}

func (p *Position) IsCheck() bool {
	return p.check
}

func (p *Position) WhiteToMove() bool {
	return p.pos.Turn() == chess.White
}

func (p *Position) PieceOn(sq int) common.Piece {
	return fromChessPiece(p.pos.Board().Piece(chess.Square(sq)))
}

var pieceKinds = [...]int{
	chess.NoPieceType: common.Empty,
	chess.King:        common.King,
	chess.Queen:       common.Queen,
	chess.Rook:        common.Rook,
	chess.Bishop:      common.Bishop,
	chess.Knight:      common.Knight,
	chess.Pawn:        common.Pawn,
}

func fromChessPiece(piece chess.Piece) common.Piece {
	if piece == chess.NoPiece {
		return common.PieceNone
	}
	return common.MakePiece(pieceKinds[piece.Type()], piece.Color() == chess.White)
}

// Move adapts a notnil/chess move to common.Move.
type Move struct {
	m *chess.Move
}

func (m *Move) Chess() *chess.Move {
	return m.m
}

func (m *Move) String() string {
	return m.m.String()
}

func (m *Move) IsCapture() bool {
	return m.m.HasTag(chess.Capture) || m.m.HasTag(chess.EnPassant)
}

func (m *Move) IsCastle() bool {
	return m.m.HasTag(chess.KingSideCastle) || m.m.HasTag(chess.QueenSideCastle)
}

func (m *Move) GivesCheck() bool {
	return m.m.HasTag(chess.Check)
}

func (m *Move) IsPromotion() bool {
	return m.m.Promo() != chess.NoPieceType
}
