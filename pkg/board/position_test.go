package board

import (
	"errors"
	"testing"

	"github.com/walrusbot/walrus/pkg/common"
)

func TestStartPosition(t *testing.T) {
	var p = MustPositionFromFEN(InitialPositionFen)
	if !p.WhiteToMove() {
		t.Error("white should move first")
	}
	if p.IsCheck() {
		t.Error("start position is not check")
	}
	if n := len(p.GenerateMoves()); n != 20 {
		t.Errorf("moves %v, want 20", n)
	}
	var tests = []struct {
		sq    int
		piece common.Piece
	}{
		{common.SquareE1, common.MakePiece(common.King, true)},
		{common.SquareE8, common.MakePiece(common.King, false)},
		{common.SquareA1, common.MakePiece(common.Rook, true)},
		{common.MakeSquare(common.FileD, common.Rank7), common.MakePiece(common.Pawn, false)},
		{common.MakeSquare(common.FileE, common.Rank4), common.PieceNone},
	}
	for _, test := range tests {
		if got := p.PieceOn(test.sq); got != test.piece {
			t.Errorf("%v: %v, want %v", common.SquareName(test.sq), got, test.piece)
		}
	}
}

func TestMakeMoveIsPure(t *testing.T) {
	var p = MustPositionFromFEN(InitialPositionFen)
	var before = p.FEN()
	for _, m := range p.GenerateMoves() {
		var child = p.MakeMove(m).(*Position)
		if child.WhiteToMove() {
			t.Errorf("%v: side to move not switched", m)
		}
	}
	if p.FEN() != before {
		t.Errorf("position changed: %v", p.FEN())
	}
}

func TestCheckDetection(t *testing.T) {
	var tests = []struct {
		fen   string
		check bool
	}{
		{"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true},
		{"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false},
		{"4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", true},
		{"4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", false},
		{"4k3/8/5N2/8/8/8/8/4K3 b - - 0 1", true},
		{"4k3/8/8/8/8/8/8/R3K3 b - - 0 1", false},
		{"R3k3/8/8/8/8/8/8/4K3 b - - 0 1", true},
		{"4k3/8/8/1B6/8/8/8/4K3 b - - 0 1", true},
		{"4k3/8/2p5/1B6/8/8/8/4K3 b - - 0 1", false},
	}
	for _, test := range tests {
		var p = MustPositionFromFEN(test.fen)
		if p.IsCheck() != test.check {
			t.Errorf("%v: check %v, want %v", test.fen, p.IsCheck(), test.check)
		}
	}
}

func TestCheckAfterMove(t *testing.T) {
	var p = MustPositionFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	var child, err = p.MakeMoveLAN("a1a8")
	if err != nil {
		t.Fatal(err)
	}
	if !child.IsCheck() {
		t.Error("a1a8 gives check")
	}
	if len(child.GenerateMoves()) != 0 {
		t.Error("a1a8 is mate")
	}
}

func TestMoveFlags(t *testing.T) {
	var p = MustPositionFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	var captures, castles int
	for _, m := range p.GenerateMoves() {
		if m.IsCapture() {
			captures++
		}
		if m.IsCastle() {
			castles++
		}
	}
	if captures != 8 || castles != 2 {
		t.Errorf("captures %v castles %v", captures, castles)
	}

	var promo = MustPositionFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	var child, err = promo.MakeMoveLAN("a7a8q")
	if err != nil {
		t.Fatal(err)
	}
	if !child.IsCheck() {
		t.Error("a8=Q gives check")
	}
	var promotions = 0
	for _, m := range promo.GenerateMoves() {
		if m.IsPromotion() {
			promotions++
		}
	}
	if promotions != 4 {
		t.Errorf("promotions %v, want 4", promotions)
	}
}

func TestBadInput(t *testing.T) {
	if _, err := NewPositionFromFEN("not a fen"); err == nil {
		t.Error("expected fen error")
	}
	var p = MustPositionFromFEN(InitialPositionFen)
	for _, lan := range []string{"", "e2", "e2e4e6", "i2i4", "e0e4", "e7e8k", "E2E4"} {
		if _, err := p.MakeMoveLAN(lan); !errors.Is(err, errMoveSyntax) {
			t.Errorf("%q: got %v, want syntax error", lan, err)
		}
	}
	if _, err := p.MakeMoveLAN("e2e5"); !errors.Is(err, errIllegalMove) {
		t.Errorf("unexpected error %v", err)
	}
}
