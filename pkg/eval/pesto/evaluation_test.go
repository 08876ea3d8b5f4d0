package pesto

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/walrusbot/walrus/pkg/board"
	. "github.com/walrusbot/walrus/pkg/common"
)

var testFENs = []string{
	board.InitialPositionFen,
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"4k3/8/8/8/8/8/8/4K3 b - - 0 1",
	"QQQQkQQQ/8/8/8/8/8/8/4K3 b - - 0 1",
}

func TestTableSymmetry(t *testing.T) {
	var mg, eg = Tables()
	for piece := Pawn; piece <= King; piece++ {
		for sq := 0; sq < SquareCount; sq++ {
			if mg[SideBlack][piece][sq] != mg[SideWhite][piece][sq^0b111000] {
				t.Errorf("mg piece %v square %v", piece, SquareName(sq))
			}
			if eg[SideBlack][piece][sq] != eg[SideWhite][piece][sq^0b111000] {
				t.Errorf("eg piece %v square %v", piece, SquareName(sq))
			}
		}
	}
}

func TestTableIncludesMaterial(t *testing.T) {
	var mg, eg = Tables()
	// white pawn on e4 reads the fifth row of the layout
	if mg[SideWhite][Pawn][28] != 82+17 {
		t.Errorf("mg pawn e4 = %v", mg[SideWhite][Pawn][28])
	}
	if eg[SideWhite][Queen][3] != 936-43 {
		t.Errorf("eg queen d1 = %v", eg[SideWhite][Queen][3])
	}
}

func TestPhase(t *testing.T) {
	var tests = []struct {
		fen     string
		mgPhase int
	}{
		{board.InitialPositionFen, 24},
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", 0},
		{"4k3/pppppppp/8/8/8/8/PPPPPPPP/R3K3 w - - 0 1", 2},
		{"QQQQkQQQ/8/8/8/8/8/8/4K3 b - - 0 1", 24},
	}
	for _, test := range tests {
		var b = Trace(board.MustPositionFromFEN(test.fen))
		if b.MgPhase != test.mgPhase {
			t.Errorf("%v: mg phase %v, want %v", test.fen, b.MgPhase, test.mgPhase)
		}
	}
	for _, fen := range testFENs {
		var b = Trace(board.MustPositionFromFEN(fen))
		if b.MgPhase+b.EgPhase != MaxPhase || b.MgPhase > MaxPhase {
			t.Errorf("%v: phases %v+%v", fen, b.MgPhase, b.EgPhase)
		}
		if b.Score != (b.MgPhase*b.Middle+b.EgPhase*b.End)/MaxPhase {
			t.Errorf("%v: score %v not tapered", fen, b.Score)
		}
	}
}

func TestStartPositionIsEqual(t *testing.T) {
	var e = NewEvaluationService()
	if score := e.Evaluate(board.MustPositionFromFEN(board.InitialPositionFen)); score != 0 {
		t.Errorf("start position = %v", score)
	}
}

func TestSideToMoveNegates(t *testing.T) {
	var e = NewEvaluationService()
	for _, fen := range testFENs {
		var white = board.MustPositionFromFEN(setSideToMove(fen, "w"))
		var black = board.MustPositionFromFEN(setSideToMove(fen, "b"))
		if e.Evaluate(white) != -e.Evaluate(black) {
			t.Errorf("%v: %v vs %v", fen, e.Evaluate(white), e.Evaluate(black))
		}
	}
}

func TestColorMirror(t *testing.T) {
	var e = NewEvaluationService()
	for _, fen := range testFENs {
		var p = board.MustPositionFromFEN(fen)
		var mirrored = board.MustPositionFromFEN(mirrorFEN(fen))
		if e.Evaluate(p) != e.Evaluate(mirrored) {
			t.Errorf("%v: %v, mirrored %v", fen, e.Evaluate(p), e.Evaluate(mirrored))
		}
	}
}

func TestEvaluateIsPure(t *testing.T) {
	var e = NewEvaluationService()
	var p = board.MustPositionFromFEN(testFENs[2])
	var first = e.Evaluate(p)
	for i := 0; i < 3; i++ {
		if e.Evaluate(p) != first {
			t.Fatal("evaluation changed between calls")
		}
	}
}

func setSideToMove(fen, side string) string {
	var fields = strings.Fields(fen)
	fields[1] = side
	fields[3] = "-"
	return strings.Join(fields, " ")
}

// mirrorFEN flips the board vertically and swaps colors and side to move.
func mirrorFEN(fen string) string {
	var fields = strings.Fields(fen)
	var ranks = strings.Split(fields[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	fields[0] = swapCase(strings.Join(ranks, "/"))
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	if fields[2] != "-" {
		var swapped = swapCase(fields[2])
		var rights []byte
		for _, c := range []byte("KQkq") {
			if strings.IndexByte(swapped, c) >= 0 {
				rights = append(rights, c)
			}
		}
		fields[2] = string(rights)
	}
	fields[3] = "-"
	return strings.Join(fields, " ")
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsUpper(r) {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}

func TestPrintTables(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	var mg, _ = Tables()
	var text = formatPst("Knight", mg[SideWhite][Knight])
	if lines := strings.Split(strings.TrimSpace(text), "\n"); len(lines) != 9 {
		t.Errorf("%v lines", len(lines))
	}
	t.Log(text)
}

func formatPst(name string, source [SquareCount]int) string {
	var sb = &strings.Builder{}
	fmt.Fprintln(sb, "PST", name)
	for i := 0; i < SquareCount; i++ {
		var sq = FlipSquare(i)
		fmt.Fprint(sb, source[sq], " ")
		if File(sq) == FileH {
			fmt.Fprintln(sb)
		}
	}
	return sb.String()
}
