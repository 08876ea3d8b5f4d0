package board

import (
	"github.com/notnil/chess"

	"github.com/walrusbot/walrus/pkg/common"
)

var (
	knightDeltas   = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas     = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	rookDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs     = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func findKing(b *chess.Board, side chess.Color) int {
	for sq := 0; sq < common.SquareCount; sq++ {
		var piece = b.Piece(chess.Square(sq))
		if piece.Type() == chess.King && piece.Color() == side {
			return sq
		}
	}
	return -1
}

func pieceAt(b *chess.Board, file, rank int) chess.Piece {
	if file < 0 || file > common.FileH || rank < 0 || rank > common.Rank8 {
		return chess.NoPiece
	}
	return b.Piece(chess.Square(common.MakeSquare(file, rank)))
}

// isAttacked reports whether side attacks sq.
func isAttacked(b *chess.Board, sq int, side chess.Color) bool {
	var file, rank = common.File(sq), common.Rank(sq)

	var pawnRank = rank - 1
	if side == chess.Black {
		pawnRank = rank + 1
	}
	for _, df := range [2]int{-1, 1} {
		var piece = pieceAt(b, file+df, pawnRank)
		if piece.Color() == side && piece.Type() == chess.Pawn {
			return true
		}
	}

	for _, d := range knightDeltas {
		var piece = pieceAt(b, file+d[0], rank+d[1])
		if piece.Color() == side && piece.Type() == chess.Knight {
			return true
		}
	}

	for _, d := range kingDeltas {
		var piece = pieceAt(b, file+d[0], rank+d[1])
		if piece.Color() == side && piece.Type() == chess.King {
			return true
		}
	}

	return slides(b, file, rank, side, rookDirections[:], chess.Rook) ||
		slides(b, file, rank, side, bishopDirs[:], chess.Bishop)
}

func slides(b *chess.Board, file, rank int, side chess.Color, dirs [][2]int, slider chess.PieceType) bool {
	for _, d := range dirs {
		for f, r := file+d[0], rank+d[1]; f >= 0 && f <= common.FileH && r >= 0 && r <= common.Rank8; f, r = f+d[0], r+d[1] {
			var piece = pieceAt(b, f, r)
			if piece == chess.NoPiece {
				continue
			}
			if piece.Color() == side && (piece.Type() == slider || piece.Type() == chess.Queen) {
				return true
			}
			break
		}
	}
	return false
}
