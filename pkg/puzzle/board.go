package puzzle

import "github.com/notnil/chess"

var pieceMap = map[byte]chess.Piece{
	'K': chess.WhiteKing,
	'Q': chess.WhiteQueen,
	'R': chess.WhiteRook,
	'B': chess.WhiteBishop,
	'N': chess.WhiteKnight,
	'P': chess.WhitePawn,
	'k': chess.BlackKing,
	'q': chess.BlackQueen,
	'r': chess.BlackRook,
	'b': chess.BlackBishop,
	'n': chess.BlackKnight,
	'p': chess.BlackPawn,
}

// Board converts the grid into a chess board without building a game, so
// positions lacking a king can still be drawn.
func (g Grid) Board() *chess.Board {
	m := make(map[chess.Square]chess.Piece)
	for rank := range g {
		for file := range g[rank] {
			if piece, ok := pieceMap[g[rank][file]]; ok {
				m[chess.Square((7-rank)*8+file)] = piece
			}
		}
	}
	return chess.NewBoard(m)
}
