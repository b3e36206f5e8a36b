package analysis

import (
	"fmt"

	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
	"github.com/notnil/chess"
)

// position builds a playable game for the puzzle with its real side to move.
func position(p puzzle.ChessPuzzle) (*chess.Game, string, error) {
	fen, err := puzzle.EncodeForAnalysis(p)
	if err != nil {
		return nil, "", err
	}
	fenFunc, err := chess.FEN(fen)
	if err != nil {
		return nil, "", err
	}
	return chess.NewGame(fenFunc), fen, nil
}

func kingsPresent(p puzzle.ChessPuzzle) error {
	white, err := puzzle.ParseTokens(p.White)
	if err != nil {
		return err
	}
	black, err := puzzle.ParseTokens(p.Black)
	if err != nil {
		return err
	}
	g := puzzle.Place(white, black)
	whiteKings, blackKings := 0, 0
	for rank := range g {
		for file := range g[rank] {
			switch g[rank][file] {
			case 'K':
				whiteKings++
			case 'k':
				blackKings++
			}
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return fmt.Errorf("position needs one king per side, has %d white and %d black", whiteKings, blackKings)
	}
	return nil
}

// CheckLegal reports whether the stored answer is a legal move for the side
// to move. No engine is involved.
func CheckLegal(p puzzle.ChessPuzzle) (Report, error) {
	fen, err := puzzle.EncodeForAnalysis(p)
	if err != nil {
		return Report{}, err
	}
	rep := Report{Title: p.Title, FEN: fen, Answer: p.Answer}
	// Move generation needs both kings on the board.
	if err := kingsPresent(p); err != nil {
		rep.Note = err.Error()
		return rep, nil
	}
	rep.Checked = true

	game, _, err := position(p)
	if err != nil {
		return Report{}, err
	}

	pos := game.Position()
	move, err := chess.AlgebraicNotation{}.Decode(pos, NormalizeAnswer(p.Answer))
	if err != nil {
		rep.Note = fmt.Sprintf("answer is not a legal move for %s", p.ToMove)
		return rep, nil
	}
	rep.Legal = true
	rep.AnswerSAN = chess.AlgebraicNotation{}.Encode(pos, move)
	rep.AnswerUCI = chess.UCINotation{}.Encode(pos, move)
	return rep, nil
}
