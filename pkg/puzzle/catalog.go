package puzzle

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

var ErrEmptyCatalog = errors.New("catalog has no puzzles")

// SquareCollisionError reports two placement tokens of one puzzle on the same square.
type SquareCollisionError struct {
	Title  string
	Square string
}

func (e *SquareCollisionError) Error() string {
	return fmt.Sprintf("puzzle %q: more than one piece on %s", e.Title, e.Square)
}

// ChessCatalog is an ordered, validated list of chess puzzles together with
// their display positions.
type ChessCatalog struct {
	puzzles []ChessPuzzle
	fens    []string
}

// NewChessCatalog validates every puzzle and precomputes its display position.
// Bad squares, colliding tokens and positions that cannot be loaded as a game
// are rejected here so that nothing downstream has to handle them.
func NewChessCatalog(puzzles []ChessPuzzle) (*ChessCatalog, error) {
	if len(puzzles) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &ChessCatalog{
		puzzles: make([]ChessPuzzle, 0, len(puzzles)),
		fens:    make([]string, 0, len(puzzles)),
	}
	for i, p := range puzzles {
		fen, err := validateChess(p)
		if err != nil {
			return nil, fmt.Errorf("chess puzzle %d: %w", i, err)
		}
		c.puzzles = append(c.puzzles, p.clone())
		c.fens = append(c.fens, fen)
	}
	return c, nil
}

func validateChess(p ChessPuzzle) (string, error) {
	if !p.ToMove.Valid() {
		return "", fmt.Errorf("%q: %w", p.ToMove, ErrInvalidSide)
	}
	white, err := ParseTokens(p.White)
	if err != nil {
		return "", err
	}
	black, err := ParseTokens(p.Black)
	if err != nil {
		return "", err
	}
	seen := make(map[string]bool, len(white)+len(black))
	for _, pl := range append(append([]Placement(nil), white...), black...) {
		if seen[pl.Square()] {
			return "", &SquareCollisionError{Title: p.Title, Square: pl.Square()}
		}
		seen[pl.Square()] = true
	}
	fen := Place(white, black).Placement() + DisplaySuffix
	if _, err := chess.FEN(fen); err != nil {
		return "", fmt.Errorf("puzzle %q: %w", p.Title, err)
	}
	return fen, nil
}

func (c *ChessCatalog) Len() int {
	return len(c.puzzles)
}

// Puzzle returns a copy of the puzzle at index i.
func (c *ChessCatalog) Puzzle(i int) (ChessPuzzle, bool) {
	if i < 0 || i >= len(c.puzzles) {
		return ChessPuzzle{}, false
	}
	return c.puzzles[i].clone(), true
}

// FEN returns the display position of the puzzle at index i.
func (c *ChessCatalog) FEN(i int) string {
	if i < 0 || i >= len(c.fens) {
		return EmptyFEN
	}
	return c.fens[i]
}

func (c *ChessCatalog) Puzzles() []ChessPuzzle {
	res := make([]ChessPuzzle, 0, len(c.puzzles))
	for _, p := range c.puzzles {
		res = append(res, p.clone())
	}
	return res
}

// FootballCatalog is an ordered list of football puzzles.
type FootballCatalog struct {
	puzzles []FootballPuzzle
}

func NewFootballCatalog(puzzles []FootballPuzzle) (*FootballCatalog, error) {
	if len(puzzles) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, p := range puzzles {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("football puzzle %d: %w", i, err)
		}
	}
	return &FootballCatalog{puzzles: append([]FootballPuzzle(nil), puzzles...)}, nil
}

func (c *FootballCatalog) Len() int {
	return len(c.puzzles)
}

func (c *FootballCatalog) Puzzle(i int) (FootballPuzzle, bool) {
	if i < 0 || i >= len(c.puzzles) {
		return FootballPuzzle{}, false
	}
	return c.puzzles[i], true
}

func (c *FootballCatalog) Puzzles() []FootballPuzzle {
	return append([]FootballPuzzle(nil), c.puzzles...)
}
