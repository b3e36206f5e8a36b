package puzzle

import (
	"errors"
	"strconv"
	"strings"
)

const (
	// DisplaySuffix is appended to every displayed position: white to move,
	// all castling rights, no en passant square, clocks at 0 and 1.
	DisplaySuffix = " w KQkq - 0 1"

	EmptyFEN = "8/8/8/8/8/8/8/8 w - - 0 1"
)

var ErrInvalidFEN = errors.New("invalid fen")

// Grid is a board indexed [rank][file]; rank 0 is the 8th rank, file 0 is 'a'.
// Zero bytes are empty squares.
type Grid [8][8]byte

// Place puts white pieces (uppercase) and then black pieces (lowercase) on an
// empty grid. A later placement on an occupied square replaces the earlier one.
func Place(white, black []Placement) Grid {
	var g Grid
	for _, p := range white {
		g[8-p.Rank][p.File] = upper(p.Kind)
	}
	for _, p := range black {
		g[8-p.Rank][p.File] = lower(p.Kind)
	}
	return g
}

// Placement serialises the piece placement field of a FEN string.
func (g Grid) Placement() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			if g[rank][file] == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(g[rank][file])
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank < 7 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// Occupied counts non-empty squares.
func (g Grid) Occupied() int {
	n := 0
	for rank := range g {
		for file := range g[rank] {
			if g[rank][file] != 0 {
				n++
			}
		}
	}
	return n
}

func grid(p ChessPuzzle) (Grid, error) {
	white, err := ParseTokens(p.White)
	if err != nil {
		return Grid{}, err
	}
	black, err := ParseTokens(p.Black)
	if err != nil {
		return Grid{}, err
	}
	return Place(white, black), nil
}

// Encode returns the display position of a puzzle. The suffix is always
// DisplaySuffix regardless of p.ToMove.
func Encode(p ChessPuzzle) (string, error) {
	g, err := grid(p)
	if err != nil {
		return "", err
	}
	return g.Placement() + DisplaySuffix, nil
}

// EncodeForAnalysis returns a position with the puzzle's real side to move and
// no castling rights, suitable for an engine or a move generator.
func EncodeForAnalysis(p ChessPuzzle) (string, error) {
	g, err := grid(p)
	if err != nil {
		return "", err
	}
	side := "w"
	if p.ToMove == Black {
		side = "b"
	}
	return g.Placement() + " " + side + " - - 0 1", nil
}

// Decode reads the piece placement field of a FEN string back into a grid.
func Decode(fen string) (Grid, error) {
	var g Grid
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return g, ErrInvalidFEN
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return g, ErrInvalidFEN
	}
	for rank, row := range ranks {
		file := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			case strings.IndexByte(Pieces, upper(c)) >= 0:
				if file >= 8 {
					return Grid{}, ErrInvalidFEN
				}
				g[rank][file] = c
				file++
			default:
				return Grid{}, ErrInvalidFEN
			}
			if file > 8 {
				return Grid{}, ErrInvalidFEN
			}
		}
		if file != 8 {
			return Grid{}, ErrInvalidFEN
		}
	}
	return g, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
