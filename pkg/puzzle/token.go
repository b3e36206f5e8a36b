package puzzle

import (
	"fmt"
	"strings"
)

// Pieces lists the accepted piece kind letters in their white (uppercase) form.
const Pieces = "KQRBNP"

// Placement is a parsed placement token. Rank is 1..8, File is 0..7 ('a'..'h').
type Placement struct {
	Kind byte
	File int
	Rank int
}

// Square returns the square reference, e.g. "e4".
func (p Placement) Square() string {
	return fmt.Sprintf("%c%d", 'a'+p.File, p.Rank)
}

func (p Placement) String() string {
	return string(p.Kind) + p.Square()
}

// InvalidSquareError reports a token whose square is outside the board.
type InvalidSquareError struct {
	Token string
}

func (e *InvalidSquareError) Error() string {
	return fmt.Sprintf("invalid square in placement token %q", e.Token)
}

// InvalidTokenError reports a token with a bad length or piece kind letter.
type InvalidTokenError struct {
	Token string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid placement token %q", e.Token)
}

// ParseToken parses "Ka1"-style tokens. A bare square ("e4") is a pawn.
func ParseToken(token string) (Placement, error) {
	var kind byte
	var square string
	switch len(token) {
	case 2:
		kind, square = 'P', token
	case 3:
		kind, square = token[0], token[1:]
	default:
		return Placement{}, &InvalidTokenError{Token: token}
	}
	if strings.IndexByte(Pieces, kind) < 0 {
		return Placement{}, &InvalidTokenError{Token: token}
	}
	file, rank := square[0], square[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Placement{}, &InvalidSquareError{Token: token}
	}
	return Placement{
		Kind: kind,
		File: int(file - 'a'),
		Rank: int(rank - '0'),
	}, nil
}

// ParseTokens parses every token of a list, stopping at the first bad one.
func ParseTokens(tokens []string) ([]Placement, error) {
	res := make([]Placement, 0, len(tokens))
	for _, token := range tokens {
		p, err := ParseToken(token)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}
