package puzzle

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidSide = errors.New("side to move must be white or black")

type Side string

const (
	White Side = "white"
	Black Side = "black"
)

// Label is the turn indicator text shown next to the board.
func (s Side) Label() string {
	if s == Black {
		return "Black"
	}
	return "White"
}

func (s Side) Valid() bool {
	return s == White || s == Black
}

// ChessPuzzle is one static chess position with the move to find.
type ChessPuzzle struct {
	White  []string `json:"white" yaml:"white" bson:"white"`
	Black  []string `json:"black" yaml:"black" bson:"black"`
	Title  string   `json:"title" yaml:"title" bson:"title"`
	Answer string   `json:"answer" yaml:"answer" bson:"answer"`
	ToMove Side     `json:"to_move" yaml:"to_move" bson:"to_move"`
}

func (p ChessPuzzle) String() string {
	j, _ := json.MarshalIndent(p, "", "\t")
	return string(j)
}

func (p ChessPuzzle) clone() ChessPuzzle {
	p.White = append([]string(nil), p.White...)
	p.Black = append([]string(nil), p.Black...)
	return p
}

// FootballPuzzle is an image of a match situation with its explanation.
type FootballPuzzle struct {
	Image  string `json:"image" yaml:"image" bson:"image"`
	Title  string `json:"title" yaml:"title" bson:"title"`
	Answer string `json:"answer" yaml:"answer" bson:"answer"`
}

func (p FootballPuzzle) String() string {
	j, _ := json.MarshalIndent(p, "", "\t")
	return string(j)
}

func (p FootballPuzzle) validate() error {
	switch {
	case p.Image == "":
		return fmt.Errorf("football puzzle %q: missing image", p.Title)
	case p.Title == "":
		return fmt.Errorf("football puzzle with image %q: missing title", p.Image)
	case p.Answer == "":
		return fmt.Errorf("football puzzle %q: missing answer", p.Title)
	}
	return nil
}
