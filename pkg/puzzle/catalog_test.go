package puzzle

import (
	"errors"
	"testing"
)

func TestBuiltinCatalogs(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	if c.Chess.Len() != 6 {
		t.Errorf("expected 6 chess puzzles, got %d", c.Chess.Len())
	}
	if c.Football.Len() != 5 {
		t.Errorf("expected 5 football puzzles, got %d", c.Football.Len())
	}
	if c.Chess.FEN(0) != "1k6/ppp2b1r/8/8/R7/P1q5/P7/K7 w KQkq - 0 1" {
		t.Errorf("unexpected first position %s", c.Chess.FEN(0))
	}
	if c.Chess.FEN(6) != EmptyFEN {
		t.Errorf("out of range position should be empty, got %s", c.Chess.FEN(6))
	}
}

func TestChessCatalogRejectsBadSquare(t *testing.T) {
	puzzles := BuiltinChess()
	puzzles[2].Black[0] = "Rc9"
	_, err := NewChessCatalog(puzzles)
	var sqErr *InvalidSquareError
	if !errors.As(err, &sqErr) {
		t.Fatalf("expected InvalidSquareError, got %v", err)
	}
	if sqErr.Token != "Rc9" {
		t.Errorf("expected token Rc9, got %s", sqErr.Token)
	}
}

func TestChessCatalogRejectsCollision(t *testing.T) {
	_, err := NewChessCatalog([]ChessPuzzle{{
		White:  []string{"Ka1"},
		Black:  []string{"Kb8", "Qa1"},
		Title:  "clash",
		ToMove: White,
	}})
	var colErr *SquareCollisionError
	if !errors.As(err, &colErr) {
		t.Fatalf("expected SquareCollisionError, got %v", err)
	}
	if colErr.Square != "a1" || colErr.Title != "clash" {
		t.Errorf("unexpected collision error %+v", colErr)
	}
}

func TestChessCatalogRejectsSide(t *testing.T) {
	_, err := NewChessCatalog([]ChessPuzzle{{
		White:  []string{"Ka1"},
		Black:  []string{"Kb8"},
		ToMove: "green",
	}})
	if !errors.Is(err, ErrInvalidSide) {
		t.Fatalf("expected ErrInvalidSide, got %v", err)
	}
}

func TestCatalogsRejectEmpty(t *testing.T) {
	if _, err := NewChessCatalog(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("chess: expected ErrEmptyCatalog, got %v", err)
	}
	if _, err := NewFootballCatalog(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("football: expected ErrEmptyCatalog, got %v", err)
	}
}

func TestFootballCatalogRequiresFields(t *testing.T) {
	_, err := NewFootballCatalog([]FootballPuzzle{{Title: "no image", Answer: "x"}})
	if err == nil {
		t.Fatal("expected error for missing image")
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	c, err := NewChessCatalog(BuiltinChess())
	if err != nil {
		t.Fatalf("NewChessCatalog failed: %v", err)
	}
	p, ok := c.Puzzle(0)
	if !ok {
		t.Fatal("expected puzzle 0")
	}
	p.White[0] = "Kh8"
	again, _ := c.Puzzle(0)
	if again.White[0] != "Ka1" {
		t.Errorf("catalog puzzle was mutated through a copy: %s", again.White[0])
	}
	if _, ok := c.Puzzle(-1); ok {
		t.Error("expected no puzzle at -1")
	}
}
