package dao

import (
	"errors"
	"testing"

	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
)

type fakeRepository struct {
	chess    []puzzle.ChessPuzzle
	football []puzzle.FootballPuzzle
	err      error
}

func (f *fakeRepository) GetChessPuzzles() ([]puzzle.ChessPuzzle, error) {
	return f.chess, f.err
}

func (f *fakeRepository) GetFootballPuzzles() ([]puzzle.FootballPuzzle, error) {
	return f.football, f.err
}

func (f *fakeRepository) ReplaceCatalogs(catalogs puzzle.Catalogs) error {
	f.chess = catalogs.Chess.Puzzles()
	f.football = catalogs.Football.Puzzles()
	return f.err
}

func TestCatalogDocuments(t *testing.T) {
	catalogs, err := puzzle.Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	docs := catalogDocuments(catalogs)
	if len(docs) != 11 {
		t.Fatalf("expected 11 documents, got %d", len(docs))
	}
	first := docs[0].(puzzleDocument)
	if first.Kind != kindChess || first.Position != 0 || first.Chess.Title != "Wo...run!" {
		t.Errorf("unexpected first document %+v", first)
	}
	last := docs[10].(puzzleDocument)
	if last.Kind != kindFootball || last.Position != 4 || last.Football.Title != "What can you do?" {
		t.Errorf("unexpected last document %+v", last)
	}
	if docs[1].(puzzleDocument).Chess == first.Chess {
		t.Error("documents must not share a puzzle pointer")
	}
}

func TestLoadCatalogs(t *testing.T) {
	repo := &fakeRepository{}
	builtin, _ := puzzle.Builtin()
	if err := repo.ReplaceCatalogs(builtin); err != nil {
		t.Fatalf("ReplaceCatalogs failed: %v", err)
	}
	catalogs, err := LoadCatalogs(repo)
	if err != nil {
		t.Fatalf("LoadCatalogs failed: %v", err)
	}
	if catalogs.Chess.Len() != 6 || catalogs.Football.Len() != 5 {
		t.Errorf("unexpected sizes %d/%d", catalogs.Chess.Len(), catalogs.Football.Len())
	}

	repo.chess = nil
	if _, err := LoadCatalogs(repo); !errors.Is(err, puzzle.ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}

	repo.err = errors.New("connection refused")
	if _, err := LoadCatalogs(repo); err == nil {
		t.Error("expected repository error")
	}
}
