package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/gmkornilov/crazymoves-backend/internal/db"
	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	kindChess    = "chess"
	kindFootball = "football"
)

// PuzzleRepository stores the ordered chess and football catalogs.
type PuzzleRepository interface {
	GetChessPuzzles() ([]puzzle.ChessPuzzle, error)

	GetFootballPuzzles() ([]puzzle.FootballPuzzle, error)

	ReplaceCatalogs(catalogs puzzle.Catalogs) error
}

// puzzleDocument is one catalog entry; Position keeps catalog order.
type puzzleDocument struct {
	Kind     string                 `bson:"kind"`
	Position int                    `bson:"position"`
	Chess    *puzzle.ChessPuzzle    `bson:"chess,omitempty"`
	Football *puzzle.FootballPuzzle `bson:"football,omitempty"`
}

type puzzleRepository struct {
	dbClient *db.PuzzleDbClient
}

func NewPuzzleRepository(dbClient *db.PuzzleDbClient) PuzzleRepository {
	return &puzzleRepository{dbClient}
}

func (p *puzzleRepository) find(kind string) ([]puzzleDocument, error) {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	opts := options.Find()
	opts.SetSort(bson.D{{Key: "position", Value: 1}})

	cur, err := p.dbClient.PuzzleCollection.Find(ctx, bson.D{{Key: "kind", Value: kind}}, opts)
	if err != nil {
		return nil, err
	}

	var docs []puzzleDocument
	if err = cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (p *puzzleRepository) GetChessPuzzles() ([]puzzle.ChessPuzzle, error) {
	docs, err := p.find(kindChess)
	if err != nil {
		return nil, err
	}
	res := make([]puzzle.ChessPuzzle, 0, len(docs))
	for _, doc := range docs {
		if doc.Chess == nil {
			return nil, fmt.Errorf("chess document at position %d has no puzzle", doc.Position)
		}
		res = append(res, *doc.Chess)
	}
	return res, nil
}

func (p *puzzleRepository) GetFootballPuzzles() ([]puzzle.FootballPuzzle, error) {
	docs, err := p.find(kindFootball)
	if err != nil {
		return nil, err
	}
	res := make([]puzzle.FootballPuzzle, 0, len(docs))
	for _, doc := range docs {
		if doc.Football == nil {
			return nil, fmt.Errorf("football document at position %d has no puzzle", doc.Position)
		}
		res = append(res, *doc.Football)
	}
	return res, nil
}

func (p *puzzleRepository) ReplaceCatalogs(catalogs puzzle.Catalogs) error {
	ctx, cancel := context.WithTimeout(context.TODO(), 5*time.Second)
	defer cancel()

	docs := catalogDocuments(catalogs)
	if _, err := p.dbClient.PuzzleCollection.DeleteMany(ctx, bson.D{}); err != nil {
		return err
	}
	_, err := p.dbClient.PuzzleCollection.InsertMany(ctx, docs)
	return err
}

func catalogDocuments(catalogs puzzle.Catalogs) []interface{} {
	docs := make([]interface{}, 0, catalogs.Chess.Len()+catalogs.Football.Len())
	for i, cp := range catalogs.Chess.Puzzles() {
		cp := cp
		docs = append(docs, puzzleDocument{Kind: kindChess, Position: i, Chess: &cp})
	}
	for i, fp := range catalogs.Football.Puzzles() {
		fp := fp
		docs = append(docs, puzzleDocument{Kind: kindFootball, Position: i, Football: &fp})
	}
	return docs
}

// LoadCatalogs reads both catalogs and validates them like the built-in ones.
func LoadCatalogs(repo PuzzleRepository) (puzzle.Catalogs, error) {
	chessPuzzles, err := repo.GetChessPuzzles()
	if err != nil {
		return puzzle.Catalogs{}, err
	}
	footballPuzzles, err := repo.GetFootballPuzzles()
	if err != nil {
		return puzzle.Catalogs{}, err
	}
	return puzzle.NewCatalogs(chessPuzzles, footballPuzzles)
}
