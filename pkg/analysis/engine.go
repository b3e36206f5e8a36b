package analysis

import (
	"github.com/freeeve/uci"
	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
	"github.com/notnil/chess"
)

const (
	DefaultDepth = 10
	multiPV      = 5
)

func SetupEngine(path string, arg ...string) (*uci.Engine, error) {
	e, err := uci.NewEngine(path, arg...)
	if err != nil {
		return nil, err
	}

	err = e.SetOptions(uci.Options{
		MultiPV: multiPV,
		Hash:    128,
		Ponder:  false,
		OwnBook: true,
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func compareResults(baseRes uci.ScoreResult, cmpRes uci.ScoreResult) bool {
	if baseRes.Mate {
		return cmpRes.Mate && baseRes.Score == cmpRes.Score
	}
	return baseRes.Score-cmpRes.Score <= 50
}

// filterResults keeps the lines that are as good as the engine's first one.
func filterResults(results []uci.ScoreResult) []uci.ScoreResult {
	if len(results) == 0 {
		return nil
	}
	baseRes := results[0]
	filteredResults := make([]uci.ScoreResult, 0)
	for _, item := range results {
		if compareResults(baseRes, item) {
			filteredResults = append(filteredResults, item)
		}
	}
	return filteredResults
}

// Checker compares stored answers with an engine's best lines.
type Checker struct {
	engine *uci.Engine
	depth  int
}

func NewChecker(e *uci.Engine, depth int) *Checker {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Checker{engine: e, depth: depth}
}

func (c *Checker) Check(p puzzle.ChessPuzzle) (Report, error) {
	rep, err := CheckLegal(p)
	if err != nil || !rep.Checked {
		return rep, err
	}

	if err := c.engine.SetFEN(rep.FEN); err != nil {
		return Report{}, err
	}
	result, err := c.engine.GoDepth(c.depth)
	if err != nil {
		return Report{}, err
	}
	if len(result.Results) == 0 {
		return rep, nil
	}
	rep.Mate = result.Results[0].Mate
	rep.Score = result.Results[0].Score

	game, _, err := position(p)
	if err != nil {
		return Report{}, err
	}
	pos := game.Position()
	for _, res := range filterResults(result.Results) {
		if len(res.BestMoves) == 0 {
			continue
		}
		move, err := chess.UCINotation{}.Decode(pos, res.BestMoves[0])
		if err != nil {
			return Report{}, err
		}
		rep.EngineMoves = append(rep.EngineMoves, chess.AlgebraicNotation{}.Encode(pos, move))
		if res.BestMoves[0] == rep.AnswerUCI {
			rep.AnswerIsBest = true
		}
	}
	return rep, nil
}

func (c *Checker) CheckAll(catalog *puzzle.ChessCatalog) ([]Report, error) {
	res := make([]Report, 0, catalog.Len())
	for _, p := range catalog.Puzzles() {
		rep, err := c.Check(p)
		if err != nil {
			return nil, err
		}
		res = append(res, rep)
	}
	return res, nil
}
