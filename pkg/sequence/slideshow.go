package sequence

import (
	"errors"
	"fmt"

	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
)

var (
	ErrLocked        = errors.New("football puzzles are locked until the chess puzzles are completed")
	ErrInvalidStage  = errors.New("invalid slideshow stage")
	ErrStateMismatch = errors.New("saved state does not fit the catalog")
)

type Stage string

const (
	StageChess    Stage = "chess"
	StageFootball Stage = "football"
)

// Slideshow holds one viewer's progress through the chess pipeline and then
// the football pipeline. It is not safe for concurrent use.
type Slideshow struct {
	catalogs puzzle.Catalogs
	stage    Stage
	chess    State
	football State
}

// New loads the catalogs into a fresh slideshow positioned before the first
// chess puzzle.
func New(catalogs puzzle.Catalogs) *Slideshow {
	return &Slideshow{
		catalogs: catalogs,
		stage:    StageChess,
		chess:    Start(),
		football: Start(),
	}
}

// Start handles the page-load event: the first chess puzzle is shown.
func (s *Slideshow) Start() View {
	s.chess = Load(s.chess, 0, s.catalogs.Chess.Len())
	return s.View()
}

// Load jumps the active pipeline to index; an index past the end completes it.
func (s *Slideshow) Load(index int) View {
	if s.stage == StageFootball {
		s.football = Load(s.football, index, s.catalogs.Football.Len())
	} else {
		s.chess = Load(s.chess, index, s.catalogs.Chess.Len())
	}
	return s.View()
}

// OnRevealAnswer shows the answer of the current puzzle.
func (s *Slideshow) OnRevealAnswer() View {
	if s.stage == StageFootball {
		s.football = Reveal(s.football)
	} else {
		s.chess = Reveal(s.chess)
	}
	return s.View()
}

// OnNext moves to the next puzzle of the active pipeline, completing it after
// the last one.
func (s *Slideshow) OnNext() View {
	if s.stage == StageFootball {
		s.football = Advance(s.football, s.catalogs.Football.Len())
	} else {
		s.chess = Advance(s.chess, s.catalogs.Chess.Len())
	}
	return s.View()
}

// OnUnlockNext switches to the football puzzles once every chess puzzle has
// been seen. Unlocking twice keeps the football progress.
func (s *Slideshow) OnUnlockNext() (View, error) {
	if !IsComplete(s.chess, s.catalogs.Chess.Len()) {
		return s.View(), ErrLocked
	}
	if s.stage != StageFootball {
		s.stage = StageFootball
		s.football = Load(Start(), 0, s.catalogs.Football.Len())
	}
	return s.View(), nil
}

func (s *Slideshow) Stage() Stage {
	return s.stage
}

func (s *Slideshow) ChessState() State {
	return s.chess
}

func (s *Slideshow) FootballState() State {
	return s.football
}

// Snapshot is the persisted form of a slideshow.
type Snapshot struct {
	Stage    Stage `json:"stage"`
	Chess    State `json:"chess"`
	Football State `json:"football"`
}

func (s *Slideshow) Snapshot() Snapshot {
	return Snapshot{
		Stage:    s.stage,
		Chess:    s.chess.clone(),
		Football: s.football.clone(),
	}
}

// Restore rebuilds a slideshow from a snapshot taken against the same catalogs.
func Restore(catalogs puzzle.Catalogs, snap Snapshot) (*Slideshow, error) {
	if snap.Stage != StageChess && snap.Stage != StageFootball {
		return nil, fmt.Errorf("%q: %w", snap.Stage, ErrInvalidStage)
	}
	if !fits(snap.Chess, catalogs.Chess.Len()) || !fits(snap.Football, catalogs.Football.Len()) {
		return nil, ErrStateMismatch
	}
	if snap.Stage == StageFootball && !snap.Chess.Completed {
		return nil, ErrStateMismatch
	}
	return &Slideshow{
		catalogs: catalogs,
		stage:    snap.Stage,
		chess:    snap.Chess.clone(),
		football: snap.Football.clone(),
	}, nil
}

func fits(s State, n int) bool {
	if s.CurrentIndex < 0 || s.CurrentIndex >= n {
		return false
	}
	for _, i := range s.Revealed {
		if i < 0 || i >= n {
			return false
		}
	}
	return true
}
