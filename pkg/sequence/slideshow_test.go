package sequence

import (
	"errors"
	"testing"

	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
)

func newSlideshow(t *testing.T) *Slideshow {
	t.Helper()
	catalogs, err := puzzle.Builtin()
	if err != nil {
		t.Fatalf("failed to load catalogs: %v", err)
	}
	return New(catalogs)
}

func TestSlideshowFirstPuzzle(t *testing.T) {
	s := newSlideshow(t)
	v := s.Start()

	if v.Stage != StageChess || v.Index != 0 || v.Total != 6 {
		t.Fatalf("unexpected view %+v", v)
	}
	if v.Title != "Wo...run!" || v.Turn != "White" {
		t.Errorf("unexpected title/turn %q/%q", v.Title, v.Turn)
	}
	if v.FEN != "1k6/ppp2b1r/8/8/R7/P1q5/P7/K7 w KQkq - 0 1" {
		t.Errorf("unexpected position %s", v.FEN)
	}
	if v.AnswerShown || v.Answer != "" {
		t.Errorf("answer should be hidden, got %q", v.Answer)
	}
	if v.ProgressText != "Puzzle 1 of 6" {
		t.Errorf("unexpected progress text %q", v.ProgressText)
	}
}

func TestSlideshowRevealAndNext(t *testing.T) {
	s := newSlideshow(t)
	s.Start()

	v := s.OnRevealAnswer()
	if !v.AnswerShown || v.Answer != "Kb1" {
		t.Fatalf("expected revealed answer Kb1, got %+v", v)
	}

	v = s.OnNext()
	if v.Index != 1 || v.AnswerShown {
		t.Fatalf("expected hidden second puzzle, got %+v", v)
	}
	if v.Turn != "Black" {
		t.Errorf("expected Black to move, got %s", v.Turn)
	}
	if v.ProgressWidth != "33.33333333333333%" {
		t.Errorf("unexpected progress width %s", v.ProgressWidth)
	}
	if !s.ChessState().IsRevealed(0) {
		t.Error("first answer should stay recorded")
	}
}

func TestSlideshowNextWithoutReveal(t *testing.T) {
	s := newSlideshow(t)
	s.Start()

	v := s.OnNext()
	if v.Index != 1 {
		t.Fatalf("expected second puzzle, got index %d", v.Index)
	}
	if s.ChessState().IsRevealed(0) {
		t.Error("skipped puzzle should not be marked revealed")
	}
}

func TestSlideshowUnlockFlow(t *testing.T) {
	s := newSlideshow(t)
	s.Start()

	if _, err := s.OnUnlockNext(); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}

	var v View
	for i := 0; i < 6; i++ {
		v = s.OnNext()
	}
	if !v.Completed || !v.CanUnlock {
		t.Fatalf("expected chess completion, got %+v", v)
	}
	if v.Title != "" || v.FEN != "" {
		t.Errorf("completion view should not show a puzzle: %+v", v)
	}

	v, err := s.OnUnlockNext()
	if err != nil {
		t.Fatalf("unlock failed: %v", err)
	}
	if v.Stage != StageFootball || v.Index != 0 || v.Title != "Tactical Challenge 1" {
		t.Fatalf("unexpected football view %+v", v)
	}
	if v.Image != "images/football1.png" || v.Turn != "" {
		t.Errorf("unexpected football fields %+v", v)
	}
	if v.ProgressText != "Football Puzzle 1 of 5" {
		t.Errorf("unexpected progress text %q", v.ProgressText)
	}

	s.OnNext()
	v, _ = s.OnUnlockNext()
	if v.Index != 1 {
		t.Errorf("second unlock should keep football progress, got index %d", v.Index)
	}

	for i := 0; i < 4; i++ {
		v = s.OnNext()
	}
	if !v.Completed || v.Headline != "Amazing!" {
		t.Fatalf("expected football completion, got %+v", v)
	}
	if v.Footer != "You're a true CrazyMoves master!" {
		t.Errorf("unexpected footer %q", v.Footer)
	}
}

func TestSlideshowLoadPastEnd(t *testing.T) {
	s := newSlideshow(t)
	s.Start()
	if v := s.Load(6); !v.Completed {
		t.Error("loading index 6 of the chess catalog should complete it")
	}
}

func TestSnapshotRestore(t *testing.T) {
	s := newSlideshow(t)
	s.Start()
	s.OnRevealAnswer()
	s.OnNext()
	s.OnNext()

	catalogs, _ := puzzle.Builtin()
	restored, err := Restore(catalogs, s.Snapshot())
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if restored.View() != s.View() {
		t.Errorf("restored view differs: %+v vs %+v", restored.View(), s.View())
	}

	bad := s.Snapshot()
	bad.Chess.CurrentIndex = 42
	if _, err := Restore(catalogs, bad); !errors.Is(err, ErrStateMismatch) {
		t.Errorf("expected ErrStateMismatch, got %v", err)
	}

	bad = s.Snapshot()
	bad.Stage = StageFootball
	if _, err := Restore(catalogs, bad); !errors.Is(err, ErrStateMismatch) {
		t.Errorf("football stage before chess completion: expected ErrStateMismatch, got %v", err)
	}

	bad = s.Snapshot()
	bad.Stage = "rugby"
	if _, err := Restore(catalogs, bad); !errors.Is(err, ErrInvalidStage) {
		t.Errorf("expected ErrInvalidStage, got %v", err)
	}
}
