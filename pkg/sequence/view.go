package sequence

import (
	"fmt"
	"strconv"
)

// View is everything a display needs to draw the current slide.
type View struct {
	Stage     Stage `json:"stage"`
	Index     int   `json:"index"`
	Total     int   `json:"total"`
	Completed bool  `json:"completed"`
	CanUnlock bool  `json:"can_unlock,omitempty"`

	Title       string `json:"title,omitempty"`
	Answer      string `json:"answer,omitempty"`
	AnswerShown bool   `json:"answer_shown"`
	Turn        string `json:"turn,omitempty"`
	FEN         string `json:"fen,omitempty"`
	Image       string `json:"image,omitempty"`

	Progress      float64 `json:"progress"`
	ProgressWidth string  `json:"progress_width"`
	ProgressText  string  `json:"progress_text"`

	Headline string `json:"headline,omitempty"`
	Message  string `json:"message,omitempty"`
	Footer   string `json:"footer,omitempty"`
}

// View renders the active pipeline. The answer is only included once revealed.
func (s *Slideshow) View() View {
	if s.stage == StageFootball {
		return s.footballView()
	}
	return s.chessView()
}

func (s *Slideshow) chessView() View {
	n := s.catalogs.Chess.Len()
	v := progressView(StageChess, s.chess, n, "Puzzle")
	if v.Completed {
		v.CanUnlock = true
		v.Headline = "Well done!"
		v.Message = "You've completed all chess puzzles!"
		v.Footer = "Ready for something different? Unlock the football puzzles."
		return v
	}
	p, _ := s.catalogs.Chess.Puzzle(s.chess.CurrentIndex)
	v.Title = p.Title
	v.Turn = p.ToMove.Label()
	v.FEN = s.catalogs.Chess.FEN(s.chess.CurrentIndex)
	if v.AnswerShown {
		v.Answer = p.Answer
	}
	return v
}

func (s *Slideshow) footballView() View {
	n := s.catalogs.Football.Len()
	v := progressView(StageFootball, s.football, n, "Football Puzzle")
	if v.Completed {
		v.Headline = "Amazing!"
		v.Message = "You've completed all football puzzles!"
		v.Footer = "You're a true CrazyMoves master!"
		return v
	}
	p, _ := s.catalogs.Football.Puzzle(s.football.CurrentIndex)
	v.Title = p.Title
	v.Image = p.Image
	if v.AnswerShown {
		v.Answer = p.Answer
	}
	return v
}

func progressView(stage Stage, st State, n int, label string) View {
	progress := Progress(st, n) * 100
	completed := IsComplete(st, n)
	return View{
		Stage:         stage,
		Index:         st.CurrentIndex,
		Total:         n,
		Completed:     completed,
		AnswerShown:   !completed && st.IsRevealed(st.CurrentIndex),
		Progress:      progress,
		ProgressWidth: strconv.FormatFloat(progress, 'f', -1, 64) + "%",
		ProgressText:  fmt.Sprintf("%s %d of %d", label, st.CurrentIndex+1, n),
	}
}
