// Package sequence walks a viewer through puzzle catalogs one puzzle at a time.
package sequence

import "sort"

// State is the position of one pipeline within its catalog. Transitions return
// a new State and never modify the one passed in.
type State struct {
	CurrentIndex int   `json:"current_index"`
	Revealed     []int `json:"revealed,omitempty"`
	Completed    bool  `json:"completed"`
}

// Start is the state of a freshly loaded pipeline.
func Start() State {
	return State{}
}

// Advance moves to the next puzzle, or completes the pipeline when the
// current puzzle is the last of n. A completed state is returned unchanged.
func Advance(s State, n int) State {
	if s.Completed {
		return s
	}
	next := s.clone()
	if s.CurrentIndex < n-1 {
		next.CurrentIndex++
	} else {
		next.Completed = true
	}
	return next
}

// Reveal records that the answer of the current puzzle has been shown.
func Reveal(s State) State {
	if s.Completed || s.IsRevealed(s.CurrentIndex) {
		return s
	}
	next := s.clone()
	i := sort.SearchInts(next.Revealed, s.CurrentIndex)
	next.Revealed = append(next.Revealed, 0)
	copy(next.Revealed[i+1:], next.Revealed[i:])
	next.Revealed[i] = s.CurrentIndex
	return next
}

// Load jumps to index. Loading past the end of a catalog of n puzzles
// completes the pipeline.
func Load(s State, index, n int) State {
	if s.Completed {
		return s
	}
	next := s.clone()
	if index >= n {
		next.Completed = true
		return next
	}
	if index < 0 {
		index = 0
	}
	next.CurrentIndex = index
	return next
}

// IsComplete reports whether the pipeline has run past the last of n puzzles.
func IsComplete(s State, n int) bool {
	return s.Completed || s.CurrentIndex >= n
}

// Progress is the fraction of the catalog reached, counting the current puzzle.
func Progress(s State, n int) float64 {
	if n <= 0 {
		return 1
	}
	p := float64(s.CurrentIndex+1) / float64(n)
	if p > 1 {
		return 1
	}
	return p
}

func (s State) IsRevealed(index int) bool {
	i := sort.SearchInts(s.Revealed, index)
	return i < len(s.Revealed) && s.Revealed[i] == index
}

func (s State) clone() State {
	s.Revealed = append([]int(nil), s.Revealed...)
	return s
}
