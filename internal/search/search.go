// Package search finds the next or previous line of the active window that
// matches the last search pattern.
package search

import (
	"strings"

	"github.com/llehouerou/vimpd/internal/ui/screen"
)

// Window is the searchable view of a pane.
type Window interface {
	CurrentLine() int
	ContentSize() int
	Line(i int) string
	ScrollTo(line int)
}

// Search holds the pattern and moves the active window between matches.
// Every word of the pattern must appear in a line, ignoring case and accents.
type Search struct {
	active  func() Window
	pattern string
	words   []string
}

// New creates a search over whatever window active returns.
func New(active func() Window) *Search {
	return &Search{active: active}
}

// SetPattern replaces the search pattern. A blank pattern disables searching.
func (s *Search) SetPattern(pattern string) {
	s.pattern = pattern
	s.words = strings.Fields(normalize(pattern))
}

// Pattern returns the current pattern.
func (s *Search) Pattern() string {
	return s.pattern
}

// Matches reports whether line matches the pattern.
func (s *Search) Matches(line string) bool {
	if len(s.words) == 0 {
		return false
	}
	text := normalize(line)
	for _, w := range s.words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

// SearchResult moves the cursor count matches forwards (Next) or backwards
// (Previous), wrapping around the content. It reports false and leaves the
// cursor alone when nothing matches.
func (s *Search) SearchResult(skip screen.Skip, count uint32) bool {
	w := s.active()
	if w == nil || len(s.words) == 0 {
		return false
	}
	size := w.ContentSize()
	if size == 0 {
		return false
	}

	step := 1
	if skip == screen.Previous {
		step = -1
	}

	line := w.CurrentLine()
	for range max(count, 1) {
		next, ok := s.find(w, line, step, size)
		if !ok {
			return false
		}
		line = next
	}
	w.ScrollTo(line)
	return true
}

// find scans one full lap from the line after from, ending on from itself.
func (s *Search) find(w Window, from, step, size int) (int, bool) {
	for i := 1; i <= size; i++ {
		l := ((from+i*step)%size + size) % size
		if s.Matches(w.Line(l)) {
			return l, true
		}
	}
	return 0, false
}
