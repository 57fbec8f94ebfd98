package screen

import "github.com/llehouerou/vimpd/internal/ui/cursor"

// Window is one of the main panes.
type Window interface {
	Title() string
	CurrentLine() int
	ContentSize() int
	Line(i int) string
	// Playing returns the row of the playing song, or -1.
	Playing() int

	Scroll(n int)
	ScrollTo(line int)
	Select(anchor cursor.Anchor, n int)
	Align(anchor cursor.Anchor)

	Left(count uint32)
	Right(count uint32)
	Confirm()

	Resize(rows int)
	Sync()
	Cursor() *cursor.Cursor
}

// ScrollWindow implements the cursor handling shared by every window.
// Concrete windows embed it and override Left, Right, Confirm and Playing
// where they mean something.
type ScrollWindow struct {
	cursor cursor.Cursor
	rows   int
	size   func() int
	line   func(int) string
}

func newScrollWindow(margin int, size func() int, line func(int) string) ScrollWindow {
	return ScrollWindow{
		cursor: cursor.New(margin),
		size:   size,
		line:   line,
	}
}

func (w *ScrollWindow) CurrentLine() int  { return w.cursor.Pos() }
func (w *ScrollWindow) ContentSize() int  { return w.size() }
func (w *ScrollWindow) Line(i int) string { return w.line(i) }
func (w *ScrollWindow) Playing() int      { return -1 }

func (w *ScrollWindow) Cursor() *cursor.Cursor { return &w.cursor }

// Scroll moves the cursor by n rows, clamped to the content.
func (w *ScrollWindow) Scroll(n int) {
	w.cursor.Move(n, w.size(), w.rows)
}

// ScrollTo moves the cursor to line, clamped to the content.
func (w *ScrollWindow) ScrollTo(line int) {
	w.cursor.Jump(line, w.size(), w.rows)
}

func (w *ScrollWindow) Select(anchor cursor.Anchor, n int) {
	w.cursor.Select(anchor, n, w.size(), w.rows)
}

func (w *ScrollWindow) Align(anchor cursor.Anchor) {
	w.cursor.Align(anchor, w.size(), w.rows)
}

func (w *ScrollWindow) Left(uint32)  {}
func (w *ScrollWindow) Right(uint32) {}
func (w *ScrollWindow) Confirm()     {}

// Resize sets the number of content rows.
func (w *ScrollWindow) Resize(rows int) {
	w.rows = rows
	w.cursor.EnsureVisible(w.size(), rows)
}

// Sync pulls the cursor back inside the content after it shrank.
func (w *ScrollWindow) Sync() {
	w.cursor.ClampToBounds(w.size())
	w.cursor.EnsureVisible(w.size(), w.rows)
}
