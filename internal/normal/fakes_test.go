package normal

import (
	"errors"
	"fmt"

	"github.com/llehouerou/vimpd/internal/playlist"
	"github.com/llehouerou/vimpd/internal/ui/screen"
)

type fakeWindow struct {
	line     int
	size     int
	scrolls  []int
	jumps    []int
	lefts    []uint32
	rights   []uint32
	confirms int
}

func (w *fakeWindow) CurrentLine() int { return w.line }
func (w *fakeWindow) ContentSize() int { return w.size }

func (w *fakeWindow) clamp() {
	w.line = min(w.line, w.size-1)
	w.line = max(w.line, 0)
}

func (w *fakeWindow) Scroll(n int) {
	w.scrolls = append(w.scrolls, n)
	w.line += n
	w.clamp()
}

func (w *fakeWindow) ScrollTo(line int) {
	w.jumps = append(w.jumps, line)
	w.line = line
	w.clamp()
}

func (w *fakeWindow) Left(count uint32)  { w.lefts = append(w.lefts, count) }
func (w *fakeWindow) Right(count uint32) { w.rights = append(w.rights, count) }
func (w *fakeWindow) Confirm()           { w.confirms++ }

type fakeScreen struct {
	windows map[screen.WindowID]*fakeWindow
	active  screen.WindowID
	rows    int
	columns int
	calls   []string
}

func newFakeScreen() *fakeScreen {
	s := &fakeScreen{
		windows: map[screen.WindowID]*fakeWindow{},
		active:  screen.Playlist,
		rows:    24,
		columns: 80,
	}
	for id := range screen.WindowID(screen.NumWindows) {
		s.windows[id] = &fakeWindow{}
	}
	return s
}

func (s *fakeScreen) record(format string, args ...any) {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

func (s *fakeScreen) window() *fakeWindow              { return s.windows[s.active] }
func (s *fakeScreen) ActiveWindow() Window             { return s.window() }
func (s *fakeScreen) GetActiveWindow() screen.WindowID { return s.active }
func (s *fakeScreen) VisibleWindows() int              { return screen.NumWindows }
func (s *fakeScreen) MaxRows() int                     { return s.rows }
func (s *fakeScreen) MaxColumns() int                  { return s.columns }

func (s *fakeScreen) SetActiveWindow(id screen.WindowID) {
	s.record("set %d", id)
	if _, ok := s.windows[id]; ok {
		s.active = id
	}
}

func (s *fakeScreen) StepActiveWindow(skip screen.Skip) {
	s.record("step %d", skip)
	n := screen.WindowID(screen.NumWindows)
	if skip == screen.Previous {
		s.active = (s.active + n - 1) % n
	} else {
		s.active = (s.active + 1) % n
	}
}

func (s *fakeScreen) Scroll(size screen.Size, dir screen.Direction, count uint32) {
	s.record("scroll %d %d %d", size, dir, count)
}

func (s *fakeScreen) ScrollTo(loc screen.Location) {
	s.record("scrollto %d", loc)
}

func (s *fakeScreen) ScrollToLine(loc screen.Location, line uint32) {
	s.record("scrolltoline %d %d", loc, line)
}

func (s *fakeScreen) Select(pos screen.Position, count uint32) {
	s.record("select %d %d", pos, count)
}

func (s *fakeScreen) AlignTo(loc screen.Location, line uint32) {
	s.record("align %d %d", loc, line)
}

// fakeClient keeps the daemon's view of the queue as URIs.
type fakeClient struct {
	queue   []string
	calls   []string
	fail    map[string]bool
	state   string
	lastErr error
}

func newFakeClient() *fakeClient {
	return &fakeClient{fail: map[string]bool{}, state: "Playing"}
}

func (c *fakeClient) refuse(op string) error {
	if c.fail[op] {
		c.lastErr = errors.New("Failed to " + op + ": refused")
		return c.lastErr
	}
	return nil
}

func (c *fakeClient) Add(uri string) error {
	c.calls = append(c.calls, "add "+uri)
	if err := c.refuse("add"); err != nil {
		return err
	}
	c.queue = append(c.queue, uri)
	return nil
}

func (c *fakeClient) AddAt(uri string, pos int) error {
	c.calls = append(c.calls, fmt.Sprintf("addat %s %d", uri, pos))
	if err := c.refuse("addat"); err != nil {
		return err
	}
	c.queue = append(c.queue[:pos], append([]string{uri}, c.queue[pos:]...)...)
	return nil
}

func (c *fakeClient) Delete(index int) error {
	c.calls = append(c.calls, fmt.Sprintf("delete %d", index))
	if err := c.refuse("delete"); err != nil {
		return err
	}
	c.queue = append(c.queue[:index], c.queue[index+1:]...)
	return nil
}

func (c *fakeClient) Clear() error {
	c.calls = append(c.calls, "clear")
	if err := c.refuse("clear"); err != nil {
		return err
	}
	c.queue = nil
	return nil
}

func (c *fakeClient) CurrentState() string { return c.state }
func (c *fakeClient) LastError() error     { return c.lastErr }
func (c *fakeClient) ClearError()          { c.lastErr = nil }

type fakeLibrary struct {
	calls []string
	// collapsedRow is what CollapseAt returns; negative means the index itself.
	collapsedRow int
}

func (l *fakeLibrary) AddToPlaylist(scope playlist.Scope, _ playlist.Remote, index int) {
	l.calls = append(l.calls, fmt.Sprintf("add %s %d", scope, index))
}

func (l *fakeLibrary) Expand(index int) {
	l.calls = append(l.calls, fmt.Sprintf("expand %d", index))
}

func (l *fakeLibrary) CollapseAt(index int) int {
	l.calls = append(l.calls, fmt.Sprintf("collapse %d", index))
	if l.collapsedRow < 0 {
		return index
	}
	return l.collapsedRow
}

type fakeBrowse struct {
	songs []playlist.Song
	added []int
}

func (b *fakeBrowse) AddToPlaylist(_ playlist.Remote, index int) {
	b.added = append(b.added, index)
}

func (b *fakeBrowse) Get(index int) (playlist.Song, bool) {
	if index < 0 || index >= len(b.songs) {
		return playlist.Song{}, false
	}
	return b.songs[index], true
}

type fakePlayer struct {
	calls []string
}

func (p *fakePlayer) record(format string, args ...any) {
	p.calls = append(p.calls, fmt.Sprintf(format, args...))
}

func (p *fakePlayer) Pause()        { p.record("pause") }
func (p *fakePlayer) Stop()         { p.record("stop") }
func (p *fakePlayer) ToggleRandom() { p.record("random") }
func (p *fakePlayer) ClearScreen()  { p.record("clear") }

func (p *fakePlayer) SkipSong(skip screen.Skip, count uint32) {
	p.record("song %d %d", skip, count)
}

func (p *fakePlayer) SkipAlbum(skip screen.Skip, count uint32) {
	p.record("album %d %d", skip, count)
}

func (p *fakePlayer) SkipArtist(skip screen.Skip, count uint32) {
	p.record("artist %d %d", skip, count)
}

type fakeSearch struct {
	calls  []string
	result bool
}

func (s *fakeSearch) SearchResult(skip screen.Skip, count uint32) bool {
	s.calls = append(s.calls, fmt.Sprintf("search %d %d", skip, count))
	return s.result
}

type fixture struct {
	mode     *Mode
	screen   *fakeScreen
	playlist *playlist.Playlist
	buffer   *playlist.PasteBuffer
	client   *fakeClient
	library  *fakeLibrary
	browse   *fakeBrowse
	player   *fakePlayer
	search   *fakeSearch
}

func song(n int) playlist.Song {
	return playlist.Song{URI: fmt.Sprintf("song%d.flac", n), Title: fmt.Sprintf("Song %d", n)}
}

// newFixture creates a mode over a playlist of n songs, mirrored by the
// client, with the playlist pane active.
func newFixture(n int) *fixture {
	f := &fixture{
		screen:   newFakeScreen(),
		playlist: playlist.New(),
		buffer:   playlist.NewPasteBuffer(),
		client:   newFakeClient(),
		library:  &fakeLibrary{collapsedRow: -1},
		browse:   &fakeBrowse{},
		player:   &fakePlayer{},
		search:   &fakeSearch{result: true},
	}
	for i := range n {
		s := song(i)
		f.playlist.Add(s, i)
		f.client.queue = append(f.client.queue, s.URI)
	}
	f.screen.windows[screen.Playlist].size = n
	f.mode = New(Deps{
		Screen:   f.screen,
		Playlist: f.playlist,
		Buffer:   f.buffer,
		Client:   f.client,
		Library:  f.library,
		Browse:   f.browse,
		Player:   f.player,
		Search:   f.search,
	})
	return f
}

// keys feeds every rune of s as a key.
func (f *fixture) keys(s string) bool {
	ok := true
	for _, r := range s {
		ok = f.mode.Handle(keyOf(r))
	}
	return ok
}

func (f *fixture) playlistURIs() []string {
	out := make([]string, 0, f.playlist.Size())
	for _, s := range f.playlist.Songs() {
		out = append(out, s.URI)
	}
	return out
}

func uris(songs []playlist.Song) []string {
	out := make([]string, 0, len(songs))
	for _, s := range songs {
		out = append(out, s.URI)
	}
	return out
}
