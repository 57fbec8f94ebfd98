package library

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/vimpd/internal/playlist"
)

type fakeRemote struct {
	added []string
	fail  bool
}

func (f *fakeRemote) Add(uri string) error {
	if f.fail {
		return errors.New("connection refused")
	}
	f.added = append(f.added, uri)
	return nil
}

func (f *fakeRemote) AddAt(string, int) error { return nil }
func (f *fakeRemote) Delete(int) error        { return nil }
func (f *fakeRemote) Clear() error            { return nil }

func testSongs() []playlist.Song {
	return []playlist.Song{
		{URI: "b/x/2.mp3", Artist: "Beta", Album: "X", Title: "Two", Track: 2},
		{URI: "a/y/1.mp3", Artist: "alpha", Album: "Y", Title: "One", Track: 1},
		{URI: "b/x/1.mp3", Artist: "Beta", Album: "X", Title: "One", Track: 1},
		{URI: "b/w/1.mp3", Artist: "Beta", Album: "W", Title: "Solo", Track: 1},
		{URI: "untagged.mp3"},
	}
}

func newLoaded(t *testing.T) (*Library, *playlist.Playlist) {
	t.Helper()
	queue := playlist.New()
	l := New(queue)
	l.Load(testSongs())
	return l, queue
}

func TestLoad_SortsArtistsCaseInsensitively(t *testing.T) {
	l, _ := newLoaded(t)

	require.Equal(t, 3, l.Size())
	assert.Equal(t, "+ alpha", l.Line(0))
	assert.Equal(t, "+ Beta", l.Line(1))
	assert.Equal(t, "+ "+unknownArtist, l.Line(2))
	assert.Equal(t, 5, l.SongCount())
	assert.Equal(t, 3, l.ArtistCount())
}

func TestExpand(t *testing.T) {
	l, _ := newLoaded(t)

	l.Expand(1) // Beta
	require.Equal(t, 5, l.Size())
	assert.Equal(t, "- Beta", l.Line(1))
	assert.Equal(t, "  + W", l.Line(2))
	assert.Equal(t, "  + X", l.Line(3))

	l.Expand(3) // X
	require.Equal(t, 7, l.Size())
	assert.Equal(t, "      Beta - One", l.Line(4))
	assert.Equal(t, "      Beta - Two", l.Line(5))

	lvl, ok := l.Level(4)
	assert.True(t, ok)
	assert.Equal(t, LevelSong, lvl)
}

func TestExpand_SongAndOutOfRangeAreNoOps(t *testing.T) {
	l, _ := newLoaded(t)
	l.Expand(0)
	l.Expand(1)
	size := l.Size()

	l.Expand(2) // song row
	l.Expand(99)
	l.Expand(-1)

	assert.Equal(t, size, l.Size())
}

func TestCollapseAt(t *testing.T) {
	l, _ := newLoaded(t)
	l.Expand(1) // Beta
	l.Expand(3) // X, songs at 4 and 5

	row := l.CollapseAt(5) // song -> collapses album X
	assert.Equal(t, 3, row)
	assert.Equal(t, 5, l.Size())

	row = l.CollapseAt(3) // closed album -> collapses Beta
	assert.Equal(t, 1, row)
	assert.Equal(t, 3, l.Size())

	row = l.CollapseAt(1) // closed artist has no parent
	assert.Equal(t, 1, row)
	assert.Equal(t, 3, l.Size())
}

func TestLoad_KeepsExpandedNodes(t *testing.T) {
	l, _ := newLoaded(t)
	l.Expand(1)

	l.Load(testSongs())

	assert.Equal(t, "- Beta", l.Line(1))
	assert.Equal(t, 5, l.Size())
}

func TestSongs(t *testing.T) {
	l, _ := newLoaded(t)

	songs := l.Songs(1)
	require.Len(t, songs, 3)
	assert.Equal(t, "b/w/1.mp3", songs[0].URI)
	assert.Equal(t, "b/x/1.mp3", songs[1].URI)
	assert.Equal(t, "b/x/2.mp3", songs[2].URI)

	assert.Nil(t, l.Songs(42))
	assert.Len(t, l.AllSongs(), 5)
}

func TestAddToPlaylist_Single(t *testing.T) {
	l, queue := newLoaded(t)
	remote := &fakeRemote{}

	l.AddToPlaylist(playlist.Single, remote, 0)

	assert.Equal(t, []string{"a/y/1.mp3"}, remote.added)
	assert.Equal(t, 1, queue.Size())
}

func TestAddToPlaylist_All(t *testing.T) {
	l, queue := newLoaded(t)
	remote := &fakeRemote{}

	l.AddToPlaylist(playlist.All, remote, 42)

	assert.Len(t, remote.added, 5)
	assert.Equal(t, 5, queue.Size())
}

func TestAddToPlaylist_FailedDaemonCallLeavesQueue(t *testing.T) {
	l, queue := newLoaded(t)

	l.AddToPlaylist(playlist.All, &fakeRemote{fail: true}, 0)

	assert.Equal(t, 0, queue.Size())
}

func TestAddToPlaylist_OutOfRangeIsNoOp(t *testing.T) {
	l, queue := newLoaded(t)
	remote := &fakeRemote{}

	l.AddToPlaylist(playlist.Single, remote, 10)

	assert.Empty(t, remote.added)
	assert.Equal(t, 0, queue.Size())
}
