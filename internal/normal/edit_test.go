package normal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/vimpd/internal/playlist"
	"github.com/llehouerou/vimpd/internal/ui/screen"
)

func TestDelete_SingleWithCount(t *testing.T) {
	f := newFixture(5)
	w := f.screen.windows[screen.Playlist]
	w.line = 1

	assert.True(t, f.keys("3d"))

	assert.Equal(t, []string{"song0.flac", "song4.flac"}, f.playlistURIs())
	assert.Equal(t, f.playlistURIs(), f.client.queue)
	assert.Equal(t, []string{"song1.flac", "song2.flac", "song3.flac"}, uris(f.buffer.Songs()))
	assert.Equal(t, []string{"delete 1", "delete 1", "delete 1"}, f.client.calls)
	assert.Equal(t, []int{1}, w.jumps, "cursor returns to its line")
}

func TestDelete_SingleDefaultCount(t *testing.T) {
	f := newFixture(3)
	f.screen.windows[screen.Playlist].line = 2

	f.keys("d")

	assert.Equal(t, []string{"song0.flac", "song1.flac"}, f.playlistURIs())
	assert.Equal(t, []string{"song2.flac"}, uris(f.buffer.Songs()))
}

func TestDelete_PastEnd(t *testing.T) {
	f := newFixture(3)
	f.screen.windows[screen.Playlist].line = 1

	f.keys("5d")

	assert.Equal(t, []string{"song0.flac"}, f.playlistURIs())
	assert.Equal(t, []string{"song1.flac", "song2.flac"}, uris(f.buffer.Songs()))
	assert.Equal(t, []string{"delete 1", "delete 1"}, f.client.calls)
}

func TestDelete_EmptyPlaylist(t *testing.T) {
	f := newFixture(0)

	assert.True(t, f.keys("d"))
	assert.Empty(t, f.client.calls)
	assert.Equal(t, 0, f.buffer.Size())
}

func TestDelete_SingleOnLibraryIsNoop(t *testing.T) {
	f := newFixture(3)
	f.buffer.Add(song(9))
	f.screen.active = screen.Library

	assert.True(t, f.keys("d"))

	assert.Equal(t, 3, f.playlist.Size())
	assert.Equal(t, 1, f.buffer.Size(), "the buffer survives a refused delete")
	assert.Empty(t, f.client.calls)
}

func TestDelete_All(t *testing.T) {
	for _, pane := range []screen.WindowID{screen.Library, screen.Playlist, screen.Help} {
		t.Run(pane.String(), func(t *testing.T) {
			f := newFixture(4)
			f.buffer.Add(song(9))
			f.screen.active = pane
			f.screen.windows[pane].line = 2

			assert.True(t, f.keys("3D"), "count is ignored")

			assert.Equal(t, 0, f.playlist.Size())
			assert.Empty(t, f.client.queue)
			assert.Equal(t, 0, f.buffer.Size())
			assert.Equal(t, []string{"clear"}, f.client.calls)
			assert.Equal(t, []int{2}, f.screen.windows[pane].jumps)
		})
	}
}

func TestDelete_Browse(t *testing.T) {
	f := newFixture(5)
	f.browse.songs = []playlist.Song{song(3), song(9), song(1)}
	f.screen.active = screen.Browse
	w := f.screen.windows[screen.Browse]
	w.size = 3

	f.keys("3d")

	assert.Equal(t, []string{"song0.flac", "song2.flac", "song4.flac"}, f.playlistURIs())
	assert.Equal(t, []string{"song3.flac", "song1.flac"}, uris(f.buffer.Songs()))
	assert.Equal(t, []string{"delete 3", "delete 1"}, f.client.calls)
	assert.Equal(t, []int{1, 1, 1}, w.scrolls, "browse advances once per item")
	assert.Empty(t, w.jumps, "browse keeps its cursor where the scan ended")
}

func TestDelete_RefusedByDaemon(t *testing.T) {
	f := newFixture(3)
	f.buffer.Add(song(9))
	f.client.fail["delete"] = true

	f.keys("2d")

	assert.Equal(t, 3, f.playlist.Size(), "local playlist follows the daemon")
	assert.Equal(t, 3, len(f.client.queue))
	assert.Equal(t, 0, f.buffer.Size())
	assert.Equal(t, []string{"delete 0", "delete 0"}, f.client.calls)
}

func TestDelete_AllRefusedByDaemon(t *testing.T) {
	f := newFixture(3)
	f.client.fail["clear"] = true

	f.keys("D")

	assert.Equal(t, 3, f.playlist.Size())
}

func TestPaste_RepeatsBufferInOrder(t *testing.T) {
	f := newFixture(3)
	f.buffer.Add(song(7), song(8))
	f.screen.windows[screen.Playlist].line = 1

	assert.True(t, f.keys("2P"))

	assert.Equal(t, []string{
		"addat song7.flac 1", "addat song8.flac 2",
		"addat song7.flac 3", "addat song8.flac 4",
	}, f.client.calls)
	assert.Equal(t, []string{
		"song0.flac", "song7.flac", "song8.flac", "song7.flac", "song8.flac",
		"song1.flac", "song2.flac",
	}, f.playlistURIs())
	assert.Equal(t, f.playlistURIs(), f.client.queue)
	assert.Equal(t, 2, f.buffer.Size(), "paste keeps the buffer")
}

func TestPaste_EmptyBuffer(t *testing.T) {
	f := newFixture(3)

	assert.True(t, f.keys("P"))
	assert.Empty(t, f.client.calls)
	assert.Equal(t, 3, f.playlist.Size())
}

func TestPaste_ClampsToPlaylistEnd(t *testing.T) {
	f := newFixture(2)
	f.buffer.Add(song(7))
	f.screen.active = screen.Library
	f.screen.windows[screen.Library].line = 40

	f.keys("P")

	assert.Equal(t, []string{"addat song7.flac 2"}, f.client.calls)
	assert.Equal(t, []string{"song0.flac", "song1.flac", "song7.flac"}, f.playlistURIs())
}

func TestPaste_RefusedByDaemon(t *testing.T) {
	f := newFixture(2)
	f.buffer.Add(song(7), song(8))
	f.client.fail["addat"] = true

	f.keys("P")

	assert.Equal(t, []string{"addat song7.flac 0", "addat song8.flac 0"}, f.client.calls)
	assert.Equal(t, 2, f.playlist.Size())
}

func TestDeleteThenPasteRestores(t *testing.T) {
	f := newFixture(4)
	f.screen.windows[screen.Playlist].line = 1
	before := f.playlistURIs()

	f.keys("2d")
	f.keys("P")

	assert.Equal(t, before, f.playlistURIs())
}

func TestAdd_Library(t *testing.T) {
	f := newFixture(0)
	f.screen.active = screen.Library
	w := f.screen.windows[screen.Library]
	w.size = 10
	w.line = 2

	assert.True(t, f.keys("3a"))

	assert.Equal(t, []string{"add single 2", "add single 3", "add single 4"}, f.library.calls)
	assert.Equal(t, []int{3}, w.scrolls)
}

func TestAdd_Browse(t *testing.T) {
	f := newFixture(0)
	f.screen.active = screen.Browse
	w := f.screen.windows[screen.Browse]
	w.size = 10
	w.line = 4

	f.keys("2a")

	assert.Equal(t, []int{4, 5}, f.browse.added)
	assert.Empty(t, f.library.calls)
	assert.Equal(t, []int{2}, w.scrolls)
}

func TestAdd_AllUsesLibrary(t *testing.T) {
	f := newFixture(3)
	f.screen.active = screen.Browse
	f.screen.windows[screen.Browse].size = 5

	f.keys("A")

	assert.Equal(t, []string{"add all 0"}, f.library.calls)
	assert.Empty(t, f.browse.added)
}

func TestAdd_PlaylistPane(t *testing.T) {
	f := newFixture(3)
	w := f.screen.windows[screen.Playlist]

	f.keys("a")
	assert.Empty(t, f.library.calls)
	assert.Empty(t, f.browse.added)

	f.keys("2A")
	assert.Equal(t, []string{"add all 0", "add all 1"}, f.library.calls)
	assert.Empty(t, w.scrolls, "the playlist pane does not advance")
}
