// Package browse is the flat, URI-ordered list of every song in the
// daemon's database.
package browse

import (
	"cmp"
	"slices"

	"github.com/llehouerou/vimpd/internal/playlist"
)

// Browse lists songs one per row.
type Browse struct {
	songs []playlist.Song
	queue *playlist.Playlist
}

// New creates an empty browse list that mirrors additions into queue.
func New(queue *playlist.Playlist) *Browse {
	return &Browse{queue: queue}
}

// Load replaces the content, sorted by URI.
func (b *Browse) Load(songs []playlist.Song) {
	b.songs = slices.Clone(songs)
	slices.SortStableFunc(b.songs, func(x, y playlist.Song) int {
		return cmp.Compare(x.URI, y.URI)
	})
}

// Size returns the number of rows.
func (b *Browse) Size() int {
	return len(b.songs)
}

// Get returns the song on row index.
func (b *Browse) Get(index int) (playlist.Song, bool) {
	if index < 0 || index >= len(b.songs) {
		return playlist.Song{}, false
	}
	return b.songs[index], true
}

// Line renders row index.
func (b *Browse) Line(index int) string {
	s, ok := b.Get(index)
	if !ok {
		return ""
	}
	if l := s.Length(); l != "" {
		return s.Display() + " [" + l + "]"
	}
	return s.Display()
}

// AddToPlaylist queues the song on row index through remote.
func (b *Browse) AddToPlaylist(remote playlist.Remote, index int) {
	s, ok := b.Get(index)
	if !ok {
		return
	}
	playlist.Append(remote, b.queue, s)
}
