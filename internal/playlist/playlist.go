package playlist

import "slices"

// Playlist is the local copy of the daemon's play queue.
// Callers keep it in lock-step with the daemon: the daemon call comes first,
// the local mutation only once the daemon accepted it.
type Playlist struct {
	songs []Song
}

// New creates an empty playlist.
func New() *Playlist {
	return &Playlist{
		songs: make([]Song, 0),
	}
}

// Size returns the number of songs.
func (p *Playlist) Size() int {
	return len(p.songs)
}

// Get returns the song at index.
func (p *Playlist) Get(index int) (Song, bool) {
	if index < 0 || index >= len(p.songs) {
		return Song{}, false
	}
	return p.songs[index], true
}

// Add inserts song at index. Indices past the end append.
func (p *Playlist) Add(song Song, index int) {
	index = min(max(index, 0), len(p.songs))
	p.songs = slices.Insert(p.songs, index, song)
}

// Remove deletes up to n songs starting at index and returns them in order.
// Out of range requests remove nothing.
func (p *Playlist) Remove(index, n int) []Song {
	if index < 0 || index >= len(p.songs) || n <= 0 {
		return nil
	}
	end := min(index+n, len(p.songs))
	removed := slices.Clone(p.songs[index:end])
	p.songs = slices.Delete(p.songs, index, end)
	return removed
}

// Index returns the position of the first song with the same URI, or -1.
func (p *Playlist) Index(song Song) int {
	return slices.IndexFunc(p.songs, func(s Song) bool {
		return s.URI == song.URI
	})
}

// Clear removes all songs.
func (p *Playlist) Clear() {
	p.songs = p.songs[:0]
}

// Replace swaps the content for songs, used when resyncing from the daemon.
func (p *Playlist) Replace(songs []Song) {
	p.songs = append(p.songs[:0], songs...)
}

// Songs returns a copy of all songs.
func (p *Playlist) Songs() []Song {
	return slices.Clone(p.songs)
}
