package playlist

import "slices"

// PasteBuffer is the ordered clipboard filled by delete and replayed by paste.
type PasteBuffer struct {
	songs []Song
}

// NewPasteBuffer creates an empty buffer.
func NewPasteBuffer() *PasteBuffer {
	return &PasteBuffer{}
}

// Add appends songs in order.
func (b *PasteBuffer) Add(songs ...Song) {
	b.songs = append(b.songs, songs...)
}

// Get returns the song at index.
func (b *PasteBuffer) Get(index int) (Song, bool) {
	if index < 0 || index >= len(b.songs) {
		return Song{}, false
	}
	return b.songs[index], true
}

// Size returns the number of buffered songs.
func (b *PasteBuffer) Size() int {
	return len(b.songs)
}

// Clear empties the buffer.
func (b *PasteBuffer) Clear() {
	b.songs = nil
}

// Songs returns a copy of the buffered songs.
func (b *PasteBuffer) Songs() []Song {
	return slices.Clone(b.songs)
}
