package playlist

// Remote is the subset of the daemon client that edits the play queue.
type Remote interface {
	Add(uri string) error
	AddAt(uri string, pos int) error
	Delete(index int) error
	Clear() error
}

// Append asks the daemon to queue each song and mirrors the ones it accepted.
// It returns how many songs were added.
func Append(remote Remote, p *Playlist, songs ...Song) int {
	added := 0
	for _, s := range songs {
		if err := remote.Add(s.URI); err != nil {
			continue
		}
		p.Add(s, p.Size())
		added++
	}
	return added
}
