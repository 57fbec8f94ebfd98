// Package player drives the daemon's transport: pause, stop, random and the
// song/album/artist skips the mode dispatches.
package player

import (
	"github.com/llehouerou/vimpd/internal/mpdclient"
	"github.com/llehouerou/vimpd/internal/playlist"
	"github.com/llehouerou/vimpd/internal/ui/screen"
)

// Transport is the daemon side of the player.
type Transport interface {
	Pause() error
	Stop() error
	ToggleRandom() error
	Play(pos int) error
	Next() error
	Previous() error
	Status() (mpdclient.Status, error)
}

// Queue is the local mirror of the daemon playlist.
type Queue interface {
	Size() int
	Get(i int) (playlist.Song, bool)
}

// Player forwards transport commands. Errors are already recorded by the
// client and shown in the mode line, so the player only logs them.
type Player struct {
	transport Transport
	queue     Queue
	repaint   func()
}

// New creates a player. repaint is invoked by ClearScreen and may be nil.
func New(transport Transport, queue Queue, repaint func()) *Player {
	return &Player{transport: transport, queue: queue, repaint: repaint}
}

// Pause toggles pause.
func (p *Player) Pause() {
	logError("pause", p.transport.Pause())
}

// Stop stops playback.
func (p *Player) Stop() {
	logError("stop", p.transport.Stop())
}

// ToggleRandom flips random mode.
func (p *Player) ToggleRandom() {
	logError("random", p.transport.ToggleRandom())
}

// ClearScreen requests a full repaint.
func (p *Player) ClearScreen() {
	if p.repaint != nil {
		p.repaint()
	}
}

// SkipSong moves count songs forwards or backwards.
func (p *Player) SkipSong(skip screen.Skip, count uint32) {
	step := p.transport.Next
	if skip == screen.Previous {
		step = p.transport.Previous
	}
	for range max(count, 1) {
		if err := step(); err != nil {
			logError("skip song", err)
			return
		}
	}
}

// SkipAlbum plays the first song of the count-th album boundary away.
func (p *Player) SkipAlbum(skip screen.Skip, count uint32) {
	p.skipGroup(skip, count, func(s playlist.Song) string {
		return s.Artist + "\x00" + s.Album
	})
}

// SkipArtist plays the first song of the count-th artist boundary away.
func (p *Player) SkipArtist(skip screen.Skip, count uint32) {
	p.skipGroup(skip, count, func(s playlist.Song) string {
		return s.Artist
	})
}

func (p *Player) skipGroup(skip screen.Skip, count uint32, key func(playlist.Song) string) {
	st, err := p.transport.Status()
	if err != nil {
		logError("skip", err)
		return
	}
	if st.Song < 0 || st.Song >= p.queue.Size() {
		return
	}

	var target int
	if skip == screen.Previous {
		target = p.previousGroup(st.Song, max(count, 1), key)
	} else {
		var ok bool
		target, ok = p.nextGroup(st.Song, max(count, 1), key)
		if !ok {
			return
		}
	}
	logError("skip", p.transport.Play(target))
}

func (p *Player) keyAt(i int, key func(playlist.Song) string) string {
	s, _ := p.queue.Get(i)
	return key(s)
}

// nextGroup walks forward past count group boundaries. ok is false when the
// queue ends first.
func (p *Player) nextGroup(pos int, count uint32, key func(playlist.Song) string) (int, bool) {
	size := p.queue.Size()
	for range count {
		k := p.keyAt(pos, key)
		for pos < size && p.keyAt(pos, key) == k {
			pos++
		}
		if pos >= size {
			return 0, false
		}
	}
	return pos, true
}

// previousGroup returns the start of the group count boundaries back,
// stopping at the first song.
func (p *Player) previousGroup(pos int, count uint32, key func(playlist.Song) string) int {
	pos = p.groupStart(pos, key)
	for range count {
		if pos == 0 {
			break
		}
		pos = p.groupStart(pos-1, key)
	}
	return pos
}

func (p *Player) groupStart(pos int, key func(playlist.Song) string) int {
	k := p.keyAt(pos, key)
	for pos > 0 && p.keyAt(pos-1, key) == k {
		pos--
	}
	return pos
}
