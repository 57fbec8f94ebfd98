// internal/app/messages.go
package app

import (
	"time"

	"github.com/llehouerou/vimpd/internal/mpdclient"
	"github.com/llehouerou/vimpd/internal/playlist"
)

// InitResult carries the daemon content fetched at startup.
type InitResult struct {
	Library  []playlist.Song
	Playlist []playlist.Song
	Status   mpdclient.Status
	Err      error
}

// TickMsg schedules the next status poll.
type TickMsg time.Time

// StatusMsg is the outcome of a status poll. Playlist is set only when the
// daemon's playlist version moved.
type StatusMsg struct {
	Status   mpdclient.Status
	Playlist []playlist.Song
	Resync   bool
	Err      error
}
