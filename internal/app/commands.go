// internal/app/commands.go
package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vimpd/internal/mpdclient"
)

// TickCmd returns a command that sends TickMsg after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// loadCmd fetches the database, the queue and the status.
func loadCmd(c *mpdclient.Client) tea.Cmd {
	return func() tea.Msg {
		var r InitResult
		var libErr, plErr, stErr error
		r.Library, libErr = c.Library()
		r.Playlist, plErr = c.Playlist()
		r.Status, stErr = c.Status()
		r.Err = errors.Join(libErr, plErr, stErr)
		return r
	}
}

// pollCmd refreshes the status and refetches the queue when its version
// differs from the one the model last mirrored.
func pollCmd(c *mpdclient.Client, version int) tea.Cmd {
	return func() tea.Msg {
		st, err := c.Status()
		if err != nil {
			return StatusMsg{Err: err}
		}
		msg := StatusMsg{Status: st}
		if st.PlaylistVersion == version {
			return msg
		}
		songs, err := c.Playlist()
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Playlist = songs
		msg.Resync = true
		return msg
	}
}
