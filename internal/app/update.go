// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vimpd/internal/mpdclient"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case InitResult:
		return m.handleInitResult(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case TickMsg:
		if m.Loading {
			return m, TickCmd(m.Config.UI.GetPollInterval())
		}
		return m, pollCmd(m.Client, m.playlistVersion)

	case StatusMsg:
		return m.handleStatus(msg)

	case tea.KeyMsg:
		cmd := m.handleKeyMsg(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleInitResult(msg InitResult) (tea.Model, tea.Cmd) {
	m.Loading = false
	if msg.Err != nil {
		logger.Error("initial load failed", "err", msg.Err)
	}

	m.Library.Load(msg.Library)
	m.Browse.Load(msg.Library)
	m.Playlist.Replace(msg.Playlist)
	m.playlistVersion = msg.Status.PlaylistVersion
	m.PlaylistView.SetPlaying(playingRow(msg.Status))
	m.Screen.Sync()
	m.restoreLines()

	m.enterMode(0)
	logger.Info("loaded",
		"songs", m.Library.SongCount(),
		"queue", m.Playlist.Size(),
	)
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Screen.Resize(msg.Width, msg.Height)
	m.Mode.Refresh()
	return m, nil
}

func (m Model) handleStatus(msg StatusMsg) (tea.Model, tea.Cmd) {
	next := TickCmd(m.Config.UI.GetPollInterval())
	if msg.Err != nil {
		logger.Debug("status poll failed", "err", msg.Err)
		m.Mode.Refresh()
		return m, next
	}

	if msg.Resync {
		m.Playlist.Replace(msg.Playlist)
		m.playlistVersion = msg.Status.PlaylistVersion
		m.Screen.Sync()
	}
	m.PlaylistView.SetPlaying(playingRow(msg.Status))
	m.Mode.Refresh()
	return m, next
}

// playingRow is the playlist row to highlight, -1 when nothing is loaded.
func playingRow(st mpdclient.Status) int {
	if !st.State.IsActive() {
		return -1
	}
	return st.Song
}
