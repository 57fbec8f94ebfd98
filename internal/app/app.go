// internal/app/app.go

// Package app is the bubbletea model that ties the daemon client, the panes
// and the normal mode dispatcher together.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vimpd/internal/browse"
	"github.com/llehouerou/vimpd/internal/config"
	"github.com/llehouerou/vimpd/internal/keymap"
	"github.com/llehouerou/vimpd/internal/library"
	"github.com/llehouerou/vimpd/internal/mpdclient"
	"github.com/llehouerou/vimpd/internal/normal"
	"github.com/llehouerou/vimpd/internal/player"
	"github.com/llehouerou/vimpd/internal/playlist"
	"github.com/llehouerou/vimpd/internal/search"
	"github.com/llehouerou/vimpd/internal/state"
	"github.com/llehouerou/vimpd/internal/ui/screen"
)

// Options are the collaborators built by main.
type Options struct {
	Config *config.Config
	Client *mpdclient.Client
	State  state.Interface
	// Search preloads the pattern used by n and N.
	Search string
}

// Model is the root application model.
type Model struct {
	Config   *config.Config
	Client   *mpdclient.Client
	StateMgr state.Interface

	Playlist *playlist.Playlist
	Buffer   *playlist.PasteBuffer
	Library  *library.Library
	Browse   *browse.Browse

	Screen       *screen.Screen
	PlaylistView *screen.PlaylistWindow
	Search       *search.Search
	Player       *player.Player
	Mode         *normal.Mode

	keys            keyMap
	modeActive      bool
	pendingLines    map[string]int
	playlistVersion int

	Loading bool
	Width   int
	Height  int
}

// dispatchScreen narrows the screen's window type to what the dispatcher needs.
type dispatchScreen struct {
	*screen.Screen
}

func (s dispatchScreen) ActiveWindow() normal.Window {
	return s.Screen.ActiveWindow()
}

// New wires the model. Daemon content arrives later through Init.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	margin := cfg.UI.GetScrollMargin()
	client := opts.Client

	pl := playlist.New()
	buf := playlist.NewPasteBuffer()
	lib := library.New(pl)
	brw := browse.New(pl)

	plView := screen.NewPlaylistWindow(margin, pl, client)
	scr := screen.New(
		screen.NewLibraryWindow(margin, lib, client),
		screen.NewBrowseWindow(margin, brw, client),
		plView,
		screen.NewHelpWindow(margin, keymap.Bindings),
	)

	srch := search.New(func() search.Window { return scr.ActiveWindow() })
	srch.SetPattern(opts.Search)
	plr := player.New(client, pl, scr.Invalidate)

	mode := normal.New(normal.Deps{
		Screen:   dispatchScreen{scr},
		Playlist: pl,
		Buffer:   buf,
		Client:   client,
		Library:  lib,
		Browse:   brw,
		Player:   plr,
		Search:   srch,
	})

	m := Model{
		Config:       cfg,
		Client:       client,
		StateMgr:     opts.State,
		Playlist:     pl,
		Buffer:       buf,
		Library:      lib,
		Browse:       brw,
		Screen:       scr,
		PlaylistView: plView,
		Search:       srch,
		Player:       plr,
		Mode:         mode,
		keys:         defaultKeyMap(),
		Loading:      true,
	}
	m.restoreSession()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadCmd(m.Client),
		TickCmd(m.Config.UI.GetPollInterval()),
	)
}
