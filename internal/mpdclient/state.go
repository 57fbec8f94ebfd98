// internal/mpdclient/state.go
package mpdclient

// State is the daemon's playback state as reported by status.
type State int

const (
	Stopped State = iota
	Playing
	Paused
	Disconnected
)

// String returns the state as shown in the mode line.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Disconnected:
		return "Disconnected"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a song is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

func parseState(s string) State {
	switch s {
	case "play":
		return Playing
	case "pause":
		return Paused
	default:
		return Stopped
	}
}

// Status is the subset of the daemon status the UI consumes.
type Status struct {
	State           State
	Random          bool
	Song            int // queue position of the current song, -1 when none
	PlaylistVersion int
	PlaylistLength  int
}
