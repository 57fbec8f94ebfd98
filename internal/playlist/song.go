// Package playlist holds the local mirror of the daemon's play queue and the
// paste buffer that delete fills and paste consumes.
package playlist

import (
	"fmt"
	"time"
)

// Song is a single entry known to the daemon, identified by its URI.
type Song struct {
	URI      string // path relative to the daemon's music directory
	Artist   string
	Album    string
	Title    string
	Track    int
	Duration time.Duration
}

// Display returns the "Artist - Title" form used by the panes.
// Songs without tags fall back to their URI.
func (s Song) Display() string {
	switch {
	case s.Title == "":
		return s.URI
	case s.Artist == "":
		return s.Title
	default:
		return s.Artist + " - " + s.Title
	}
}

// Length formats the duration as m:ss.
func (s Song) Length() string {
	if s.Duration <= 0 {
		return ""
	}
	total := int(s.Duration.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Scope selects whether a collection edit touches one item or everything.
type Scope int

const (
	Single Scope = iota
	All
)

func (s Scope) String() string {
	if s == All {
		return "all"
	}
	return "single"
}
