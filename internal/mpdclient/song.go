// internal/mpdclient/song.go
package mpdclient

import (
	"strconv"
	"strings"
	"time"

	"github.com/fhs/gompd/v2/mpd"

	"github.com/llehouerou/vimpd/internal/playlist"
)

// songFromAttrs converts a song entry. ok is false for directory and
// playlist entries.
func songFromAttrs(a mpd.Attrs) (playlist.Song, bool) {
	uri := a["file"]
	if uri == "" {
		return playlist.Song{}, false
	}
	return playlist.Song{
		URI:      uri,
		Artist:   a["Artist"],
		Album:    a["Album"],
		Title:    a["Title"],
		Track:    parseTrack(a["Track"]),
		Duration: parseDuration(a),
	}, true
}

func songsFromAttrs(list []mpd.Attrs) []playlist.Song {
	songs := make([]playlist.Song, 0, len(list))
	for _, a := range list {
		if s, ok := songFromAttrs(a); ok {
			songs = append(songs, s)
		}
	}
	return songs
}

// parseTrack reads "3" or "3/12".
func parseTrack(s string) int {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// parseDuration prefers the fractional "duration" field over "Time".
func parseDuration(a mpd.Attrs) time.Duration {
	if v, ok := a["duration"]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return time.Duration(f * float64(time.Second))
		}
	}
	if n, err := strconv.Atoi(a["Time"]); err == nil {
		return time.Duration(n) * time.Second
	}
	return 0
}

func parseStatus(a mpd.Attrs) Status {
	st := Status{
		State:  parseState(a["state"]),
		Random: a["random"] == "1",
		Song:   -1,
	}
	if n, err := strconv.Atoi(a["song"]); err == nil {
		st.Song = n
	}
	if n, err := strconv.Atoi(a["playlist"]); err == nil {
		st.PlaylistVersion = n
	}
	if n, err := strconv.Atoi(a["playlistlength"]); err == nil {
		st.PlaylistLength = n
	}
	return st
}
