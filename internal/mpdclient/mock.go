// internal/mpdclient/mock.go
package mpdclient

import (
	"errors"
	"strconv"

	"github.com/fhs/gompd/v2/mpd"
)

// MockConn is an in-memory daemon for tests.
type MockConn struct {
	Queue    []mpd.Attrs
	Database []mpd.Attrs
	State    string // "play", "pause" or "stop"
	RandomOn bool
	Current  int
	Version  int
	Closed   bool

	// Fail maps a command name ("add", "addid", "delete", ...) to the
	// error it returns.
	Fail  map[string]error
	Calls []string
}

// NewMockConn creates a stopped mock daemon with an empty queue.
func NewMockConn() *MockConn {
	return &MockConn{State: "stop", Current: -1, Fail: map[string]error{}}
}

// File builds a song entry.
func File(uri, artist, album, title string) mpd.Attrs {
	return mpd.Attrs{"file": uri, "Artist": artist, "Album": album, "Title": title}
}

func (m *MockConn) call(name string) error {
	m.Calls = append(m.Calls, name)
	if m.Closed {
		return errors.New("connection closed")
	}
	return m.Fail[name]
}

func (m *MockConn) lookup(uri string) (mpd.Attrs, bool) {
	for _, a := range m.Database {
		if a["file"] == uri {
			return a, true
		}
	}
	return nil, false
}

func (m *MockConn) Close() error {
	m.Closed = true
	return nil
}

func (m *MockConn) Status() (mpd.Attrs, error) {
	if err := m.call("status"); err != nil {
		return nil, err
	}
	random := "0"
	if m.RandomOn {
		random = "1"
	}
	a := mpd.Attrs{
		"state":          m.State,
		"random":         random,
		"playlist":       strconv.Itoa(m.Version),
		"playlistlength": strconv.Itoa(len(m.Queue)),
	}
	if m.Current >= 0 {
		a["song"] = strconv.Itoa(m.Current)
	}
	return a, nil
}

func (m *MockConn) Pause(pause bool) error {
	if err := m.call("pause"); err != nil {
		return err
	}
	if pause {
		m.State = "pause"
	} else {
		m.State = "play"
	}
	return nil
}

func (m *MockConn) Play(pos int) error {
	if err := m.call("play"); err != nil {
		return err
	}
	if pos >= len(m.Queue) {
		return errors.New("Bad song index")
	}
	if pos >= 0 {
		m.Current = pos
	} else if m.Current < 0 && len(m.Queue) > 0 {
		m.Current = 0
	}
	m.State = "play"
	return nil
}

func (m *MockConn) Stop() error {
	if err := m.call("stop"); err != nil {
		return err
	}
	m.State = "stop"
	return nil
}

func (m *MockConn) Next() error {
	if err := m.call("next"); err != nil {
		return err
	}
	if m.Current+1 < len(m.Queue) {
		m.Current++
	} else {
		m.State = "stop"
		m.Current = -1
	}
	return nil
}

func (m *MockConn) Previous() error {
	if err := m.call("previous"); err != nil {
		return err
	}
	if m.Current > 0 {
		m.Current--
	}
	return nil
}

func (m *MockConn) Random(random bool) error {
	if err := m.call("random"); err != nil {
		return err
	}
	m.RandomOn = random
	return nil
}

func (m *MockConn) Add(uri string) error {
	if err := m.call("add"); err != nil {
		return err
	}
	a, ok := m.lookup(uri)
	if !ok {
		return errors.New("No such directory")
	}
	m.Queue = append(m.Queue, a)
	m.Version++
	return nil
}

func (m *MockConn) AddID(uri string, pos int) (int, error) {
	if err := m.call("addid"); err != nil {
		return 0, err
	}
	a, ok := m.lookup(uri)
	if !ok {
		return 0, errors.New("No such song")
	}
	if pos < 0 || pos > len(m.Queue) {
		return 0, errors.New("Bad song index")
	}
	m.Queue = append(m.Queue[:pos], append([]mpd.Attrs{a}, m.Queue[pos:]...)...)
	m.Version++
	return m.Version, nil
}

func (m *MockConn) Delete(start, end int) error {
	if err := m.call("delete"); err != nil {
		return err
	}
	if end < 0 {
		end = start + 1
	}
	if start < 0 || end > len(m.Queue) || start >= end {
		return errors.New("Bad song index")
	}
	m.Queue = append(m.Queue[:start], m.Queue[end:]...)
	m.Version++
	return nil
}

func (m *MockConn) Clear() error {
	if err := m.call("clear"); err != nil {
		return err
	}
	m.Queue = nil
	m.Current = -1
	m.State = "stop"
	m.Version++
	return nil
}

func (m *MockConn) PlaylistInfo(_, _ int) ([]mpd.Attrs, error) {
	if err := m.call("playlistinfo"); err != nil {
		return nil, err
	}
	return append([]mpd.Attrs(nil), m.Queue...), nil
}

func (m *MockConn) ListAllInfo(_ string) ([]mpd.Attrs, error) {
	if err := m.call("listallinfo"); err != nil {
		return nil, err
	}
	out := []mpd.Attrs{{"directory": "music"}}
	return append(out, m.Database...), nil
}

// Verify MockConn implements Conn at compile time.
var _ Conn = (*MockConn)(nil)
