// Package mpdclient wraps a daemon connection with the operations the UI
// issues. Every failure is logged and kept as the last error so the mode line
// can surface it.
package mpdclient

import (
	"errors"
	"sync"

	"github.com/llehouerou/vimpd/internal/errmsg"
	"github.com/llehouerou/vimpd/internal/playlist"
)

// ErrNotConnected is returned once the connection has been closed.
var ErrNotConnected = errors.New("not connected")

// Client is safe for concurrent use; the status poll runs off the UI loop.
type Client struct {
	mu      sync.Mutex
	conn    Conn
	status  Status
	lastErr error
}

var _ playlist.Remote = (*Client)(nil)

// New wraps an established connection.
func New(conn Conn) *Client {
	return &Client{conn: conn, status: Status{Song: -1}}
}

// do runs fn under the lock and records its outcome.
func (c *Client) do(op errmsg.Op, fn func(Conn) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record(op, c.run(fn))
}

func (c *Client) run(fn func(Conn) error) error {
	if c.conn == nil {
		return ErrNotConnected
	}
	return fn(c.conn)
}

// record must be called with mu held.
func (c *Client) record(op errmsg.Op, err error) error {
	if err == nil {
		return nil
	}
	err = errmsg.Wrap(op, err)
	c.lastErr = err
	logger.Error("mpd command failed", "op", string(op), "err", err)
	return err
}

// Add appends uri to the daemon queue.
func (c *Client) Add(uri string) error {
	return c.do(errmsg.OpQueueAdd, func(conn Conn) error {
		return conn.Add(uri)
	})
}

// AddAt inserts uri at queue position pos.
func (c *Client) AddAt(uri string, pos int) error {
	return c.do(errmsg.OpQueueInsert, func(conn Conn) error {
		_, err := conn.AddID(uri, pos)
		return err
	})
}

// Delete removes the song at queue position index.
func (c *Client) Delete(index int) error {
	return c.do(errmsg.OpQueueDelete, func(conn Conn) error {
		return conn.Delete(index, -1)
	})
}

// Clear empties the daemon queue.
func (c *Client) Clear() error {
	return c.do(errmsg.OpQueueClear, func(conn Conn) error {
		return conn.Clear()
	})
}

// Pause toggles between playing and paused; a stopped daemon starts playing.
func (c *Client) Pause() error {
	return c.do(errmsg.OpPause, func(conn Conn) error {
		st, err := c.refresh(conn)
		if err != nil {
			return err
		}
		switch st.State {
		case Playing:
			return conn.Pause(true)
		case Paused:
			return conn.Pause(false)
		default:
			return conn.Play(-1)
		}
	})
}

// Stop stops playback.
func (c *Client) Stop() error {
	return c.do(errmsg.OpStop, func(conn Conn) error {
		return conn.Stop()
	})
}

// ToggleRandom flips random mode.
func (c *Client) ToggleRandom() error {
	return c.do(errmsg.OpRandom, func(conn Conn) error {
		st, err := c.refresh(conn)
		if err != nil {
			return err
		}
		return conn.Random(!st.Random)
	})
}

// Play starts the song at queue position pos.
func (c *Client) Play(pos int) error {
	return c.do(errmsg.OpPlay, func(conn Conn) error {
		return conn.Play(pos)
	})
}

// Next skips to the next song.
func (c *Client) Next() error {
	return c.do(errmsg.OpSkip, func(conn Conn) error {
		return conn.Next()
	})
}

// Previous skips to the previous song.
func (c *Client) Previous() error {
	return c.do(errmsg.OpSkip, func(conn Conn) error {
		return conn.Previous()
	})
}

// Status fetches and caches the daemon status.
func (c *Client) Status() (Status, error) {
	var st Status
	err := c.do(errmsg.OpStatus, func(conn Conn) error {
		var err error
		st, err = c.refresh(conn)
		return err
	})
	return st, err
}

// refresh must be called with mu held.
func (c *Client) refresh(conn Conn) (Status, error) {
	attrs, err := conn.Status()
	if err != nil {
		return Status{}, err
	}
	c.status = parseStatus(attrs)
	return c.status, nil
}

// CurrentState returns the last known playback state as text.
func (c *Client) CurrentState() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return Disconnected.String()
	}
	return c.status.State.String()
}

// Playlist returns the daemon queue in order.
func (c *Client) Playlist() ([]playlist.Song, error) {
	var songs []playlist.Song
	err := c.do(errmsg.OpQueueLoad, func(conn Conn) error {
		list, err := conn.PlaylistInfo(-1, -1)
		if err != nil {
			return err
		}
		songs = songsFromAttrs(list)
		return nil
	})
	return songs, err
}

// Library returns every song in the daemon's database.
func (c *Client) Library() ([]playlist.Song, error) {
	var songs []playlist.Song
	err := c.do(errmsg.OpDatabaseLoad, func(conn Conn) error {
		list, err := conn.ListAllInfo("")
		if err != nil {
			return err
		}
		songs = songsFromAttrs(list)
		return nil
	})
	return songs, err
}

// LastError returns the most recent command failure, or nil.
func (c *Client) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// ClearError forgets the last failure.
func (c *Client) ClearError() {
	c.mu.Lock()
	c.lastErr = nil
	c.mu.Unlock()
}

// Close drops the connection. Later commands fail with ErrNotConnected.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}
