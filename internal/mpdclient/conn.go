// internal/mpdclient/conn.go
package mpdclient

import (
	"fmt"

	"github.com/fhs/gompd/v2/mpd"
)

// Conn is the part of *mpd.Client the client drives.
type Conn interface {
	Close() error
	Status() (mpd.Attrs, error)
	Pause(pause bool) error
	Play(pos int) error
	Stop() error
	Next() error
	Previous() error
	Random(random bool) error
	Add(uri string) error
	AddID(uri string, pos int) (int, error)
	Delete(start, end int) error
	Clear() error
	PlaylistInfo(start, end int) ([]mpd.Attrs, error)
	ListAllInfo(uri string) ([]mpd.Attrs, error)
}

var _ Conn = (*mpd.Client)(nil)

// DialConfig carries the connection parameters.
type DialConfig struct {
	Network  string
	Address  string
	Password string
}

// Dial connects to the daemon, authenticating when a password is set.
func Dial(cfg DialConfig) (*Client, error) {
	var (
		c   *mpd.Client
		err error
	)
	if cfg.Password != "" {
		c, err = mpd.DialAuthenticated(cfg.Network, cfg.Address, cfg.Password)
	} else {
		c, err = mpd.Dial(cfg.Network, cfg.Address)
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s %s: %w", cfg.Network, cfg.Address, err)
	}
	logger.Info("connected to mpd", "network", cfg.Network, "address", cfg.Address)
	return New(c), nil
}
