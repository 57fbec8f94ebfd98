package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "vimpd"

const (
	defaultHost         = "localhost"
	defaultPort         = 6600
	defaultScrollMargin = 3
	defaultPollInterval = 1000 * time.Millisecond
	minPollInterval     = 100 * time.Millisecond
)

type Config struct {
	MPD   MPDConfig   `koanf:"mpd"`
	UI    UIConfig    `koanf:"ui"`
	Log   LogConfig   `koanf:"log"`
	State StateConfig `koanf:"state"`
}

// MPDConfig describes how to reach the daemon. Socket wins over host/port.
type MPDConfig struct {
	Network  string `koanf:"network"` // "tcp" or "unix"; inferred when empty
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	Socket   string `koanf:"socket"`
}

type UIConfig struct {
	ScrollMargin   *int `koanf:"scroll_margin"`    // rows kept between cursor and edge (default: 3)
	PollIntervalMS int  `koanf:"poll_interval_ms"` // status poll period (default: 1000)
}

type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"` // debug, info, warn, error
}

type StateConfig struct {
	File string `koanf:"file"`
}

// Load reads the config files in priority order (last wins). When explicit
// is non-empty only that file is read and it must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	paths := getConfigPaths()
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		paths = []string{explicit}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.MPD.Socket = expandPath(cfg.MPD.Socket)
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.State.File = expandPath(cfg.State.File)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/vimpd/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetNetwork returns the dial network, inferring unix when a socket is set.
func (c MPDConfig) GetNetwork() string {
	if c.Network != "" {
		return c.Network
	}
	if c.Socket != "" {
		return "unix"
	}
	return "tcp"
}

// Address returns the dial address for GetNetwork.
func (c MPDConfig) Address() string {
	if c.GetNetwork() == "unix" {
		return c.Socket
	}
	host := c.Host
	if host == "" {
		host = defaultHost
	}
	port := c.Port
	if port <= 0 {
		port = defaultPort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// GetScrollMargin returns the scroll margin with defaults applied.
func (c UIConfig) GetScrollMargin() int {
	if c.ScrollMargin == nil || *c.ScrollMargin < 0 {
		return defaultScrollMargin
	}
	return *c.ScrollMargin
}

// GetPollInterval returns the status poll period, never below 100ms.
func (c UIConfig) GetPollInterval() time.Duration {
	if c.PollIntervalMS <= 0 {
		return defaultPollInterval
	}
	d := time.Duration(c.PollIntervalMS) * time.Millisecond
	if d < minPollInterval {
		return minPollInterval
	}
	return d
}

// GetFile returns the log file path, defaulting under the XDG state dir.
func (c LogConfig) GetFile() string {
	if c.File != "" {
		return c.File
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// GetLevel returns the configured level name, "info" when unset.
func (c LogConfig) GetLevel() string {
	if strings.TrimSpace(c.Level) == "" {
		return "info"
	}
	return c.Level
}

// GetFile returns the session database path, defaulting under the XDG state dir.
func (c StateConfig) GetFile() string {
	if c.File != "" {
		return c.File
	}
	return filepath.Join(xdg.StateHome, appName, "state.db")
}
