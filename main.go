package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/llehouerou/vimpd/internal/app"
	"github.com/llehouerou/vimpd/internal/config"
	"github.com/llehouerou/vimpd/internal/errmsg"
	"github.com/llehouerou/vimpd/internal/logging"
	"github.com/llehouerou/vimpd/internal/mpdclient"
	"github.com/llehouerou/vimpd/internal/state"
)

type flags struct {
	config   string
	host     string
	port     int
	socket   string
	logLevel string
	search   string
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.config, "config", "", "path to config file")
	flag.StringVar(&f.host, "host", "", "MPD host <address>")
	flag.IntVar(&f.port, "port", 0, "MPD port")
	flag.StringVar(&f.socket, "socket", "", "MPD unix socket <path>")
	flag.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	flag.StringVar(&f.search, "search", "", "initial pattern for n and N")
	flag.Parse()
	return f
}

// apply overrides config values with the flags given on the command line.
func (f flags) apply(cfg *config.Config) {
	if flag.CommandLine.Changed("host") {
		cfg.MPD.Host = f.host
	}
	if flag.CommandLine.Changed("port") {
		cfg.MPD.Port = f.port
	}
	if flag.CommandLine.Changed("socket") {
		cfg.MPD.Socket = f.socket
	}
	if flag.CommandLine.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
}

func run() error {
	f := parseFlags()

	cfg, err := config.Load(f.config)
	if err != nil {
		return errmsg.Wrap(errmsg.OpConfigLoad, err)
	}
	f.apply(cfg)

	level, err := logging.ParseLevel(cfg.Log.GetLevel())
	if err != nil {
		return err
	}
	logger, logFile, err := logging.Open(cfg.Log.GetFile(), level)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logging.SetLogger(logger)

	stateMgr, err := state.Open(cfg.State.GetFile())
	if err != nil {
		return errmsg.Wrap(errmsg.OpSessionLoad, err)
	}
	defer stateMgr.Close()

	client, err := mpdclient.Dial(mpdclient.DialConfig{
		Network:  cfg.MPD.GetNetwork(),
		Address:  cfg.MPD.Address(),
		Password: cfg.MPD.Password,
	})
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpConnect, cfg.MPD.Address(), err))
	}
	defer client.Close()

	logger.Info("starting", "mpd", cfg.MPD.Address())

	m := app.New(app.Options{
		Config: cfg,
		Client: client,
		State:  stateMgr,
		Search: f.search,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
