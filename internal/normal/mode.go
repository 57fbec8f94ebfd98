// Package normal implements the vim-style normal mode: keys accumulate a
// repeat count, select a key table and dispatch bound actions against the
// panes, the playlist and the daemon.
package normal

import (
	"math"

	"github.com/llehouerou/vimpd/internal/keymap"
)

// Action is a bound command. count is at least 1.
type Action func(count uint32) bool

// LastAction is the most recent dispatched key and the count typed before it.
// Table is where the key resolved, so repeating g- and z-prefixed commands
// replays them rather than the bare trigger.
type LastAction struct {
	Key   keymap.KeyCode
	Count uint32
	Table keymap.Table
}

type bound struct {
	name keymap.Action
	fn   Action
}

// Deps are the collaborators the mode drives.
type Deps struct {
	Screen   Screen
	Playlist Playlist
	Buffer   PasteBuffer
	Client   Client
	Library  Library
	Browse   Browse
	Player   Player
	Search   Search

	// Bindings defaults to keymap.Bindings.
	Bindings []keymap.Binding
}

// Mode is the normal mode dispatcher. It is not safe for concurrent use; the
// UI loop feeds it one key at a time.
type Mode struct {
	screen   Screen
	playlist Playlist
	buffer   PasteBuffer
	client   Client
	library  Library
	browse   Browse
	player   Player
	search   Search

	tables [keymap.NumTables]map[keymap.KeyCode]bound

	table            keymap.Table
	count            uint32
	last             LastAction
	wasSpecificCount bool
	modeLine         string
}

// New builds the dispatch tables once from the bindings.
func New(d Deps) *Mode {
	m := &Mode{
		screen:   d.Screen,
		playlist: d.Playlist,
		buffer:   d.Buffer,
		client:   d.Client,
		library:  d.Library,
		browse:   d.Browse,
		player:   d.Player,
		search:   d.Search,
	}

	bindings := d.Bindings
	if bindings == nil {
		bindings = keymap.Bindings
	}
	registry := m.actions()
	resolver := keymap.NewResolver(bindings)
	for t := range keymap.Table(keymap.NumTables) {
		m.tables[t] = make(map[keymap.KeyCode]bound)
		for _, key := range resolver.Keys(t) {
			name := resolver.Resolve(t, key)
			fn, ok := registry[name]
			if !ok {
				logger.Warn("binding without action", "action", string(name), "key", key.String())
				continue
			}
			m.tables[t][key] = bound{name: name, fn: fn}
		}
	}
	return m
}

// Handle feeds one key through the dispatcher. It reports the bound action's
// result, or true when no action fired.
func (m *Mode) Handle(key keymap.KeyCode) bool {
	if key.Escaped() {
		key = key.Strip()
		m.table = keymap.Escape
	}

	if digit, ok := key.Digit(); ok && m.table != keymap.Escape {
		m.fold(digit)
		return true
	}

	if key == keymap.KeyCancel {
		m.table = keymap.Default
		m.count = 0
		return true
	}

	if b, ok := m.tables[m.table][key]; ok {
		return m.dispatch(key, b)
	}

	if t, ok := keymap.Triggers[key]; ok {
		m.table = t
		return true
	}

	m.table = keymap.Default
	return true
}

// fold appends digit to the count unless the result overflows uint32.
func (m *Mode) fold(digit uint32) {
	next := uint64(m.count)*10 + uint64(digit)
	if next <= math.MaxUint32 {
		m.count = uint32(next)
	}
}

func (m *Mode) dispatch(key keymap.KeyCode, b bound) bool {
	m.wasSpecificCount = m.count != 0
	effective := max(m.count, 1)

	if b.name != keymap.ActionRepeat {
		m.last = LastAction{Key: key, Count: m.count, Table: m.table}
	}

	m.client.ClearError()
	logger.Debug("dispatch",
		"table", m.table.String(),
		"key", key.String(),
		"count", m.count,
		"action", string(b.name))

	result := b.fn(effective)

	m.count = 0
	m.table = keymap.Default
	m.displayModeLine()
	return result
}

// repeatLastAction replays the last key. An explicit count on the repeat
// overrides the remembered one.
func (m *Mode) repeatLastAction(count uint32) bool {
	if m.count > 0 {
		m.count = count
	} else {
		m.count = m.last.Count
	}

	if m.last.Key != 0 {
		m.table = m.last.Table
		m.Handle(m.last.Key)
	}
	return true
}

// Initialise is called when the mode becomes active.
func (m *Mode) Initialise(keymap.KeyCode) {
	m.count = 0
	m.displayModeLine()
}

// Finalise is called when another mode takes over.
func (m *Mode) Finalise(keymap.KeyCode) {
	m.displayModeLine()
}

// CausesModeToStart reports whether key returns control to this mode.
func (m *Mode) CausesModeToStart(key keymap.KeyCode) bool {
	return key == keymap.KeyConfirm || key == keymap.KeyCancel
}

// Count is the pending repeat count.
func (m *Mode) Count() uint32 { return m.count }

// Table is the active key table.
func (m *Mode) Table() keymap.Table { return m.table }

// Last is the action the repeat key replays.
func (m *Mode) Last() LastAction { return m.last }

// WasSpecificCount reports whether the last dispatched action had a typed count.
func (m *Mode) WasSpecificCount() bool { return m.wasSpecificCount }
