package keymap

import (
	"slices"
	"strings"
)

// Resolver maps (table, key) pairs to actions.
type Resolver struct {
	bindings [NumTables]map[KeyCode]Action
	byAction map[Action][]string // action -> key chords (for help/documentation)
}

// NewResolver creates a resolver from bindings. A later binding for the same
// key in the same table wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		byAction: make(map[Action][]string),
	}
	for i := range r.bindings {
		r.bindings[i] = make(map[KeyCode]Action)
	}
	for _, b := range bindings {
		if b.Table < 0 || int(b.Table) >= NumTables {
			continue
		}
		for _, key := range b.Keys {
			r.bindings[b.Table][key] = b.Action
			r.byAction[b.Action] = append(r.byAction[b.Action], Chord(b.Table, key))
		}
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action bound to key in table, or empty string if not bound.
func (r *Resolver) Resolve(t Table, key KeyCode) Action {
	if t < 0 || int(t) >= NumTables {
		return ""
	}
	return r.bindings[t][key]
}

// Keys returns every key bound in table, in ascending order.
func (r *Resolver) Keys(t Table) []KeyCode {
	if t < 0 || int(t) >= NumTables {
		return nil
	}
	keys := make([]KeyCode, 0, len(r.bindings[t]))
	for k := range r.bindings[t] {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// KeysFor returns the key chords bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// Chord renders key as typed from the default table, e.g. "gt" or "<A-1>".
func Chord(t Table, key KeyCode) string {
	if t == Escape {
		return (key | EscapeMarker).String()
	}
	return t.Prefix() + key.String()
}

// FormatKeys joins chords for display.
func FormatKeys(chords []string) string {
	return strings.Join(chords, ", ")
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
