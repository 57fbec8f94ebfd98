package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolver(t *testing.T) {
	bindings := []Binding{
		{ActionStop, []KeyCode{'s', KeyBackspace}, "Stop", Default},
		{ActionScrollLineTop, []KeyCode{'g'}, "Top", Jump},
		{ActionAlignCentre, []KeyCode{'.'}, "Centre", Align},
	}

	r := NewResolver(bindings)
	require.NotNil(t, r)

	assert.Equal(t, ActionStop, r.Resolve(Default, 's'))
	assert.Equal(t, ActionStop, r.Resolve(Default, KeyBackspace))
	assert.Equal(t, ActionScrollLineTop, r.Resolve(Jump, 'g'))
	assert.Equal(t, ActionAlignCentre, r.Resolve(Align, '.'))
}

func TestResolver_TablesAreIndependent(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionRepeat, []KeyCode{'.'}, "Repeat", Default},
		{ActionAlignCentre, []KeyCode{'.'}, "Centre", Align},
	})

	assert.Equal(t, ActionRepeat, r.Resolve(Default, '.'))
	assert.Equal(t, ActionAlignCentre, r.Resolve(Align, '.'))
	assert.Empty(t, r.Resolve(Jump, '.'))
	assert.Empty(t, r.Resolve(Escape, '.'))
}

func TestResolver_Resolve_InvalidTable(t *testing.T) {
	r := NewResolver(Bindings)

	assert.Empty(t, r.Resolve(Table(-1), 'j'))
	assert.Empty(t, r.Resolve(Table(NumTables), 'j'))
	assert.Nil(t, r.Keys(Table(NumTables)))
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionStop, []KeyCode{'x'}, "Stop", Default},
		{ActionPause, []KeyCode{'x'}, "Pause", Default},
	})

	assert.Equal(t, ActionPause, r.Resolve(Default, 'x'))
}

func TestResolver_Keys(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionScrollLineDown, []KeyCode{'j', KeyDown}, "Down", Default},
		{ActionScrollLineUp, []KeyCode{'k'}, "Up", Default},
	})

	assert.Equal(t, []KeyCode{'j', 'k', KeyDown}, r.Keys(Default))
	assert.Empty(t, r.Keys(Jump))
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionScrollLineDown, []KeyCode{'j', KeyDown}, "Down", Default},
		{ActionWindowNext, []KeyCode{'t'}, "Next window", Jump},
		{ActionWindow1, []KeyCode{'1'}, "Window 1", Escape},
		{ActionScrollLineDown, []KeyCode{'j'}, "Down again", Default},
	})

	assert.Equal(t, []string{"j", "<Down>"}, r.KeysFor(ActionScrollLineDown))
	assert.Equal(t, []string{"gt"}, r.KeysFor(ActionWindowNext))
	assert.Equal(t, []string{"<A-1>"}, r.KeysFor(ActionWindow1))
	assert.Nil(t, r.KeysFor(ActionPaste))
}

func TestFormatKeys(t *testing.T) {
	assert.Equal(t, "j, <Down>", FormatKeys([]string{"j", "<Down>"}))
	assert.Empty(t, FormatKeys(nil))
}
