package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestGradient_PreservesText(t *testing.T) {
	tests := []struct {
		name string
		text string
		from string
		to   string
	}{
		{"ascii", "vimpd", "#a78bfa", "#f1a208"},
		{"unicode", "café", "#a78bfa", "#f1a208"},
		{"single cluster", "v", "#a78bfa", "#f1a208"},
		{"ansi colours", "vimpd", "39", "240"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Gradient(tt.text, lipgloss.Color(tt.from), lipgloss.Color(tt.to))
			assert.Equal(t, tt.text, ansi.Strip(out))
		})
	}
}

func TestGradient_Empty(t *testing.T) {
	assert.Empty(t, Gradient("", T().Primary, T().Secondary))
}
