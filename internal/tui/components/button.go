package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Button is a focusable action row. It never handles keys itself; the
// owning form decides what enter does when it is focused.
type Button struct {
	label   string
	hint    string
	enabled bool
	focused bool
}

// NewButton creates an enabled button.
func NewButton(label string) *Button {
	return &Button{label: label, enabled: true}
}

// SetEnabled toggles whether the button renders as actionable.
func (b *Button) SetEnabled(enabled bool) *Button {
	b.enabled = enabled
	return b
}

// SetHint sets the text shown next to a disabled button.
func (b *Button) SetHint(hint string) *Button {
	b.hint = hint
	return b
}

// Enabled reports whether the button is actionable.
func (b *Button) Enabled() bool {
	return b.enabled
}

// Focus sets the focus state.
func (b *Button) Focus(focused bool) {
	b.focused = focused
}

// IsFocused returns the focus state.
func (b *Button) IsFocused() bool {
	return b.focused
}

// HandleKey is a no-op.
func (b *Button) HandleKey(string) {}

// Render renders the button.
func (b *Button) Render() string {
	return b.RenderWithLabelWidth(defaultLabelWidth)
}

// RenderWithLabelWidth renders the button indented to line up with the
// values of neighbouring fields.
func (b *Button) RenderWithLabelWidth(labelWidth int) string {
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	focusStyle := lipgloss.NewStyle().Background(lipgloss.Color("#00FF00")).Foreground(lipgloss.Color("#000000")).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#006600"))

	text := "[ " + b.label + " ]"

	var out string
	switch {
	case !b.enabled:
		out = mutedStyle.Render(text)
		if b.hint != "" {
			out += " " + mutedStyle.Render(b.hint)
		}
	case b.focused:
		out = focusStyle.Render(text)
	default:
		out = activeStyle.Render(text)
	}

	if labelWidth > 0 {
		out = strings.Repeat(" ", labelWidth+1) + out
	}
	return out
}
