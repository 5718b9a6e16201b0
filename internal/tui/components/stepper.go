package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Stepper shows a percentage with decrement and increment controls and a
// bar. The value is owned elsewhere: key presses are reported through
// OnStep and the owner pushes the result back with SetValue.
type Stepper struct {
	label    string
	value    int
	step     int
	barWidth int
	detail   string
	focused  bool

	// OnStep is called with -step or +step when the user presses a control.
	OnStep func(delta int)
}

// NewStepper creates a stepper that moves by step per press.
func NewStepper(label string, step int) *Stepper {
	return &Stepper{
		label:    label,
		step:     step,
		barWidth: 20,
	}
}

// SetValue sets the displayed percentage.
func (s *Stepper) SetValue(v int) *Stepper {
	s.value = v
	return s
}

// Value returns the displayed percentage.
func (s *Stepper) Value() int {
	return s.value
}

// SetDetail sets the text shown after the bar.
func (s *Stepper) SetDetail(d string) *Stepper {
	s.detail = d
	return s
}

// SetBarWidth sets the bar width in cells.
func (s *Stepper) SetBarWidth(w int) *Stepper {
	s.barWidth = w
	return s
}

// Focus sets the focus state.
func (s *Stepper) Focus(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state.
func (s *Stepper) IsFocused() bool {
	return s.focused
}

// HandleKey handles a key press.
func (s *Stepper) HandleKey(key string) {
	if !s.focused || s.OnStep == nil {
		return
	}

	switch key {
	case "-", "_", "left", "h":
		s.OnStep(-s.step)
	case "+", "=", "right", "l":
		s.OnStep(s.step)
	}
}

// Render renders the stepper.
func (s *Stepper) Render() string {
	return s.RenderWithLabelWidth(defaultLabelWidth)
}

// RenderWithLabelWidth renders the stepper with the given label column width.
func (s *Stepper) RenderWithLabelWidth(labelWidth int) string {
	ctrlStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#003300"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#006600"))

	ctrl := ctrlStyle
	if s.focused {
		ctrl = focusStyle
	}

	var b strings.Builder
	b.WriteString(renderLabel(s.label, false, labelWidth))
	b.WriteString(ctrl.Render(fmt.Sprintf("[-%d]", s.step)))
	b.WriteString(valueStyle.Render(fmt.Sprintf(" %3d%% ", s.value)))
	b.WriteString(ctrl.Render(fmt.Sprintf("[+%d]", s.step)))
	b.WriteString("  ")

	filled := percentCells(s.value, s.barWidth)
	b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", s.barWidth-filled)))

	if s.detail != "" {
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render(s.detail))
	}

	return b.String()
}

// percentCells converts a percentage to a cell count, clamped to 0..width.
func percentCells(pct, width int) int {
	n := pct * width / 100
	if n < 0 {
		return 0
	}
	if n > width {
		return width
	}
	return n
}
