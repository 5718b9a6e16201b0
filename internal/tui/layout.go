package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LayoutBreakpoint defines terminal width thresholds for responsive layout.
type LayoutBreakpoint int

const (
	// BreakpointNarrow is for terminals under 60 columns.
	BreakpointNarrow LayoutBreakpoint = 60
	// BreakpointMedium is for terminals between 60-100 columns.
	BreakpointMedium LayoutBreakpoint = 100
	// BreakpointWide is for terminals over 100 columns.
	BreakpointWide LayoutBreakpoint = 140
)

// GetBreakpoint returns the current layout breakpoint for the given width.
func GetBreakpoint(width int) LayoutBreakpoint {
	switch {
	case width < int(BreakpointNarrow):
		return BreakpointNarrow
	case width < int(BreakpointMedium):
		return BreakpointMedium
	default:
		return BreakpointWide
	}
}

// Panel renders a bordered panel with a title.
func (t *Theme) Panel(title, content string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.SecondaryColor).
		Width(width - 2). // -2 for border chars
		Padding(0, 1)

	rendered := style.Render(content)

	// Replace top border segment with title
	lines := strings.Split(rendered, "\n")
	if len(lines) > 0 && len(title) > 0 {
		topLine := lines[0]
		titleRendered := t.Accent.Bold(true).Render(" " + title + " ")
		titleWidth := lipgloss.Width(titleRendered)
		topLineWidth := lipgloss.Width(topLine)
		if titleWidth+4 < topLineWidth {
			// Insert title after the first corner character
			lines[0] = string([]rune(topLine)[:2]) + titleRendered + string([]rune(topLine)[2+titleWidth:])
		}
		rendered = strings.Join(lines, "\n")
	}

	return rendered
}

// SideBySide renders two strings side by side, collapsing to vertical on narrow terminals.
func SideBySide(left, right string, totalWidth, gap int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)

	// If both fit side by side, render horizontally
	if leftWidth+rightWidth+gap <= totalWidth {
		spacing := totalWidth - leftWidth - rightWidth
		if spacing < gap {
			spacing = gap
		}
		leftLines := strings.Split(left, "\n")
		rightLines := strings.Split(right, "\n")
		maxLines := len(leftLines)
		if len(rightLines) > maxLines {
			maxLines = len(rightLines)
		}

		var b strings.Builder
		for i := 0; i < maxLines; i++ {
			l := ""
			if i < len(leftLines) {
				l = leftLines[i]
			}
			r := ""
			if i < len(rightLines) {
				r = rightLines[i]
			}

			lw := lipgloss.Width(l)
			pad := (totalWidth / 2) - lw
			if pad < 1 {
				pad = 1
			}

			b.WriteString(l)
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(r)
			if i < maxLines-1 {
				b.WriteString("\n")
			}
		}
		return b.String()
	}

	// Otherwise stack vertically
	return left + "\n\n" + right
}

// Truncate shortens a string to fit within maxWidth, adding ellipsis if needed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return s[:maxWidth]
	}
	runes := []rune(s)
	if len(runes) > maxWidth-1 {
		runes = runes[:maxWidth-1]
	}
	return string(runes) + "…"
}

// PadRight pads a string to the given width with spaces.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// ContentWidth returns the usable content width, capped between min and max.
func ContentWidth(termWidth, minWidth, maxWidth int) int {
	w := termWidth
	if w < minWidth {
		w = minWidth
	}
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	return w
}

// ContentHeight returns the usable content height after subtracting chrome.
// chromeLines is the total lines used by header, footer, alert bar, separators.
func ContentHeight(termHeight, chromeLines int) int {
	h := termHeight - chromeLines
	if h < 5 {
		h = 5
	}
	return h
}
