// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Acceptance patterns for numeric inputs. A keystroke is only applied if the
// resulting value still matches.
var (
	DigitsOnly = regexp.MustCompile(`^\d*$`)
	Decimal    = regexp.MustCompile(`^\d*\.?\d*$`)
)

const defaultLabelWidth = 16

// Input is a simple text input component.
type Input struct {
	label       string
	value       string
	placeholder string
	width       int
	focused     bool
	cursorPos   int
	maxLength   int
	required    bool
	pattern     *regexp.Regexp
	err         string
}

// NewInput creates a new input field.
func NewInput(label string) *Input {
	return &Input{
		label:     label,
		width:     20,
		maxLength: 100,
	}
}

// SetLabel replaces the field label.
func (i *Input) SetLabel(l string) *Input {
	i.label = l
	return i
}

// SetValue sets the input value.
func (i *Input) SetValue(v string) *Input {
	i.value = v
	i.cursorPos = len(v)
	return i
}

// SetPlaceholder sets the placeholder text.
func (i *Input) SetPlaceholder(p string) *Input {
	i.placeholder = p
	return i
}

// SetWidth sets the input width.
func (i *Input) SetWidth(w int) *Input {
	i.width = w
	return i
}

// SetMaxLength sets the maximum input length.
func (i *Input) SetMaxLength(m int) *Input {
	i.maxLength = m
	return i
}

// SetRequired marks the field as required.
func (i *Input) SetRequired(r bool) *Input {
	i.required = r
	return i
}

// SetPattern restricts edits to values matching p. Keystrokes that would
// produce a non-matching value are ignored.
func (i *Input) SetPattern(p *regexp.Regexp) *Input {
	i.pattern = p
	return i
}

// SetError sets an error message.
func (i *Input) SetError(e string) *Input {
	i.err = e
	return i
}

// Focus sets the focus state.
func (i *Input) Focus(focused bool) {
	i.focused = focused
	if focused && i.cursorPos > len(i.value) {
		i.cursorPos = len(i.value)
	}
}

// IsFocused returns the focus state.
func (i *Input) IsFocused() bool {
	return i.focused
}

// Value returns the current value.
func (i *Input) Value() string {
	return i.value
}

// HandleKey handles a key press.
func (i *Input) HandleKey(key string) {
	if !i.focused {
		return
	}

	switch key {
	case "backspace":
		if len(i.value) > 0 && i.cursorPos > 0 {
			i.edit(i.value[:i.cursorPos-1]+i.value[i.cursorPos:], i.cursorPos-1)
		}
	case "delete":
		if i.cursorPos < len(i.value) {
			i.edit(i.value[:i.cursorPos]+i.value[i.cursorPos+1:], i.cursorPos)
		}
	case "left":
		if i.cursorPos > 0 {
			i.cursorPos--
		}
	case "right":
		if i.cursorPos < len(i.value) {
			i.cursorPos++
		}
	case "home", "ctrl+a":
		i.cursorPos = 0
	case "end", "ctrl+e":
		i.cursorPos = len(i.value)
	default:
		// Insert printable character
		if len(key) == 1 && len(i.value) < i.maxLength {
			i.edit(i.value[:i.cursorPos]+key+i.value[i.cursorPos:], i.cursorPos+1)
		}
	}
}

// edit applies candidate if it passes the acceptance pattern.
func (i *Input) edit(candidate string, cursor int) {
	if i.pattern != nil && !i.pattern.MatchString(candidate) {
		return
	}
	i.value = candidate
	i.cursorPos = cursor
}

// Validate validates the input.
func (i *Input) Validate() bool {
	if i.required && strings.TrimSpace(i.value) == "" {
		i.err = "Required"
		return false
	}
	i.err = ""
	return true
}

// Render renders the input field.
func (i *Input) Render() string {
	return i.RenderWithLabelWidth(defaultLabelWidth)
}

// RenderWithLabelWidth renders the input with the given label column width.
// A width of zero omits the label.
func (i *Input) RenderWithLabelWidth(labelWidth int) string {
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#006600"))

	// Build value display
	var display string
	displayLen := len(i.value)
	if i.value == "" && i.placeholder != "" && !i.focused {
		display = mutedStyle.Render(i.placeholder)
		displayLen = len(i.placeholder)
	} else if i.focused {
		// Show cursor
		before := i.value[:i.cursorPos]
		after := ""
		if i.cursorPos < len(i.value) {
			after = i.value[i.cursorPos:]
		}
		display = focusStyle.Render(before + "_" + after)
		displayLen++
	} else {
		display = valueStyle.Render(i.value)
	}

	if displayLen < i.width {
		display += strings.Repeat(" ", i.width-displayLen)
	}

	result := renderLabel(i.label, i.required, labelWidth) + display

	if i.err != "" {
		result += " " + errStyle.Render(i.err)
	}

	return result
}

// renderLabel renders "label:" padded to width, followed by a space. It
// returns "" when width is zero.
func renderLabel(label string, required bool, width int) string {
	if width <= 0 {
		return ""
	}
	if required {
		label += "*"
	}
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Width(width)
	return labelStyle.Render(label+":") + " "
}

// Select is a selection input component.
type Select struct {
	label     string
	options   []string
	selected  int
	focused   bool
	allowNone bool
}

// NewSelect creates a new select input.
func NewSelect(label string, options []string) *Select {
	return &Select{
		label:   label,
		options: options,
	}
}

// SetAllowNone starts the select with nothing chosen. Once an option is
// picked it can be changed but not cleared.
func (s *Select) SetAllowNone(allow bool) *Select {
	s.allowNone = allow
	if allow {
		s.selected = -1
	} else if s.selected < 0 {
		s.selected = 0
	}
	return s
}

// SetSelected sets the selected index.
func (s *Select) SetSelected(idx int) *Select {
	if idx >= 0 && idx < len(s.options) {
		s.selected = idx
	}
	return s
}

// Focus sets the focus state.
func (s *Select) Focus(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state.
func (s *Select) IsFocused() bool {
	return s.focused
}

// Value returns the selected value, or "" when nothing is chosen.
func (s *Select) Value() string {
	if s.selected >= 0 && s.selected < len(s.options) {
		return s.options[s.selected]
	}
	return ""
}

// SelectedIndex returns the selected index, or -1 when nothing is chosen.
func (s *Select) SelectedIndex() int {
	return s.selected
}

// HandleKey handles a key press. Left/right step through the options and
// the digits 1-9 jump straight to an option.
func (s *Select) HandleKey(key string) {
	if !s.focused || len(s.options) == 0 {
		return
	}

	if s.selected < 0 {
		switch key {
		case "left", "h", "right", "l", " ":
			s.selected = 0
			return
		}
	}

	switch key {
	case "left", "h":
		if s.selected > 0 {
			s.selected--
		}
	case "right", "l":
		if s.selected < len(s.options)-1 {
			s.selected++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			s.SetSelected(int(key[0] - '1'))
		}
	}
}

// Render renders the select.
func (s *Select) Render() string {
	return s.RenderWithLabelWidth(defaultLabelWidth)
}

// RenderWithLabelWidth renders the select with the given label column width.
func (s *Select) RenderWithLabelWidth(labelWidth int) string {
	optStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#006600"))

	var b strings.Builder
	b.WriteString(renderLabel(s.label, false, labelWidth))

	for i, opt := range s.options {
		if i > 0 {
			b.WriteString(" ")
		}

		if i == s.selected {
			if s.focused {
				b.WriteString(selStyle.Render("[" + opt + "]"))
			} else {
				b.WriteString(selStyle.Render("(" + opt + ")"))
			}
		} else {
			b.WriteString(optStyle.Render(" " + opt + " "))
		}
	}

	if s.selected < 0 {
		hint := "  choose one"
		if s.focused {
			hint = "  ←/→ or 1-9 to choose"
		}
		b.WriteString(mutedStyle.Render(hint))
	}

	return b.String()
}

// FormField is implemented by every component a Form can hold.
type FormField interface {
	Focus(bool)
	IsFocused() bool
	HandleKey(string)
	Render() string
	RenderWithLabelWidth(int) string
}

var (
	_ FormField = (*Input)(nil)
	_ FormField = (*Select)(nil)
	_ FormField = (*Button)(nil)
	_ FormField = (*Stepper)(nil)
)

// Form is a simple form container. Fields may be grouped under section
// headings; focus cycles through the fields in insertion order.
type Form struct {
	title      string
	fields     []FormField
	sections   map[int]string
	focusIndex int
	labelWidth int
	submitted  bool
	cancelled  bool
	err        string
	help       string
	helpShort  string
}

// NewForm creates a new form.
func NewForm(title string) *Form {
	return &Form{
		title:      title,
		sections:   make(map[int]string),
		labelWidth: defaultLabelWidth,
		help:       "Tab/Down:Next  Shift+Tab/Up:Prev  Ctrl+S:Submit  Esc:Cancel",
		helpShort:  "Tab:Next  ^S:Submit  Esc:Cancel",
	}
}

// AddSection starts a new section; it is rendered above the next field added.
func (f *Form) AddSection(heading string) *Form {
	f.sections[len(f.fields)] = heading
	return f
}

// AddField adds a field to the form.
func (f *Form) AddField(field FormField) *Form {
	f.fields = append(f.fields, field)
	if len(f.fields) == 1 {
		field.Focus(true)
	}
	return f
}

// SetLabelWidth sets the label column width used by Render.
func (f *Form) SetLabelWidth(w int) *Form {
	f.labelWidth = w
	return f
}

// SetHelp replaces the key help shown under the form. short is used on
// narrow terminals.
func (f *Form) SetHelp(full, short string) *Form {
	f.help = full
	f.helpShort = short
	return f
}

// HandleKey handles form navigation.
func (f *Form) HandleKey(key string) {
	switch key {
	case "tab", "down":
		f.nextField()
	case "shift+tab", "up":
		f.prevField()
	case "ctrl+s":
		f.submitted = true
	case "esc":
		f.cancelled = true
	case "enter":
		// Move to next field on enter, or submit if on last field
		if f.focusIndex == len(f.fields)-1 {
			f.submitted = true
		} else {
			f.nextField()
		}
	default:
		if f.focusIndex < len(f.fields) {
			f.fields[f.focusIndex].HandleKey(key)
		}
	}
}

func (f *Form) nextField() {
	if len(f.fields) == 0 {
		return
	}
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex = (f.focusIndex + 1) % len(f.fields)
	f.fields[f.focusIndex].Focus(true)
}

func (f *Form) prevField() {
	if len(f.fields) == 0 {
		return
	}
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex--
	if f.focusIndex < 0 {
		f.focusIndex = len(f.fields) - 1
	}
	f.fields[f.focusIndex].Focus(true)
}

// FocusIndex returns the index of the focused field.
func (f *Form) FocusIndex() int {
	return f.focusIndex
}

// SetFocus moves focus to the field at idx.
func (f *Form) SetFocus(idx int) {
	if idx < 0 || idx >= len(f.fields) {
		return
	}
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex = idx
	f.fields[f.focusIndex].Focus(true)
}

// IsSubmitted returns true if form was submitted.
func (f *Form) IsSubmitted() bool {
	return f.submitted
}

// IsCancelled returns true if form was cancelled.
func (f *Form) IsCancelled() bool {
	return f.cancelled
}

// Reset clears the submitted and cancelled flags so the form can be reused.
func (f *Form) Reset() {
	f.submitted = false
	f.cancelled = false
}

// SetError sets an error message.
func (f *Form) SetError(err string) {
	f.err = err
}

// Render renders the form.
func (f *Form) Render() string {
	return f.RenderResponsive(0)
}

// RenderResponsive renders the form, switching to the compact help line
// when width is below 80 columns. A width of zero means unknown.
func (f *Form) RenderResponsive(width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444"))

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render(fmt.Sprintf("=== %s ===", f.title)))
	b.WriteString("\n")

	// Fields
	for i, field := range f.fields {
		if heading, ok := f.sections[i]; ok {
			b.WriteString("\n")
			if heading != "" {
				b.WriteString(sectionStyle.Render(heading))
				b.WriteString("\n")
			}
		} else if i == 0 {
			b.WriteString("\n")
		}
		b.WriteString(field.RenderWithLabelWidth(f.labelWidth))
		b.WriteString("\n")
	}

	// Error
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Error: " + f.err))
		b.WriteString("\n")
	}

	// Help
	help := f.help
	if width > 0 && width < 80 {
		help = f.helpShort
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(help))

	return b.String()
}
