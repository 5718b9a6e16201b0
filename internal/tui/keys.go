package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the global key bindings. Everything else is routed to the
// active screen.
type KeyMap struct {
	// Function keys for screen navigation
	F1  Key
	F2  Key
	F3  Key
	F10 Key

	// Actions
	Quit      Key
	QuitPlain Key
	Back      Key

	// Quit confirmation
	Confirm Key
	Cancel  Key
}

// Key represents a key binding.
type Key struct {
	Keys    []string
	Help    string
	Enabled bool
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		F1: Key{
			Keys:    []string{"f1"},
			Help:    "Help",
			Enabled: true,
		},
		F2: Key{
			Keys:    []string{"f2"},
			Help:    "Calculator",
			Enabled: true,
		},
		F3: Key{
			Keys:    []string{"f3"},
			Help:    "Adjust",
			Enabled: true,
		},
		F10: Key{
			Keys:    []string{"f10"},
			Help:    "Quit",
			Enabled: true,
		},

		// ctrl+c works everywhere; q only where nothing is being typed.
		Quit: Key{
			Keys:    []string{"ctrl+c"},
			Help:    "quit",
			Enabled: true,
		},
		QuitPlain: Key{
			Keys:    []string{"q"},
			Help:    "quit",
			Enabled: true,
		},
		Back: Key{
			Keys:    []string{"esc"},
			Help:    "back",
			Enabled: true,
		},

		Confirm: Key{
			Keys:    []string{"y", "Y", "enter"},
			Help:    "yes",
			Enabled: true,
		},
		Cancel: Key{
			Keys:    []string{"n", "N", "esc"},
			Help:    "no",
			Enabled: true,
		},
	}
}

// Matches checks if a key message matches this key binding.
func (k Key) Matches(msg tea.KeyMsg) bool {
	if !k.Enabled {
		return false
	}

	keyStr := msg.String()
	for _, key := range k.Keys {
		if keyStr == key {
			return true
		}
	}
	return false
}

// MatchesAny checks if a key message matches any of the provided key bindings.
func MatchesAny(msg tea.KeyMsg, keys ...Key) bool {
	for _, k := range keys {
		if k.Matches(msg) {
			return true
		}
	}
	return false
}

// IsQuit checks if the key message asks to quit from any screen.
func (km KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return km.Quit.Matches(msg) || km.F10.Matches(msg)
}

// ScreenFor returns the screen a function key switches to.
func (km KeyMap) ScreenFor(msg tea.KeyMsg) (Screen, bool) {
	switch {
	case km.F1.Matches(msg):
		return ScreenHelp, true
	case km.F2.Matches(msg):
		return ScreenCalculator, true
	case km.F3.Matches(msg):
		return ScreenAdjust, true
	default:
		return "", false
	}
}

// StatusBarHelp returns the help text for the status bar, shortened on
// narrow terminals.
func (km KeyMap) StatusBarHelp(width int) string {
	if GetBreakpoint(width) == BreakpointNarrow {
		return "F1 Help  F2 Calc  F3 Adjust  F10 Quit"
	}
	return "[F1]Help [F2]Calculator [F3]Adjust Macros [F10]Quit"
}
