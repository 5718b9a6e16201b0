package tui

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/macromgr/macromgr/internal/config"
	"github.com/macromgr/macromgr/internal/services/macros"
)

// newTestApp creates an App with a default config, a fresh store and a
// discarding logger. The window is set to 120x60 and marked ready.
func newTestApp(t *testing.T) *App {
	t.Helper()

	app := New(config.Default(), macros.NewStore(), discardLogger())
	t.Cleanup(app.Close)

	// Simulate a window size message to make the app ready
	app.width = 120
	app.height = 60
	app.ready = true

	return app
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// keyMsg creates a tea.KeyMsg for a regular character key.
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// specialKeyMsg creates a tea.KeyMsg for a special key type.
func specialKeyMsg(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

// send delivers msgs to the app in order. Commands that produce a
// calculation result are run synchronously and fed back in, the way the
// program loop would.
func send(a *App, msgs ...tea.Msg) {
	for _, m := range msgs {
		_, cmd := a.Update(m)
		if cmd == nil {
			continue
		}
		if res, ok := cmd().(planCalculatedMsg); ok {
			a.Update(res)
		}
	}
}

// fillFormKeys enters a complete metric profile on the calculator screen:
// male, 25 years, 180 cm, 80 kg, moderate activity, maintain weight.
func fillFormKeys() []tea.Msg {
	tab := specialKeyMsg(tea.KeyTab)
	right := specialKeyMsg(tea.KeyRight)
	return []tea.Msg{
		right, tab,
		right, tab,
		keyMsg("2"), keyMsg("5"), tab,
		keyMsg("1"), keyMsg("8"), keyMsg("0"), tab,
		keyMsg("8"), keyMsg("0"), tab,
		keyMsg("3"), tab,
		keyMsg("2"),
	}
}
