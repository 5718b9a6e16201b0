package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/macromgr/macromgr/internal/config"
	"github.com/macromgr/macromgr/internal/models"
	"github.com/macromgr/macromgr/internal/services/macros"
	"github.com/macromgr/macromgr/internal/services/nutrition"
	"github.com/macromgr/macromgr/internal/tui/views/adjust"
	"github.com/macromgr/macromgr/internal/tui/views/calculator"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Session is the short form of the log session id, shown on the help
// screen so a run can be matched to its log lines.
var Session string

const (
	// minContentWidth is the narrowest the content column is laid out at.
	minContentWidth = 40

	// chromeLines is the height taken by header, alert bar and footer.
	chromeLines = 6

	// maxAlerts is how many alerts are retained.
	maxAlerts = 10
)

// Screen identifies one of the application screens.
type Screen string

const (
	ScreenCalculator Screen = "calculator"
	ScreenAdjust     Screen = "adjust"
	ScreenHelp       Screen = "help"
)

// App is the main Bubble Tea application model.
type App struct {
	// Dependencies
	config *config.Config
	store  *macros.Store
	logger *slog.Logger

	// Views
	calculatorView *calculator.Form
	adjustView     *adjust.View

	// UI state
	theme       *Theme
	keys        KeyMap
	width       int
	height      int
	ready       bool
	quitting    bool
	showConfirm bool

	// Current screen
	currentScreen  Screen
	previousScreen Screen

	// Alerts
	alerts []Alert
}

// Alert represents a status message shown under the header.
type Alert struct {
	Level   AlertLevel
	Message string
	Time    time.Time
}

// AlertLevel indicates the severity of an alert.
type AlertLevel int

const (
	AlertInfo AlertLevel = iota
	AlertWarning
	AlertCritical
)

// planCalculatedMsg carries the outcome of a calculation back to the model,
// together with the inputs it was made from.
type planCalculatedMsg struct {
	inputs models.PersonalInputs
	plan   *models.NutritionPlan
	err    error
}

// New creates a new App instance. The store is shared with the caller; the
// app never replaces it.
func New(cfg *config.Config, store *macros.Store, logger *slog.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if store == nil {
		store = macros.NewStore()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &App{
		config:         cfg,
		store:          store,
		logger:         logger,
		calculatorView: calculator.NewForm(),
		adjustView:     adjust.NewView(store),
		theme:          NewTheme(cfg.Display.ColorScheme),
		keys:           DefaultKeyMap(),
		currentScreen:  ScreenCalculator,
		alerts:         []Alert{},
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case planCalculatedMsg:
		a.handlePlan(msg)
		return a, nil
	}

	return a, nil
}

// handleKeyPress processes key press events.
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle quit confirmation first (modal takes priority)
	if a.showConfirm {
		switch {
		case a.keys.Confirm.Matches(msg):
			a.quitting = true
			a.logger.Info("quit confirmed")
			return a, tea.Quit
		case a.keys.Cancel.Matches(msg):
			a.showConfirm = false
		}
		return a, nil
	}

	// ctrl+c and F10 work from every screen, even mid-edit.
	if a.keys.IsQuit(msg) {
		a.showConfirm = true
		return a, nil
	}

	if screen, ok := a.keys.ScreenFor(msg); ok {
		a.switchScreen(screen)
		return a, nil
	}

	switch a.currentScreen {
	case ScreenCalculator:
		if a.calculatorView.HandleKey(msg.String()) {
			return a, a.calculatePlan()
		}
	case ScreenAdjust:
		a.adjustView.HandleKey(msg.String())
	case ScreenHelp:
		return a.handleHelpKeys(msg)
	}

	return a, nil
}

// handleHelpKeys handles keys on the help screen, where nothing is typed
// and q may be used to quit.
func (a *App) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.QuitPlain.Matches(msg):
		a.showConfirm = true
	case a.keys.Back.Matches(msg):
		back := a.previousScreen
		if back == "" {
			back = ScreenCalculator
		}
		a.currentScreen = back
		a.previousScreen = ""
	}
	return a, nil
}

// switchScreen moves to screen, remembering where help was opened from.
func (a *App) switchScreen(screen Screen) {
	if screen == a.currentScreen {
		return
	}
	if screen == ScreenHelp {
		a.previousScreen = a.currentScreen
	}
	a.currentScreen = screen
	a.logger.Debug("screen changed", "screen", string(screen))
}

// calculatePlan runs the calculation for the inputs as they are now.
func (a *App) calculatePlan() tea.Cmd {
	inputs := a.calculatorView.Inputs()
	return func() tea.Msg {
		plan, err := nutrition.Calculate(inputs)
		return planCalculatedMsg{inputs: inputs, plan: plan, err: err}
	}
}

// handlePlan applies a finished calculation unless the form has changed
// since it was requested.
func (a *App) handlePlan(msg planCalculatedMsg) {
	if !a.calculatorView.SetResult(msg.inputs, msg.plan, msg.err) {
		a.logger.Debug("discarding stale calculation")
		return
	}

	if msg.err != nil {
		a.logger.Info("calculation refused", "error", msg.err)
		a.AddAlert(AlertWarning, msg.err.Error())
		return
	}

	a.logger.Info("nutrition plan calculated",
		"unit", string(msg.inputs.Unit),
		"activity", string(msg.inputs.ActivityLevel),
		"goal", string(msg.inputs.FitnessGoal),
		"tdee", msg.plan.TDEE,
		"protein_g", msg.plan.Protein,
		"carbs_g", msg.plan.Carbs,
		"fat_g", msg.plan.Fat,
	)
	a.AddAlert(AlertInfo, fmt.Sprintf("Daily target: %d kcal", msg.plan.TDEE))
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	if a.quitting {
		return a.theme.Title.Render("Macro Manager closing. Eat well.")
	}

	var b strings.Builder

	// Header
	b.WriteString(a.renderHeader())
	b.WriteString("\n")

	// Alert bar
	b.WriteString(a.renderAlertBar())
	b.WriteString("\n")

	// Main content area
	contentHeight := ContentHeight(a.height, chromeLines)
	if a.showConfirm {
		b.WriteString(a.renderConfirmDialog(contentHeight))
	} else {
		b.WriteString(a.renderContent(contentHeight))
	}

	// Footer/status bar
	b.WriteString("\n")
	b.WriteString(a.renderFooter())

	return b.String()
}

// renderHeader renders the top header bar.
func (a *App) renderHeader() string {
	title := fmt.Sprintf("MACRO MANAGER v%s", Version)

	// Right side: the session split
	split := a.store.Get()
	splitInfo := fmt.Sprintf("P %d%% · C %d%% · F %d%%", split.Protein, split.Carbs, split.Fat)
	splitStyle := a.theme.Header
	if !split.Balanced() {
		splitInfo += " !"
		splitStyle = a.theme.AlertWarn.Padding(0, 1)
	}

	if GetBreakpoint(a.width) == BreakpointNarrow {
		title = Truncate(title, a.width-lipgloss.Width(splitInfo)-4)
	}

	left := a.theme.Header.Render(title)
	right := splitStyle.Render(splitInfo)

	spacing := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	header := left + strings.Repeat(" ", spacing) + right
	return header + "\n" + a.theme.DrawDoubleLine(a.width)
}

// renderAlertBar renders the latest alert.
func (a *App) renderAlertBar() string {
	screen := a.theme.Value.Render(strings.ToUpper(string(a.currentScreen)))
	divider := a.theme.StatusDivider.Render()

	var alertText string
	if len(a.alerts) > 0 {
		alert := a.alerts[0]
		switch alert.Level {
		case AlertCritical:
			alertText = a.theme.AlertCrit.Render("ERROR: " + alert.Message)
		case AlertWarning:
			alertText = a.theme.AlertWarn.Render("WARNING: " + alert.Message)
		default:
			alertText = a.theme.Alert.Render("INFO: " + alert.Message)
		}
	} else {
		alertText = a.theme.Muted.Render("Ready")
	}

	return screen + divider + alertText
}

// renderContent renders the main content area based on the current screen.
func (a *App) renderContent(height int) string {
	contentWidth := ContentWidth(a.width, minContentWidth, a.config.Display.MaxWidth)
	content := a.screenContent(contentWidth)

	// Center the content container within the terminal
	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Top)

	contentStyle := lipgloss.NewStyle().
		Width(contentWidth)

	return style.Render(contentStyle.Render(content))
}

// screenContent returns the content for the current screen.
func (a *App) screenContent(width int) string {
	switch a.currentScreen {
	case ScreenAdjust:
		return a.adjustView.Render(width)
	case ScreenHelp:
		return a.renderHelp(width)
	default:
		return a.calculatorView.Render(width)
	}
}

// renderHelp renders the help screen.
func (a *App) renderHelp(width int) string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("═══ HELP ═══"))
	b.WriteString("\n\n")

	helpLines := func(items [][2]string) string {
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = a.theme.StatusKey.Render(PadRight(item[0], 10)) + a.theme.Primary.Render(item[1])
		}
		return strings.Join(lines, "\n")
	}

	nav := helpLines([][2]string{
		{"F1", "Help"},
		{"F2", "Calculator"},
		{"F3", "Adjust macros"},
		{"F10", "Quit"},
		{"Ctrl+C", "Quit"},
	})
	ctrl := helpLines([][2]string{
		{"Tab/Down", "Next field"},
		{"S-Tab/Up", "Previous field"},
		{"←/→", "Choose option"},
		{"1-9", "Pick option"},
		{"-/+", "Step by 5%"},
		{"Ctrl+S", "Calculate"},
	})

	panelWidth := 36
	b.WriteString(SideBySide(
		a.theme.Panel("NAVIGATION", nav, panelWidth),
		a.theme.Panel("CONTROLS", ctrl, panelWidth),
		width, 2,
	))

	b.WriteString("\n\n")
	b.WriteString(a.theme.Muted.Render("Press Esc to return, q to quit"))
	if Session != "" {
		b.WriteString("\n")
		b.WriteString(a.theme.Muted.Render(fmt.Sprintf("Session %s · built %s", Session, BuildTime)))
	}

	return b.String()
}

// renderConfirmDialog renders the quit confirmation dialog.
func (a *App) renderConfirmDialog(height int) string {
	dialog := a.theme.Box.Render(
		a.theme.Title.Render("CONFIRM EXIT") + "\n\n" +
			a.theme.Base.Render("Are you sure you want to exit?") + "\n\n" +
			a.theme.Label.Render("[Y]es  [N]o"),
	)

	// Center the dialog
	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(dialog)
}

// renderFooter renders the bottom status bar.
func (a *App) renderFooter() string {
	separator := a.theme.DrawHorizontalLine(a.width)
	help := a.keys.StatusBarHelp(a.width)
	return separator + "\n" + a.theme.Footer.Render(help)
}

// AddAlert adds a new alert to the display.
func (a *App) AddAlert(level AlertLevel, message string) {
	a.alerts = append([]Alert{{
		Level:   level,
		Message: message,
		Time:    time.Now(),
	}}, a.alerts...)

	if len(a.alerts) > maxAlerts {
		a.alerts = a.alerts[:maxAlerts]
	}
}

// ClearAlerts removes all alerts.
func (a *App) ClearAlerts() {
	a.alerts = []Alert{}
}

// Close releases the subscriptions the app holds on the store.
func (a *App) Close() {
	a.adjustView.Close()
}

// Run starts the TUI application and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, cfg *config.Config, store *macros.Store, logger *slog.Logger) error {
	app := New(cfg, store, logger)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Handle context cancellation
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, err := p.Run()
	return err
}
