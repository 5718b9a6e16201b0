// Package adjust provides the macro adjustment screen.
package adjust

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/macromgr/macromgr/internal/models"
	"github.com/macromgr/macromgr/internal/services/macros"
	"github.com/macromgr/macromgr/internal/services/nutrition"
	"github.com/macromgr/macromgr/internal/tui/components"
)

// View edits the shared macro distribution. Values shown on screen always
// come from the store; the view subscribes so that changes made elsewhere
// are picked up too.
type View struct {
	store *macros.Store
	form  *components.Form

	preset   *components.Select
	steppers map[models.MacroField]*components.Stepper

	current     models.MacroDistribution
	message     string
	unsubscribe func()
}

// NewView creates the adjustment screen bound to store.
func NewView(store *macros.Store) *View {
	v := &View{
		store:    store,
		preset:   components.NewSelect("Goal", goalLabels()).SetAllowNone(true),
		steppers: make(map[models.MacroField]*components.Stepper, len(models.AllMacroFields)),
	}

	v.form = components.NewForm("ADJUST MACROS").
		SetHelp(
			"Tab/Down:Next  Shift+Tab/Up:Prev  ←/→ or -/+:Adjust by 5%  1-3:Preset",
			"Tab:Next  -/+:Adjust",
		)
	v.form.AddSection("FITNESS GOAL BASED MACRO PRESETS").AddField(v.preset)
	v.form.AddSection("DISTRIBUTION")

	for _, field := range models.AllMacroFields {
		st := components.NewStepper(field.String(), macros.StepSize)
		st.OnStep = v.stepper(field)
		v.steppers[field] = st
		v.form.AddField(st)
	}

	v.unsubscribe = store.Subscribe(v.refresh)
	v.refresh(store.Get())

	return v
}

func goalLabels() []string {
	out := make([]string, len(models.AllFitnessGoals))
	for i, g := range models.AllFitnessGoals {
		out[i] = g.String()
	}
	return out
}

// stepper returns the step handler for one field.
func (v *View) stepper(field models.MacroField) func(int) {
	return func(delta int) {
		if err := v.store.Step(field, delta); err != nil {
			if errors.Is(err, macros.ErrOutOfRange) {
				v.message = fmt.Sprintf("%s must stay between 0%% and 100%%", field)
				return
			}
			v.message = err.Error()
			return
		}
		v.message = ""
	}
}

// refresh mirrors a new distribution into the steppers.
func (v *View) refresh(d models.MacroDistribution) {
	v.current = d
	for field, st := range v.steppers {
		pct := d.Get(field)
		st.SetValue(pct)
		st.SetDetail(fmt.Sprintf("%4d kcal", nutrition.MacroCalories(pct, field)))
	}
}

// Close stops listening to the store.
func (v *View) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// HandleKey routes a key to the focused control. Choosing a different goal
// in the preset selector replaces the distribution with that goal's preset.
func (v *View) HandleKey(key string) {
	before := v.preset.SelectedIndex()
	v.form.HandleKey(key)
	v.form.Reset()

	after := v.preset.SelectedIndex()
	if after == before || after < 0 {
		return
	}

	goal := models.AllFitnessGoals[after]
	if err := v.store.ApplyPreset(goal); err != nil {
		v.message = err.Error()
		return
	}
	v.message = ""
}

// Distribution returns the distribution currently shown.
func (v *View) Distribution() models.MacroDistribution {
	return v.current
}

// Message returns the last feedback message, or "".
func (v *View) Message() string {
	return v.message
}

// Render renders the adjustment screen.
func (v *View) Render(width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00")).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#006600"))

	var b strings.Builder
	b.WriteString(v.form.RenderResponsive(width))
	b.WriteString("\n\n")

	total := v.current.Total()
	b.WriteString(labelStyle.Render("Total: "))
	if v.current.Balanced() {
		b.WriteString(okStyle.Render(fmt.Sprintf("%d%%", total)))
	} else {
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d%% (should be 100%%)", total)))
	}

	if v.message != "" {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(v.message))
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf(
		"Calories are shown against a %.0f kcal reference day.", nutrition.ReferenceDayKcal)))

	return b.String()
}
