// Package calculator provides the macro calculator screen.
package calculator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/macromgr/macromgr/internal/models"
	"github.com/macromgr/macromgr/internal/services/nutrition"
	"github.com/macromgr/macromgr/internal/tui/components"
)

// labelWidth fits the longest field label, "Activity Level".
const labelWidth = 16

// Form collects personal inputs and shows the resulting nutrition plan.
// The plan and any error are cleared whenever an input changes.
type Form struct {
	form *components.Form

	unit     *components.Select
	sex      *components.Select
	age      *components.Input
	height   *components.Input
	weight   *components.Input
	activity *components.Select
	goal     *components.Select
	submit   *components.Button

	inputs models.PersonalInputs
	plan   *models.NutritionPlan
	err    string
}

// NewForm creates an empty calculator form with the unit selector focused.
func NewForm() *Form {
	f := &Form{
		unit:     components.NewSelect("Units", labels(models.AllUnitSystems)).SetAllowNone(true),
		sex:      components.NewSelect("Sex", labels(models.AllSexes)).SetAllowNone(true),
		age:      components.NewInput("Age").SetPattern(components.DigitsOnly).SetWidth(6).SetPlaceholder("years"),
		height:   components.NewInput("Height").SetPattern(components.DigitsOnly).SetWidth(8),
		weight:   components.NewInput("Weight").SetPattern(components.Decimal).SetWidth(8),
		activity: components.NewSelect("Activity Level", labels(models.AllActivityLevels)).SetAllowNone(true),
		goal:     components.NewSelect("Goal", labels(models.AllFitnessGoals)).SetAllowNone(true),
		submit:   components.NewButton("Calculate").SetHint("fill in every field first"),
	}

	f.form = components.NewForm("MACRO CALCULATOR").
		SetLabelWidth(labelWidth).
		SetHelp(
			"Tab/Down:Next  Shift+Tab/Up:Prev  ←/→:Choose  Enter/Ctrl+S:Calculate",
			"Tab:Next  ←/→:Choose  ^S:Calculate",
		)

	f.form.AddSection("UNIT SYSTEM").AddField(f.unit)
	f.form.AddSection("PERSONAL INFORMATION").
		AddField(f.sex).
		AddField(f.age).
		AddField(f.height).
		AddField(f.weight)
	f.form.AddSection("ACTIVITY LEVEL").AddField(f.activity)
	f.form.AddSection("FITNESS GOAL").AddField(f.goal)
	f.form.AddSection("").AddField(f.submit)

	f.sync()
	return f
}

// labels returns the display names of a set of enum values.
func labels[T fmt.Stringer](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

// pick returns values[idx], or the zero value when nothing is chosen.
func pick[T any](values []T, idx int) T {
	var zero T
	if idx < 0 || idx >= len(values) {
		return zero
	}
	return values[idx]
}

// indexOf returns the position of v in values, or -1.
func indexOf[T comparable](values []T, v T) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}

// Inputs returns the values currently entered in the form.
func (f *Form) Inputs() models.PersonalInputs {
	return models.PersonalInputs{
		Sex:           pick(models.AllSexes, f.sex.SelectedIndex()),
		Unit:          pick(models.AllUnitSystems, f.unit.SelectedIndex()),
		Age:           f.age.Value(),
		Height:        f.height.Value(),
		Weight:        f.weight.Value(),
		ActivityLevel: pick(models.AllActivityLevels, f.activity.SelectedIndex()),
		FitnessGoal:   pick(models.AllFitnessGoals, f.goal.SelectedIndex()),
	}
}

// SetInputs populates the form. Unknown enum values leave the field unset.
func (f *Form) SetInputs(in models.PersonalInputs) {
	f.unit.SetSelected(indexOf(models.AllUnitSystems, in.Unit))
	f.sex.SetSelected(indexOf(models.AllSexes, in.Sex))
	f.age.SetValue(in.Age)
	f.height.SetValue(in.Height)
	f.weight.SetValue(in.Weight)
	f.activity.SetSelected(indexOf(models.AllActivityLevels, in.ActivityLevel))
	f.goal.SetSelected(indexOf(models.AllFitnessGoals, in.FitnessGoal))
	f.sync()
}

// HandleKey routes a key to the focused field. It returns true when the
// user asked for a calculation.
func (f *Form) HandleKey(key string) bool {
	f.form.HandleKey(key)
	f.sync()

	if f.form.IsSubmitted() {
		f.form.Reset()
		return true
	}
	return false
}

// sync compares the inputs with the last snapshot and drops any stale
// result when they differ.
func (f *Form) sync() {
	cur := f.Inputs()
	if cur != f.inputs {
		f.inputs = cur
		f.plan = nil
		f.err = ""
	}

	if cur.Unit.Valid() {
		f.height.SetLabel(fmt.Sprintf("Height (%s)", cur.Unit.HeightUnit()))
		f.weight.SetLabel(fmt.Sprintf("Weight (%s)", cur.Unit.WeightUnit()))
	}
	f.submit.SetEnabled(cur.Complete())
}

// Calculate runs the calculation on the current inputs and stores the
// outcome.
func (f *Form) Calculate() error {
	in := f.Inputs()
	plan, err := nutrition.Calculate(in)
	f.SetResult(in, plan, err)
	return err
}

// SetResult stores the outcome of a calculation made from in. It returns
// false and changes nothing if the form has been edited since.
func (f *Form) SetResult(in models.PersonalInputs, plan *models.NutritionPlan, err error) bool {
	if in != f.Inputs() {
		return false
	}
	if err != nil {
		f.plan = nil
		f.err = err.Error()
		return true
	}
	f.plan = plan
	f.err = ""
	return true
}

// Plan returns the current plan, or nil.
func (f *Form) Plan() *models.NutritionPlan {
	return f.plan
}

// Err returns the current error message, or "".
func (f *Form) Err() string {
	return f.err
}

// CanCalculate reports whether every field has a value.
func (f *Form) CanCalculate() bool {
	return f.submit.Enabled()
}

// Render renders the form followed by the plan or the explanation.
func (f *Form) Render(width int) string {
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#006600"))

	var b strings.Builder
	b.WriteString(f.form.RenderResponsive(width))

	if a := f.inputs.ActivityLevel; a.Valid() {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%s: %s", a, a.Description())))
	}

	if f.err != "" {
		b.WriteString("\n\n")
		b.WriteString(errStyle.Render(f.err))
	}

	b.WriteString("\n\n")
	if f.plan != nil {
		b.WriteString(renderPlan(f.plan))
	} else {
		b.WriteString(renderHowItWorks())
	}

	return b.String()
}

func renderPlan(p *models.NutritionPlan) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Width(24)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("═══ YOUR NUTRITION PLAN ═══"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Daily Calories (TDEE)", fmt.Sprintf("%5d kcal", p.TDEE)},
		{"Protein", fmt.Sprintf("%5d g", p.Protein)},
		{"Carbs", fmt.Sprintf("%5d g", p.Carbs)},
		{"Fat", fmt.Sprintf("%5d g", p.Fat)},
	}
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(r.label))
		b.WriteString(valueStyle.Render(r.value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("MACRO DISTRIBUTION"))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(DistributionBar(models.DefaultDistribution(), 40))

	return b.String()
}

// DistributionBar renders a single bar split by macro share, followed by a
// legend.
func DistributionBar(d models.MacroDistribution, width int) string {
	segments := []struct {
		field models.MacroField
		char  string
		color lipgloss.Color
	}{
		{models.MacroProtein, "█", lipgloss.Color("#00FF00")},
		{models.MacroCarbs, "▓", lipgloss.Color("#00AA00")},
		{models.MacroFat, "▒", lipgloss.Color("#66FF66")},
	}

	var bar, legend strings.Builder
	used := 0
	for i, s := range segments {
		pct := d.Get(s.field)
		n := pct * width / 100
		if i == len(segments)-1 && d.Balanced() {
			// Absorb integer rounding so a balanced split fills the bar.
			n = width - used
		}
		if n < 0 {
			n = 0
		}
		if used+n > width {
			n = width - used
		}
		used += n

		style := lipgloss.NewStyle().Foreground(s.color)
		bar.WriteString(style.Render(strings.Repeat(s.char, n)))

		if i > 0 {
			legend.WriteString("  ")
		}
		legend.WriteString(style.Render(fmt.Sprintf("%s %s %d%%", s.char, s.field, pct)))
	}

	return bar.String() + "\n  " + legend.String()
}

func renderHowItWorks() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	lines := []string{
		"Basal metabolic rate uses the Mifflin-St Jeor equation.",
		"It is multiplied by your activity level, then 500 kcal is removed",
		"to lose weight or 300 kcal added to gain muscle (minimum 1200 kcal).",
		fmt.Sprintf("Protein is %.1f g per kg of body weight, fat is %.0f%% of calories,",
			nutrition.ProteinGramsPerKg, nutrition.FatCalorieShare*100),
		"and carbs fill the rest.",
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("HOW IT WORKS"))
	for _, l := range lines {
		b.WriteString("\n  ")
		b.WriteString(textStyle.Render(l))
	}
	return b.String()
}
