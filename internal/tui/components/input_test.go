package components

import (
	"strings"
	"testing"
)

func TestInput_BasicOperations(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Alice")

	if input.Value() != "Alice" {
		t.Errorf("Expected 'Alice', got %q", input.Value())
	}

	input.SetWidth(30)
	input.SetMaxLength(50)
	input.SetRequired(true)
	input.SetPlaceholder("Enter name")

	if !input.Validate() {
		t.Error("Expected validation to pass with value set")
	}
}

func TestInput_RequiredValidation(t *testing.T) {
	input := NewInput("Name").SetRequired(true)

	// Empty value should fail
	if input.Validate() {
		t.Error("Expected validation to fail for empty required field")
	}

	// With value should pass
	input.SetValue("Alice")
	if !input.Validate() {
		t.Error("Expected validation to pass with value set")
	}

	// Whitespace-only should fail
	input.SetValue("   ")
	if input.Validate() {
		t.Error("Expected validation to fail for whitespace-only required field")
	}
}

func TestInput_Focus(t *testing.T) {
	input := NewInput("Name")

	if input.IsFocused() {
		t.Error("Should not be focused initially")
	}

	input.Focus(true)
	if !input.IsFocused() {
		t.Error("Should be focused after Focus(true)")
	}

	input.Focus(false)
	if input.IsFocused() {
		t.Error("Should not be focused after Focus(false)")
	}
}

func TestInput_HandleKey_TypeCharacter(t *testing.T) {
	input := NewInput("Name")
	input.Focus(true)

	input.HandleKey("A")
	input.HandleKey("B")
	input.HandleKey("C")

	if input.Value() != "ABC" {
		t.Errorf("Expected 'ABC', got %q", input.Value())
	}
}

func TestInput_HandleKey_Backspace(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Hello")
	input.Focus(true)

	input.HandleKey("backspace")
	if input.Value() != "Hell" {
		t.Errorf("Expected 'Hell', got %q", input.Value())
	}
}

func TestInput_HandleKey_CursorMovement(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Hello")
	input.Focus(true)

	// Cursor at end (5), move left
	input.HandleKey("left")
	// Now at 4, type a char
	input.HandleKey("X")
	if input.Value() != "HellXo" {
		t.Errorf("Expected 'HellXo', got %q", input.Value())
	}

	// Home
	input.HandleKey("home")
	input.HandleKey("Y")
	if input.Value() != "YHellXo" {
		t.Errorf("Expected 'YHellXo', got %q", input.Value())
	}
}

func TestInput_HandleKey_NotFocused(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Hello")
	// Not focused

	input.HandleKey("A")
	if input.Value() != "Hello" {
		t.Errorf("Should not handle keys when not focused, got %q", input.Value())
	}
}

func TestInput_Render_ShowsLabel(t *testing.T) {
	input := NewInput("Username")
	input.SetValue("admin")

	output := input.Render()
	if !strings.Contains(output, "Username") {
		t.Error("Expected label 'Username' in output")
	}
	if !strings.Contains(output, "admin") {
		t.Error("Expected value 'admin' in output")
	}
}

func TestInput_RenderWithLabelWidth_ZeroHidesLabel(t *testing.T) {
	input := NewInput("Username")
	input.SetValue("admin")

	output := input.RenderWithLabelWidth(0)
	// With labelWidth=0, the label should be omitted
	if strings.Contains(output, "Username") {
		t.Error("Expected label to be hidden with labelWidth=0")
	}
	if !strings.Contains(output, "admin") {
		t.Error("Expected value 'admin' in output")
	}
}

func TestInput_RenderWithLabelWidth_Custom(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Alice")

	output := input.RenderWithLabelWidth(12)
	if !strings.Contains(output, "Name") {
		t.Error("Expected label in output")
	}
}

func TestInput_Render_ShowsPlaceholder(t *testing.T) {
	input := NewInput("Name").SetPlaceholder("Enter name")

	output := input.Render()
	if !strings.Contains(output, "Enter name") {
		t.Error("Expected placeholder in output when unfocused and empty")
	}
}

func TestInput_Render_ShowsCursor(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Hi")
	input.Focus(true)

	output := input.Render()
	if !strings.Contains(output, "_") {
		t.Error("Expected cursor '_' in focused input output")
	}
}

func TestSelect_BasicOperations(t *testing.T) {
	sel := NewSelect("Color", []string{"Red", "Green", "Blue"})

	if sel.Value() != "Red" {
		t.Errorf("Expected 'Red', got %q", sel.Value())
	}
	if sel.SelectedIndex() != 0 {
		t.Errorf("Expected index 0, got %d", sel.SelectedIndex())
	}

	sel.SetSelected(2)
	if sel.Value() != "Blue" {
		t.Errorf("Expected 'Blue', got %q", sel.Value())
	}
}

func TestSelect_HandleKey(t *testing.T) {
	sel := NewSelect("Color", []string{"Red", "Green", "Blue"})
	sel.Focus(true)

	// Move right
	sel.HandleKey("right")
	if sel.Value() != "Green" {
		t.Errorf("Expected 'Green', got %q", sel.Value())
	}

	sel.HandleKey("right")
	if sel.Value() != "Blue" {
		t.Errorf("Expected 'Blue', got %q", sel.Value())
	}

	// Can't move beyond last
	sel.HandleKey("right")
	if sel.Value() != "Blue" {
		t.Errorf("Expected 'Blue', got %q", sel.Value())
	}

	// Move left
	sel.HandleKey("left")
	if sel.Value() != "Green" {
		t.Errorf("Expected 'Green', got %q", sel.Value())
	}
}

func TestSelect_HandleKey_NotFocused(t *testing.T) {
	sel := NewSelect("Color", []string{"Red", "Green", "Blue"})
	// Not focused

	sel.HandleKey("right")
	if sel.Value() != "Red" {
		t.Errorf("Should not handle keys when not focused, got %q", sel.Value())
	}
}

func TestSelect_Render(t *testing.T) {
	sel := NewSelect("Color", []string{"Red", "Green", "Blue"})
	sel.SetSelected(1)

	output := sel.Render()
	if !strings.Contains(output, "Color") {
		t.Error("Expected label 'Color' in output")
	}
	if !strings.Contains(output, "Green") {
		t.Error("Expected selected option 'Green' in output")
	}
}

func TestSelect_RenderWithLabelWidth(t *testing.T) {
	sel := NewSelect("Color", []string{"Red", "Green"})

	output := sel.RenderWithLabelWidth(10)
	if !strings.Contains(output, "Color") {
		t.Error("Expected label in output")
	}
}

func TestSelect_SetSelected_OutOfBounds(t *testing.T) {
	sel := NewSelect("Color", []string{"Red", "Green"})

	sel.SetSelected(-1)
	if sel.SelectedIndex() != 0 {
		t.Errorf("Expected index 0 after invalid SetSelected(-1), got %d", sel.SelectedIndex())
	}

	sel.SetSelected(99)
	if sel.SelectedIndex() != 0 {
		t.Errorf("Expected index 0 after invalid SetSelected(99), got %d", sel.SelectedIndex())
	}
}

func TestForm_BasicFlow(t *testing.T) {
	form := NewForm("Test Form")

	input1 := NewInput("Field1")
	input2 := NewInput("Field2")
	form.AddField(input1)
	form.AddField(input2)

	if form.IsSubmitted() {
		t.Error("Should not be submitted initially")
	}
	if form.IsCancelled() {
		t.Error("Should not be cancelled initially")
	}

	// First field should be focused
	if !input1.IsFocused() {
		t.Error("First field should be focused")
	}

	// Tab to next
	form.HandleKey("tab")
	if !input2.IsFocused() {
		t.Error("Second field should be focused after tab")
	}
	if input1.IsFocused() {
		t.Error("First field should not be focused after tab")
	}

	// Submit
	form.HandleKey("ctrl+s")
	if !form.IsSubmitted() {
		t.Error("Form should be submitted after Ctrl+S")
	}
}

func TestForm_Cancel(t *testing.T) {
	form := NewForm("Test")
	form.AddField(NewInput("Field"))

	form.HandleKey("esc")
	if !form.IsCancelled() {
		t.Error("Form should be cancelled after Esc")
	}
}

func TestForm_Render(t *testing.T) {
	form := NewForm("Test Form")
	form.AddField(NewInput("Name").SetValue("Alice"))

	output := form.Render()
	if !strings.Contains(output, "Test Form") {
		t.Error("Expected title in form output")
	}
	if !strings.Contains(output, "Name") {
		t.Error("Expected field label in form output")
	}
}

func TestForm_RenderResponsive(t *testing.T) {
	form := NewForm("Test Form")
	form.AddField(NewInput("Name").SetValue("Alice"))

	// Wide
	wide := form.RenderResponsive(120)
	if !strings.Contains(wide, "Shift+Tab") {
		t.Error("Expected full help text on wide terminal")
	}

	// Narrow
	narrow := form.RenderResponsive(50)
	if strings.Contains(narrow, "Shift+Tab") {
		t.Error("Expected compact help text on narrow terminal")
	}
}

func TestForm_SetError(t *testing.T) {
	form := NewForm("Test")
	form.AddField(NewInput("Field"))
	form.SetError("Something went wrong")

	output := form.Render()
	if !strings.Contains(output, "Something went wrong") {
		t.Error("Expected error message in form output")
	}
}

func TestInput_Pattern_DigitsOnly(t *testing.T) {
	input := NewInput("Age").SetPattern(DigitsOnly)
	input.Focus(true)

	for _, k := range []string{"2", "a", "5", ".", "-"} {
		input.HandleKey(k)
	}

	if input.Value() != "25" {
		t.Errorf("Expected '25', got %q", input.Value())
	}
}

func TestInput_Pattern_Decimal(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"integer", []string{"1", "8", "0"}, "180"},
		{"one decimal point", []string{"7", "2", ".", "5"}, "72.5"},
		{"second point rejected", []string{"1", ".", "2", ".", "3"}, "1.23"},
		{"leading point", []string{".", "5"}, ".5"},
		{"letters rejected", []string{"6", "x", "0"}, "60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := NewInput("Weight").SetPattern(Decimal)
			input.Focus(true)
			for _, k := range tt.keys {
				input.HandleKey(k)
			}
			if input.Value() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, input.Value())
			}
		})
	}
}

func TestInput_Pattern_EditsStayValid(t *testing.T) {
	input := NewInput("Age").SetPattern(DigitsOnly).SetValue("42")
	input.Focus(true)

	input.HandleKey("backspace")
	if input.Value() != "4" {
		t.Errorf("Expected '4' after backspace, got %q", input.Value())
	}
	input.HandleKey("home")
	input.HandleKey("delete")
	if input.Value() != "" {
		t.Errorf("Expected empty value after delete, got %q", input.Value())
	}
}

func TestInput_SetLabel(t *testing.T) {
	input := NewInput("Height (cm)")
	input.SetLabel("Height (in)")

	if !strings.Contains(input.Render(), "Height (in)") {
		t.Error("Expected updated label in output")
	}
}

func TestSelect_AllowNone(t *testing.T) {
	sel := NewSelect("Sex", []string{"Male", "Female"}).SetAllowNone(true)

	if sel.SelectedIndex() != -1 {
		t.Errorf("Expected index -1, got %d", sel.SelectedIndex())
	}
	if sel.Value() != "" {
		t.Errorf("Expected empty value, got %q", sel.Value())
	}
	if !strings.Contains(sel.Render(), "choose one") {
		t.Error("Expected choose hint while nothing is selected")
	}

	sel.Focus(true)
	sel.HandleKey("right")
	if sel.Value() != "Male" {
		t.Errorf("Expected first option after first move, got %q", sel.Value())
	}

	// Once chosen it cannot be cleared by moving left.
	sel.HandleKey("left")
	if sel.Value() != "Male" {
		t.Errorf("Expected 'Male', got %q", sel.Value())
	}
}

func TestSelect_DigitKeys(t *testing.T) {
	sel := NewSelect("Activity", []string{"A", "B", "C"}).SetAllowNone(true)
	sel.Focus(true)

	sel.HandleKey("3")
	if sel.Value() != "C" {
		t.Errorf("Expected 'C', got %q", sel.Value())
	}

	sel.HandleKey("9")
	if sel.Value() != "C" {
		t.Errorf("Out-of-range digit should be ignored, got %q", sel.Value())
	}

	sel.HandleKey("1")
	if sel.Value() != "A" {
		t.Errorf("Expected 'A', got %q", sel.Value())
	}
}

func TestForm_EnterOnLastFieldSubmits(t *testing.T) {
	form := NewForm("Test")
	form.AddField(NewInput("Field"))
	form.AddField(NewButton("Go"))

	form.HandleKey("enter")
	if form.IsSubmitted() {
		t.Fatal("Enter on first field should advance, not submit")
	}
	if form.FocusIndex() != 1 {
		t.Fatalf("Expected focus on button, got %d", form.FocusIndex())
	}

	form.HandleKey("enter")
	if !form.IsSubmitted() {
		t.Error("Enter on last field should submit")
	}

	form.Reset()
	if form.IsSubmitted() {
		t.Error("Reset should clear submitted flag")
	}
}

func TestForm_PrevWraps(t *testing.T) {
	form := NewForm("Test")
	a, b := NewInput("A"), NewInput("B")
	form.AddField(a).AddField(b)

	form.HandleKey("shift+tab")
	if !b.IsFocused() || a.IsFocused() {
		t.Error("Expected focus to wrap to the last field")
	}

	form.SetFocus(0)
	if !a.IsFocused() || b.IsFocused() {
		t.Error("Expected SetFocus to move focus to the first field")
	}

	form.SetFocus(5)
	if form.FocusIndex() != 0 {
		t.Errorf("Out-of-range SetFocus should be ignored, got %d", form.FocusIndex())
	}
}

func TestForm_Sections(t *testing.T) {
	form := NewForm("Test")
	form.AddSection("PERSONAL INFORMATION")
	form.AddField(NewInput("Age"))
	form.AddSection("FITNESS GOAL")
	form.AddField(NewSelect("Goal", []string{"Lose", "Gain"}))

	output := form.Render()
	personal := strings.Index(output, "PERSONAL INFORMATION")
	age := strings.Index(output, "Age")
	goal := strings.Index(output, "FITNESS GOAL")
	if personal < 0 || age < 0 || goal < 0 {
		t.Fatalf("Expected section headings and fields in output:\n%s", output)
	}
	if !(personal < age && age < goal) {
		t.Error("Expected headings rendered above their fields")
	}
}

func TestForm_SetHelp(t *testing.T) {
	form := NewForm("Test").SetHelp("Full help line", "Short")
	form.AddField(NewInput("Field"))

	if !strings.Contains(form.RenderResponsive(120), "Full help line") {
		t.Error("Expected custom help on wide terminal")
	}
	if !strings.Contains(form.RenderResponsive(40), "Short") {
		t.Error("Expected short help on narrow terminal")
	}
}

func TestButton_Render(t *testing.T) {
	btn := NewButton("Calculate").SetHint("fill in every field")

	if !strings.Contains(btn.Render(), "Calculate") {
		t.Error("Expected label in output")
	}
	if strings.Contains(btn.Render(), "fill in every field") {
		t.Error("Hint should only show when disabled")
	}

	btn.SetEnabled(false)
	if btn.Enabled() {
		t.Error("Expected button to be disabled")
	}
	if !strings.Contains(btn.Render(), "fill in every field") {
		t.Error("Expected hint on disabled button")
	}
}

func TestStepper_HandleKey(t *testing.T) {
	var deltas []int
	st := NewStepper("Protein", 5)
	st.OnStep = func(d int) { deltas = append(deltas, d) }

	st.HandleKey("+")
	if len(deltas) != 0 {
		t.Fatal("Unfocused stepper should ignore keys")
	}

	st.Focus(true)
	for _, k := range []string{"+", "right", "-", "left", "x"} {
		st.HandleKey(k)
	}

	want := []int{5, 5, -5, -5}
	if len(deltas) != len(want) {
		t.Fatalf("Expected %d steps, got %v", len(want), deltas)
	}
	for i := range want {
		if deltas[i] != want[i] {
			t.Errorf("step %d = %d, want %d", i, deltas[i], want[i])
		}
	}
}

func TestStepper_Render(t *testing.T) {
	st := NewStepper("Carbs", 5).SetValue(30).SetDetail("600 kcal")

	output := st.Render()
	for _, want := range []string{"Carbs", "30%", "[-5]", "[+5]", "600 kcal"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output:\n%s", want, output)
		}
	}
}

func TestPercentCells(t *testing.T) {
	tests := []struct {
		pct, width, want int
	}{
		{0, 20, 0},
		{50, 20, 10},
		{100, 20, 20},
		{150, 20, 20},
		{-10, 20, 0},
	}
	for _, tt := range tests {
		if got := percentCells(tt.pct, tt.width); got != tt.want {
			t.Errorf("percentCells(%d, %d) = %d, want %d", tt.pct, tt.width, got, tt.want)
		}
	}
}
