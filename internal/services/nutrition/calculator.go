// Package nutrition computes daily calorie and macronutrient targets from
// a user's personal inputs.
package nutrition

import (
	"math"
	"strconv"

	"github.com/macromgr/macromgr/internal/models"
)

const (
	// KgPerPound converts pounds to kilograms.
	KgPerPound = 0.453592
	// CmPerInch converts inches to centimeters.
	CmPerInch = 2.54

	// MinimumTDEE is the safety floor for the daily calorie target.
	MinimumTDEE = 1200.0

	// ProteinGramsPerKg is the protein recommendation per kilogram of body weight.
	ProteinGramsPerKg = 2.2
	// FatCalorieShare is the fraction of daily calories allotted to fat.
	FatCalorieShare = 0.25

	// ReferenceDayKcal is the calorie budget the adjustment screen uses to
	// show what a percentage is worth.
	ReferenceDayKcal = 2000.0
)

// IncompleteFormMessage is shown when a calculation is attempted before
// every field is filled in.
const IncompleteFormMessage = "Please fill out all fields to calculate your macros."

// ValidationKind classifies why a calculation was refused.
type ValidationKind string

const (
	KindIncompleteForm ValidationKind = "incomplete_form"
)

// ValidationError is returned when inputs cannot be used for a calculation.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is a ValidationError of the same kind, so
// errors.Is(err, ErrIncompleteForm) works on any incomplete-form error.
func (e *ValidationError) Is(target error) bool {
	v, ok := target.(*ValidationError)
	return ok && v.Kind == e.Kind
}

// ErrIncompleteForm is returned when one or more inputs are missing.
var ErrIncompleteForm = &ValidationError{
	Kind:    KindIncompleteForm,
	Message: IncompleteFormMessage,
}

// activityMultipliers maps each activity level to its TDEE multiplier.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// ActivityMultiplier returns the TDEE multiplier for an activity level.
func ActivityMultiplier(level models.ActivityLevel) (float64, bool) {
	m, ok := activityMultipliers[level]
	return m, ok
}

// GoalAdjustment returns the calories added to (or removed from) TDEE for a goal.
func GoalAdjustment(goal models.FitnessGoal) float64 {
	switch goal {
	case models.GoalLoseWeight:
		return -500
	case models.GoalGainMuscle:
		return 300
	default:
		return 0
	}
}

// ToMetric converts height and weight to centimeters and kilograms.
// Metric values are returned unchanged.
func ToMetric(unit models.UnitSystem, height, weight float64) (heightCm, weightKg float64) {
	if unit == models.UnitImperial {
		return height * CmPerInch, weight * KgPerPound
	}
	return height, weight
}

// BMR computes basal metabolic rate with the Mifflin-St Jeor equation.
// Any sex other than male uses the female constant.
func BMR(sex models.Sex, weightKg, heightCm float64, age int) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == models.SexMale {
		return bmr + 5
	}
	return bmr - 161
}

// Calculate derives the daily calorie target and macro grams from the inputs.
// It returns ErrIncompleteForm if any field is missing or a numeric field
// cannot be read. Physiologically implausible values are not rejected, and
// carbs may come out negative when protein and fat exceed the target.
func Calculate(in models.PersonalInputs) (*models.NutritionPlan, error) {
	if !in.Complete() {
		return nil, ErrIncompleteForm
	}

	age, err := strconv.Atoi(in.Age)
	if err != nil {
		return nil, ErrIncompleteForm
	}
	height, err := strconv.ParseFloat(in.Height, 64)
	if err != nil {
		return nil, ErrIncompleteForm
	}
	weight, err := strconv.ParseFloat(in.Weight, 64)
	if err != nil {
		return nil, ErrIncompleteForm
	}

	heightCm, weightKg := ToMetric(in.Unit, height, weight)

	mult, ok := ActivityMultiplier(in.ActivityLevel)
	if !ok {
		return nil, ErrIncompleteForm
	}

	tdee := BMR(in.Sex, weightKg, heightCm, age) * mult
	tdee += GoalAdjustment(in.FitnessGoal)
	if tdee < MinimumTDEE {
		tdee = MinimumTDEE
	}

	// Protein is fixed per kg; fat takes a share; carbs get the rest.
	proteinGrams := weightKg * ProteinGramsPerKg
	proteinCalories := proteinGrams * models.ProteinKcalPerGram

	fatCalories := tdee * FatCalorieShare
	fatGrams := fatCalories / models.FatKcalPerGram

	carbCalories := tdee - proteinCalories - fatCalories
	carbGrams := carbCalories / models.CarbsKcalPerGram

	return &models.NutritionPlan{
		TDEE:    round(tdee),
		Protein: round(proteinGrams),
		Fat:     round(fatGrams),
		Carbs:   round(carbGrams),
	}, nil
}

// MacroCalories returns what a percentage of the reference day is worth in
// calories for the given field. Fat is scaled by its density relative to
// protein and carbs.
func MacroCalories(percent int, field models.MacroField) int {
	calories := float64(percent) / 100 * ReferenceDayKcal
	if field == models.MacroFat {
		return round(calories * (float64(models.FatKcalPerGram) / models.ProteinKcalPerGram))
	}
	return round(calories)
}

// round rounds to the nearest integer with ties going toward +Inf, so
// -2.5 becomes -2 and 2.5 becomes 3. math.Round would send -2.5 to -3.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
