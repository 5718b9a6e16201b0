// Package models defines the domain models for Macro Manager.
package models

// Sex represents biological sex as used by the BMR formula.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// AllSexes lists the selectable sexes in display order.
var AllSexes = []Sex{SexMale, SexFemale}

// Valid returns true if the sex is a valid value.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// String returns the display string for the sex.
func (s Sex) String() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return "Unknown"
	}
}

// UnitSystem selects how height and weight are entered.
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

// AllUnitSystems lists the selectable unit systems in display order.
var AllUnitSystems = []UnitSystem{UnitMetric, UnitImperial}

// Valid returns true if the unit system is a valid value.
func (u UnitSystem) Valid() bool {
	return u == UnitMetric || u == UnitImperial
}

// String returns the display string for the unit system.
func (u UnitSystem) String() string {
	switch u {
	case UnitMetric:
		return "Metric (kg/cm)"
	case UnitImperial:
		return "Imperial (lbs/in)"
	default:
		return "Unknown"
	}
}

// HeightUnit returns the unit label height is entered in.
// Anything other than metric is shown as inches.
func (u UnitSystem) HeightUnit() string {
	if u == UnitMetric {
		return "cm"
	}
	return "in"
}

// WeightUnit returns the unit label weight is entered in.
func (u UnitSystem) WeightUnit() string {
	if u == UnitMetric {
		return "kg"
	}
	return "lbs"
}

// ActivityLevel describes how much exercise the user gets.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// AllActivityLevels lists the activity levels from least to most active.
var AllActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

// Valid returns true if the activity level is a valid value.
func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate,
		ActivityActive, ActivityVeryActive:
		return true
	default:
		return false
	}
}

// String returns the display string for the activity level.
func (a ActivityLevel) String() string {
	switch a {
	case ActivitySedentary:
		return "Sedentary"
	case ActivityLight:
		return "Light"
	case ActivityModerate:
		return "Moderate"
	case ActivityActive:
		return "Active"
	case ActivityVeryActive:
		return "Very Active"
	default:
		return "Unknown"
	}
}

// Description returns the exercise frequency the level stands for.
func (a ActivityLevel) Description() string {
	switch a {
	case ActivitySedentary:
		return "little or no exercise"
	case ActivityLight:
		return "exercise 1-3 days/week"
	case ActivityModerate:
		return "exercise 3-5 days/week"
	case ActivityActive:
		return "exercise 6-7 days/week"
	case ActivityVeryActive:
		return "hard exercise daily"
	default:
		return ""
	}
}

// FitnessGoal is what the user wants their intake to achieve.
type FitnessGoal string

const (
	GoalLoseWeight     FitnessGoal = "lose_weight"
	GoalMaintainWeight FitnessGoal = "maintain_weight"
	GoalGainMuscle     FitnessGoal = "gain_muscle"
)

// AllFitnessGoals lists the fitness goals in display order.
var AllFitnessGoals = []FitnessGoal{GoalLoseWeight, GoalMaintainWeight, GoalGainMuscle}

// Valid returns true if the goal is a valid value.
func (g FitnessGoal) Valid() bool {
	return g == GoalLoseWeight || g == GoalMaintainWeight || g == GoalGainMuscle
}

// String returns the display string for the goal.
func (g FitnessGoal) String() string {
	switch g {
	case GoalLoseWeight:
		return "Lose Weight"
	case GoalMaintainWeight:
		return "Maintain Weight"
	case GoalGainMuscle:
		return "Gain Muscle"
	default:
		return "Unknown"
	}
}

// PersonalInputs holds everything the user enters on the calculator screen.
// Age, Height and Weight are kept as the raw entered text; an empty string
// or empty enum means the field has not been filled in yet.
type PersonalInputs struct {
	Sex           Sex
	Unit          UnitSystem
	Age           string
	Height        string
	Weight        string
	ActivityLevel ActivityLevel
	FitnessGoal   FitnessGoal
}

// Complete returns true when all seven fields have a value.
func (p PersonalInputs) Complete() bool {
	return p.Sex != "" &&
		p.Unit != "" &&
		p.Age != "" &&
		p.Height != "" &&
		p.Weight != "" &&
		p.ActivityLevel != "" &&
		p.FitnessGoal != ""
}

// NutritionPlan is the result of one calculation. Grams may be negative for
// carbs when protein and fat already exceed the calorie target.
type NutritionPlan struct {
	TDEE    int `json:"tdee"`
	Protein int `json:"protein"`
	Fat     int `json:"fat"`
	Carbs   int `json:"carbs"`
}
