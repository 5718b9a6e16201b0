package models

import (
	"errors"
	"fmt"
)

// Calories per gram of each macronutrient.
const (
	ProteinKcalPerGram = 4
	CarbsKcalPerGram   = 4
	FatKcalPerGram     = 9
)

// MacroField names one of the three macronutrients.
type MacroField string

const (
	MacroProtein MacroField = "protein"
	MacroCarbs   MacroField = "carbs"
	MacroFat     MacroField = "fat"
)

// AllMacroFields lists the macro fields in display order.
var AllMacroFields = []MacroField{MacroProtein, MacroCarbs, MacroFat}

// Valid returns true if the field is a valid value.
func (f MacroField) Valid() bool {
	return f == MacroProtein || f == MacroCarbs || f == MacroFat
}

// String returns the display string for the field.
func (f MacroField) String() string {
	switch f {
	case MacroProtein:
		return "Protein"
	case MacroCarbs:
		return "Carbs"
	case MacroFat:
		return "Fat"
	default:
		return "Unknown"
	}
}

// MacroDistribution is the percentage split of daily calories across
// protein, carbs and fat.
type MacroDistribution struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// DefaultDistribution returns the 40/30/30 split a session starts with.
func DefaultDistribution() MacroDistribution {
	return MacroDistribution{Protein: 40, Carbs: 30, Fat: 30}
}

// PresetFor returns the fixed split for a fitness goal.
func PresetFor(goal FitnessGoal) (MacroDistribution, bool) {
	switch goal {
	case GoalLoseWeight:
		return MacroDistribution{Protein: 40, Carbs: 30, Fat: 30}, true
	case GoalMaintainWeight:
		return MacroDistribution{Protein: 25, Carbs: 45, Fat: 30}, true
	case GoalGainMuscle:
		return MacroDistribution{Protein: 40, Carbs: 40, Fat: 20}, true
	default:
		return MacroDistribution{}, false
	}
}

// Total returns the sum of the three percentages.
func (d MacroDistribution) Total() int {
	return d.Protein + d.Carbs + d.Fat
}

// Balanced returns true if the percentages add up to exactly 100.
func (d MacroDistribution) Balanced() bool {
	return d.Total() == 100
}

// Get returns the percentage for one field.
func (d MacroDistribution) Get(f MacroField) int {
	switch f {
	case MacroProtein:
		return d.Protein
	case MacroCarbs:
		return d.Carbs
	case MacroFat:
		return d.Fat
	default:
		return 0
	}
}

// Validate checks that every field is a percentage between 0 and 100.
func (d MacroDistribution) Validate() error {
	var errs []error

	for _, f := range AllMacroFields {
		if v := d.Get(f); v < 0 || v > 100 {
			errs = append(errs, fmt.Errorf("%s must be between 0 and 100, got %d", f, v))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// MacroUpdate is a partial change to a distribution. Nil fields are left
// untouched when applied.
type MacroUpdate struct {
	Protein *int
	Carbs   *int
	Fat     *int
}

// UpdateField returns an update that changes only one field.
func UpdateField(f MacroField, value int) MacroUpdate {
	var u MacroUpdate
	switch f {
	case MacroProtein:
		u.Protein = &value
	case MacroCarbs:
		u.Carbs = &value
	case MacroFat:
		u.Fat = &value
	}
	return u
}

// UpdateAll returns an update that replaces every field of the distribution.
func UpdateAll(d MacroDistribution) MacroUpdate {
	return MacroUpdate{Protein: &d.Protein, Carbs: &d.Carbs, Fat: &d.Fat}
}

// Empty returns true if the update changes nothing.
func (u MacroUpdate) Empty() bool {
	return u.Protein == nil && u.Carbs == nil && u.Fat == nil
}

// Apply merges the update into d and returns the result.
func (u MacroUpdate) Apply(d MacroDistribution) MacroDistribution {
	if u.Protein != nil {
		d.Protein = *u.Protein
	}
	if u.Carbs != nil {
		d.Carbs = *u.Carbs
	}
	if u.Fat != nil {
		d.Fat = *u.Fat
	}
	return d
}
