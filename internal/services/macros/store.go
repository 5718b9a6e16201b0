// Package macros holds the session-wide macro distribution shared by the
// calculator and adjustment screens.
package macros

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/macromgr/macromgr/internal/models"
)

// StepSize is how many percentage points one stepper press moves a field.
const StepSize = 5

var (
	// ErrOutOfRange is returned when an update would push a field below 0
	// or above 100.
	ErrOutOfRange = errors.New("macro percentage out of range")

	// ErrUnknownGoal is returned when a preset is requested for a goal that
	// has none.
	ErrUnknownGoal = errors.New("no preset for fitness goal")

	// ErrUnknownField is returned when stepping a field that does not exist.
	ErrUnknownField = errors.New("unknown macro field")
)

// Listener is called with the new distribution after every successful change.
type Listener func(models.MacroDistribution)

// Store is the owned container for the current macro distribution. It is
// created once per session and passed to every screen that needs it.
type Store struct {
	mu        sync.RWMutex
	current   models.MacroDistribution
	listeners map[int]Listener
	nextID    int
	logger    *slog.Logger
}

// NewStore creates a store holding the default 40/30/30 split.
func NewStore() *Store {
	return &Store{
		current:   models.DefaultDistribution(),
		listeners: make(map[int]Listener),
		logger:    slog.Default(),
	}
}

// WithLogger sets the logger mutations are reported to.
func (s *Store) WithLogger(logger *slog.Logger) *Store {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Get returns the current distribution.
func (s *Store) Get() models.MacroDistribution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set merges the non-nil fields of u into the current distribution.
//
// Unlike a plain merge, Set bounds-checks the result: every field must stay
// within 0..100, otherwise nothing changes and an error wrapping
// ErrOutOfRange is returned. This is a deliberate departure from an
// unchecked partial update. The fields are still not required to sum to
// 100; callers use Balanced to report that.
func (s *Store) Set(u models.MacroUpdate) error {
	if u.Empty() {
		return nil
	}

	prev, next, err := s.update(func(models.MacroDistribution) models.MacroUpdate { return u })
	if err != nil {
		return err
	}

	s.logger.Debug("macro distribution updated",
		"from_protein", prev.Protein,
		"from_carbs", prev.Carbs,
		"from_fat", prev.Fat,
		"protein", next.Protein,
		"carbs", next.Carbs,
		"fat", next.Fat,
	)
	return nil
}

// ApplyPreset replaces the distribution with the preset for goal.
func (s *Store) ApplyPreset(goal models.FitnessGoal) error {
	preset, ok := models.PresetFor(goal)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGoal, goal)
	}
	return s.Set(models.UpdateAll(preset))
}

// Step moves one field by delta percentage points, based on its value at
// the time of the call.
func (s *Store) Step(field models.MacroField, delta int) error {
	if !field.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	_, next, err := s.update(func(cur models.MacroDistribution) models.MacroUpdate {
		return models.UpdateField(field, cur.Get(field)+delta)
	})
	if err != nil {
		return err
	}

	s.logger.Debug("macro field stepped",
		"field", string(field),
		"delta", delta,
		"value", next.Get(field),
		"total", next.Total(),
	)
	return nil
}

// update builds an update from the current value and applies it under a
// single lock, then notifies listeners outside the lock.
func (s *Store) update(build func(models.MacroDistribution) models.MacroUpdate) (prev, next models.MacroDistribution, err error) {
	s.mu.Lock()
	prev = s.current
	next = build(prev).Apply(prev)
	if verr := next.Validate(); verr != nil {
		s.mu.Unlock()
		return prev, prev, fmt.Errorf("%w: %w", ErrOutOfRange, verr)
	}
	s.current = next
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}

	return prev, next, nil
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// snapshotListeners copies the listeners so they can be called without the
// lock held. Callers must hold s.mu.
func (s *Store) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
