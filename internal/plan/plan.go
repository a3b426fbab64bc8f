// Package plan holds the weekly workout plan model and the pure mutation
// operations applied to it. Values are immutable from the caller's point of
// view: every operation returns a new plan and leaves its input untouched.
package plan

import (
	"github.com/google/uuid"
)

// Exercise is one movement prescription within a day.
// Reps is an opaque string: either a numeric token ("10", "8-12") or free
// text ("to failure", "30-60 seconds"); display layers may distinguish the
// two, storage does not.
type Exercise struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Sets      int    `json:"sets"`
	Reps      string `json:"reps"`
	Completed bool   `json:"completed"`
}

// DayPlan is one weekday's session. An empty Workout with no exercises is a
// rest day in display terms.
type DayPlan struct {
	Workout   string     `json:"workout"`
	Exercises []Exercise `json:"exercises"`
}

// WeeklyPlan maps full day names ("Monday" .. "Sunday") to day plans.
// Map iteration order is irrelevant; DayOrder gives the display order.
type WeeklyPlan map[string]DayPlan

// DayOrder is the canonical display order for plan days.
var DayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ValidDay reports whether name is one of the seven full weekday names.
func ValidDay(name string) bool {
	for _, d := range DayOrder {
		if d == name {
			return true
		}
	}
	return false
}

// NewExercise returns the default exercise appended by "add exercise".
func NewExercise() Exercise {
	return Exercise{
		ID:   uuid.NewString(),
		Name: "New Exercise",
		Sets: 3,
		Reps: "10",
	}
}

// Clone returns a deep copy of the plan. Mutation operations clone before
// touching anything so callers can keep references to the input.
func (p WeeklyPlan) Clone() WeeklyPlan {
	out := make(WeeklyPlan, len(p))
	for day, dp := range p {
		out[day] = dp.Clone()
	}
	return out
}

// Clone returns a deep copy of the day plan.
func (d DayPlan) Clone() DayPlan {
	exercises := make([]Exercise, len(d.Exercises))
	copy(exercises, d.Exercises)
	return DayPlan{Workout: d.Workout, Exercises: exercises}
}

// Day returns the plan for the named day. Days absent from the plan (the
// default plan has no Sunday) come back as an empty rest day.
func (p WeeklyPlan) Day(name string) DayPlan {
	if dp, ok := p[name]; ok {
		return dp.Clone()
	}
	return DayPlan{Exercises: []Exercise{}}
}

// Normalize assigns a fresh ID to every exercise that lacks one. Plans
// loaded from storage written by older versions, and plans produced by the
// generation service, arrive without IDs.
func (p WeeklyPlan) Normalize() WeeklyPlan {
	out := p.Clone()
	for day, dp := range out {
		for i := range dp.Exercises {
			if dp.Exercises[i].ID == "" {
				dp.Exercises[i].ID = uuid.NewString()
			}
		}
		out[day] = dp
	}
	return out
}

// Equal reports deep equality ignoring exercise IDs. Used by tests and by
// the import utility to detect no-op writes.
func Equal(a, b WeeklyPlan) bool {
	if len(a) != len(b) {
		return false
	}
	for day, da := range a {
		db, ok := b[day]
		if !ok || da.Workout != db.Workout || len(da.Exercises) != len(db.Exercises) {
			return false
		}
		for i, ea := range da.Exercises {
			eb := db.Exercises[i]
			if ea.Name != eb.Name || ea.Sets != eb.Sets || ea.Reps != eb.Reps || ea.Completed != eb.Completed {
				return false
			}
		}
	}
	return true
}
