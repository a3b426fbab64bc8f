package plan

import "strconv"

// Field identifies one editable exercise field.
type Field int

const (
	FieldName Field = iota
	FieldSets
	FieldReps
	FieldCompleted
)

// String returns the JSON field name.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldSets:
		return "sets"
	case FieldReps:
		return "reps"
	case FieldCompleted:
		return "completed"
	}
	return "field(" + strconv.Itoa(int(f)) + ")"
}

// ParseField maps a JSON field name to a Field.
func ParseField(s string) (Field, bool) {
	switch s {
	case "name":
		return FieldName, true
	case "sets":
		return FieldSets, true
	case "reps":
		return FieldReps, true
	case "completed":
		return FieldCompleted, true
	}
	return 0, false
}

// FieldValue carries a value for exactly one editable field.
type FieldValue struct {
	Field     Field
	Name      string
	Sets      int
	Reps      string
	Completed bool
}

// Direction of a move operation.
type Direction int

const (
	MoveUp Direction = iota
	MoveDown
)

// All operations below are pure: they clone the input plan and return the
// modified copy. For operations targeting an existing exercise, an
// out-of-range index, an unknown day, or an unknown exercise ID leaves the
// plan unchanged — indices are ephemeral and a stale one must never corrupt
// state. SetDayTitle and AddExercise create the day entry when it is
// missing.
//
// Index-based entry points resolve the exercise's stable ID first and then
// operate on the ID, so the two forms cannot diverge.

// SetDayTitle replaces the day's workout label. An empty title is stored
// as-is.
func SetDayTitle(p WeeklyPlan, day, title string) WeeklyPlan {
	out := p.Clone()
	dp := out.Day(day)
	dp.Workout = title
	out[day] = dp
	return out
}

// ExerciseID returns the stable ID of the exercise at index, or "" if the
// index is out of range.
func ExerciseID(p WeeklyPlan, day string, index int) string {
	dp, ok := p[day]
	if !ok || index < 0 || index >= len(dp.Exercises) {
		return ""
	}
	return dp.Exercises[index].ID
}

// SetExerciseField replaces one field of the exercise at index.
func SetExerciseField(p WeeklyPlan, day string, index int, v FieldValue) WeeklyPlan {
	return SetExerciseFieldByID(p, day, ExerciseID(p, day, index), v)
}

// SetExerciseFieldByID replaces one field of the exercise with the given ID.
func SetExerciseFieldByID(p WeeklyPlan, day, id string, v FieldValue) WeeklyPlan {
	return updateExercise(p, day, id, func(e *Exercise) {
		switch v.Field {
		case FieldName:
			e.Name = v.Name
		case FieldSets:
			e.Sets = v.Sets
		case FieldReps:
			e.Reps = v.Reps
		case FieldCompleted:
			e.Completed = v.Completed
		}
	})
}

// ToggleCompletion flips the completed flag of the exercise at index.
func ToggleCompletion(p WeeklyPlan, day string, index int) WeeklyPlan {
	return ToggleCompletionByID(p, day, ExerciseID(p, day, index))
}

// ToggleCompletionByID flips the completed flag of the exercise with the
// given ID.
func ToggleCompletionByID(p WeeklyPlan, day, id string) WeeklyPlan {
	return updateExercise(p, day, id, func(e *Exercise) {
		e.Completed = !e.Completed
	})
}

// DeleteExercise removes the exercise at index; later exercises shift down
// by one. Deleting the last exercise leaves an empty day.
func DeleteExercise(p WeeklyPlan, day string, index int) WeeklyPlan {
	return DeleteExerciseByID(p, day, ExerciseID(p, day, index))
}

// DeleteExerciseByID removes the exercise with the given ID.
func DeleteExerciseByID(p WeeklyPlan, day, id string) WeeklyPlan {
	i, ok := indexOf(p, day, id)
	if !ok {
		return p.Clone()
	}
	out := p.Clone()
	dp := out[day]
	dp.Exercises = append(dp.Exercises[:i], dp.Exercises[i+1:]...)
	out[day] = dp
	return out
}

// AddExercise appends the default exercise to the end of the day's sequence.
func AddExercise(p WeeklyPlan, day string) WeeklyPlan {
	out := p.Clone()
	dp := out.Day(day)
	dp.Exercises = append(dp.Exercises, NewExercise())
	out[day] = dp
	return out
}

// MoveExercise swaps the exercise at index with its neighbor in the given
// direction. Moving the first exercise up or the last down is a no-op.
func MoveExercise(p WeeklyPlan, day string, index int, dir Direction) WeeklyPlan {
	return MoveExerciseByID(p, day, ExerciseID(p, day, index), dir)
}

// MoveExerciseByID swaps the exercise with the given ID with its neighbor.
func MoveExerciseByID(p WeeklyPlan, day, id string, dir Direction) WeeklyPlan {
	i, ok := indexOf(p, day, id)
	if !ok {
		return p.Clone()
	}
	j := i - 1
	if dir == MoveDown {
		j = i + 1
	}
	out := p.Clone()
	dp := out[day]
	if j < 0 || j >= len(dp.Exercises) {
		return out
	}
	dp.Exercises[i], dp.Exercises[j] = dp.Exercises[j], dp.Exercises[i]
	out[day] = dp
	return out
}

// ResetDayToDefault replaces the day wholesale with the built-in default,
// discarding edits and completion state. Days the default plan does not
// define (Sunday) reset to an empty rest day.
func ResetDayToDefault(p WeeklyPlan, day string) WeeklyPlan {
	out := p.Clone()
	dp, ok := DefaultDay(day)
	if !ok {
		dp = DayPlan{Exercises: []Exercise{}}
	}
	out[day] = dp
	return out.Normalize()
}

// ResetCompletionForDay clears the completed flag on every exercise of the
// day; all other fields are untouched.
func ResetCompletionForDay(p WeeklyPlan, day string) WeeklyPlan {
	out := p.Clone()
	dp, ok := out[day]
	if !ok {
		return out
	}
	for i := range dp.Exercises {
		dp.Exercises[i].Completed = false
	}
	out[day] = dp
	return out
}

// ReplacePlan discards the current plan in favor of newPlan, normalizing
// exercise IDs. Used when the user accepts a generated plan.
func ReplacePlan(_ WeeklyPlan, newPlan WeeklyPlan) WeeklyPlan {
	return newPlan.Normalize()
}

func indexOf(p WeeklyPlan, day, id string) (int, bool) {
	if id == "" {
		return 0, false
	}
	dp, ok := p[day]
	if !ok {
		return 0, false
	}
	for i, e := range dp.Exercises {
		if e.ID == id {
			return i, true
		}
	}
	return 0, false
}

func updateExercise(p WeeklyPlan, day, id string, fn func(*Exercise)) WeeklyPlan {
	i, ok := indexOf(p, day, id)
	if !ok {
		return p.Clone()
	}
	out := p.Clone()
	dp := out[day]
	fn(&dp.Exercises[i])
	out[day] = dp
	return out
}
