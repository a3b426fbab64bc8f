package plan

// Default returns the built-in weekly plan. Monday through Saturday only;
// Sunday is a rest day and has no entry.
//
// Returned plans are independent copies with fresh exercise IDs, so callers
// may mutate the result freely.
func Default() WeeklyPlan {
	return defaultPlan().Normalize()
}

// DefaultDay returns the built-in plan for one day and whether the default
// plan defines that day.
func DefaultDay(day string) (DayPlan, bool) {
	dp, ok := defaultPlan()[day]
	if !ok {
		return DayPlan{}, false
	}
	d := dp.Clone()
	for i := range d.Exercises {
		d.Exercises[i].ID = ""
	}
	return d, true
}

func defaultPlan() WeeklyPlan {
	return WeeklyPlan{
		"Monday": {
			Workout: "Chest",
			Exercises: []Exercise{
				{Name: "Bench Press", Sets: 4, Reps: "8-10"},
				{Name: "Incline Dumbbell Press", Sets: 4, Reps: "8-10"},
				{Name: "Chest Flyes", Sets: 3, Reps: "10-12"},
				{Name: "Push-Ups", Sets: 3, Reps: "to failure"},
				{Name: "Cable Crossovers", Sets: 3, Reps: "12-15"},
			},
		},
		"Tuesday": {
			Workout: "Back",
			Exercises: []Exercise{
				{Name: "Deadlifts", Sets: 4, Reps: "6-8"},
				{Name: "Pull-Ups", Sets: 4, Reps: "to failure"},
				{Name: "Bent-Over Rows", Sets: 4, Reps: "8-10"},
				{Name: "Lat Pulldowns", Sets: 3, Reps: "10-12"},
				{Name: "Face Pulls", Sets: 3, Reps: "12-15"},
			},
		},
		"Wednesday": {
			Workout: "Shoulders",
			Exercises: []Exercise{
				{Name: "Overhead Press", Sets: 4, Reps: "8-10"},
				{Name: "Lateral Raises", Sets: 3, Reps: "12-15"},
				{Name: "Front Raises", Sets: 3, Reps: "12-15"},
				{Name: "Rear Delt Flyes", Sets: 3, Reps: "12-15"},
				{Name: "Shrugs", Sets: 3, Reps: "12-15"},
			},
		},
		"Thursday": {
			Workout: "Arms",
			Exercises: []Exercise{
				{Name: "Barbell Curls", Sets: 4, Reps: "8-10"},
				{Name: "Tricep Dips", Sets: 4, Reps: "to failure"},
				{Name: "Hammer Curls", Sets: 3, Reps: "10-12"},
				{Name: "Tricep Pushdowns", Sets: 3, Reps: "10-12"},
				{Name: "Preacher Curls", Sets: 3, Reps: "12-15"},
			},
		},
		"Friday": {
			Workout: "Core",
			Exercises: []Exercise{
				{Name: "Plank", Sets: 4, Reps: "30-60 seconds"},
				{Name: "Hanging Leg Raises", Sets: 4, Reps: "10-12"},
				{Name: "Russian Twists", Sets: 3, Reps: "15-20 per side"},
				{Name: "Bicycle Crunches", Sets: 3, Reps: "15-20 per side"},
				{Name: "Mountain Climbers", Sets: 3, Reps: "20-30 seconds"},
			},
		},
		"Saturday": {
			Workout: "Legs",
			Exercises: []Exercise{
				{Name: "Squats", Sets: 4, Reps: "8-10"},
				{Name: "Leg Press", Sets: 4, Reps: "10-12"},
				{Name: "Lunges", Sets: 3, Reps: "10-12 per leg"},
				{Name: "Hamstring Curls", Sets: 3, Reps: "12-15"},
				{Name: "Calf Raises", Sets: 4, Reps: "15-20"},
			},
		},
	}
}
