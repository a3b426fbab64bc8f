package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shashankd123/workout-frontend/internal/generate"
	"github.com/shashankd123/workout-frontend/internal/plan"
)

// requireDay extracts and validates the day parameter.
func requireDay(req mcp.CallToolRequest) (string, error) {
	day, err := req.RequireString("day")
	if err != nil {
		return "", fmt.Errorf("day parameter is required")
	}
	if !plan.ValidDay(day) {
		return "", fmt.Errorf("unknown day %q: use full names like Monday", day)
	}
	return day, nil
}

// --- Tool definitions ---

var dayEnum = mcp.Enum("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday")

var toolGetPlan = mcp.NewTool("get_plan",
	mcp.WithDescription("Retrieve the full weekly workout plan: every day's workout title and exercise list with completion state."),
)

var toolGetDay = mcp.NewTool("get_day",
	mcp.WithDescription("Retrieve one day's workout. Days without a session come back as an empty rest day."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Full day name"), dayEnum),
)

var toolSetDayTitle = mcp.NewTool("set_day_title",
	mcp.WithDescription("Rename a day's workout (e.g. 'Chest' -> 'Push Day'). An empty title is allowed."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Full day name"), dayEnum),
	mcp.WithString("title", mcp.Required(), mcp.Description("New workout title")),
)

var toolAddExercise = mcp.NewTool("add_exercise",
	mcp.WithDescription("Append a new default exercise (New Exercise, 3 sets of 10) to the end of a day. Edit its fields afterwards with set_exercise_field."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Full day name"), dayEnum),
)

var toolDeleteExercise = mcp.NewTool("delete_exercise",
	mcp.WithDescription("Delete the exercise at the given position. Out-of-range positions are ignored."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Full day name"), dayEnum),
	mcp.WithNumber("index", mcp.Required(), mcp.Description("Zero-based exercise position")),
)

var toolMoveExercise = mcp.NewTool("move_exercise",
	mcp.WithDescription("Move the exercise at the given position one step up or down. Moving past either end is a no-op."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Full day name"), dayEnum),
	mcp.WithNumber("index", mcp.Required(), mcp.Description("Zero-based exercise position")),
	mcp.WithString("direction", mcp.Required(), mcp.Description("Move direction"), mcp.Enum("up", "down")),
)

var toolSetExerciseField = mcp.NewTool("set_exercise_field",
	mcp.WithDescription("Edit one field of one exercise. For 'sets' pass an integer value; for 'completed' pass true/false; 'name' and 'reps' take text (reps may be a range like '8-12' or free text like 'to failure')."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Full day name"), dayEnum),
	mcp.WithNumber("index", mcp.Required(), mcp.Description("Zero-based exercise position")),
	mcp.WithString("field", mcp.Required(), mcp.Description("Field to edit"), mcp.Enum("name", "sets", "reps", "completed")),
	mcp.WithString("value", mcp.Required(), mcp.Description("New value, as text (e.g. '4', 'true', 'Incline Press')")),
)

var toolToggleExercise = mcp.NewTool("toggle_exercise",
	mcp.WithDescription("Flip the completion state of the exercise at the given position."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Full day name"), dayEnum),
	mcp.WithNumber("index", mcp.Required(), mcp.Description("Zero-based exercise position")),
)

var toolResetDay = mcp.NewTool("reset_day",
	mcp.WithDescription("Replace a day wholesale with the built-in default plan for that day, discarding edits and completion state. Days without a built-in default (Sunday) reset to an empty rest day."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Full day name"), dayEnum),
)

var toolResetCompletion = mcp.NewTool("reset_completion",
	mcp.WithDescription("Mark every exercise of a day as not completed, leaving names, sets, and reps untouched."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Full day name"), dayEnum),
)

var toolGeneratePlan = mcp.NewTool("generate_plan",
	mcp.WithDescription("Request an AI-generated weekly plan from a fitness profile. May take up to two minutes when the generation server is cold. Returns a candidate plan; the current plan is untouched until accept_plan is called."),
	mcp.WithString("name", mcp.Required(), mcp.Description("User's name")),
	mcp.WithString("gender", mcp.Required(), mcp.Description("Gender"), mcp.Enum("Male", "Female", "Other")),
	mcp.WithNumber("age", mcp.Required(), mcp.Description("Age in years (16-90)")),
	mcp.WithNumber("height", mcp.Required(), mcp.Description("Height in cm (140-220)")),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight in kg (40-200)")),
	mcp.WithNumber("bfp", mcp.Description("Body fat percentage (3-50), optional")),
	mcp.WithString("experience_level", mcp.Required(), mcp.Description("Training experience"), mcp.Enum("Beginner", "Intermediate", "Advanced")),
	mcp.WithString("fitness_goal", mcp.Required(), mcp.Description("Primary goal"), mcp.Enum("Weight Loss", "Muscle Gain", "Strength", "Endurance", "General Fitness", "Athletic Performance")),
	mcp.WithString("equipment_access", mcp.Required(), mcp.Description("Available equipment"), mcp.Enum("No Equipment", "Basic Home Gym", "Full Gym Access")),
	mcp.WithString("workout_type", mcp.Required(), mcp.Description("Preferred workout type"), mcp.Enum("Strength Training", "Cardio", "HIIT")),
	mcp.WithString("time_available", mcp.Required(), mcp.Description("Session length"), mcp.Enum("Less than 30 minutes", "30-45 minutes", "45-60 minutes", "60-90 minutes", "More than 90 minutes")),
	mcp.WithString("injuries", mcp.Description("Injuries or limitations, optional free text")),
	mcp.WithString("personal_preference", mcp.Description("Personal preferences for the plan, optional free text")),
)

var toolAcceptPlan = mcp.NewTool("accept_plan",
	mcp.WithDescription("Replace the current weekly plan with the given plan JSON (as returned by generate_plan). This commits and persists the plan."),
	mcp.WithString("plan_json", mcp.Required(), mcp.Description("Weekly plan as JSON: day names mapped to {workout, exercises}")),
)

// --- Tool handlers ---

func planResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := h.ds.Plan(ctx)
	if err != nil {
		h.log.Error("mcp get_plan", "error", err)
		return mcp.NewToolResultError("plan read failed: " + err.Error()), nil
	}
	return planResult(map[string]any{"order": plan.DayOrder, "plan": p})
}

func (h *handlers) getDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := requireDay(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dp, err := h.ds.Day(ctx, day)
	if err != nil {
		h.log.Error("mcp get_day", "error", err)
		return mcp.NewToolResultError("day read failed: " + err.Error()), nil
	}
	return planResult(dp)
}

// dayMutation runs a DataSource mutation and returns the updated day.
func (h *handlers) dayMutation(tool string, dp plan.DayPlan, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		h.log.Error("mcp "+tool, "error", err)
		return mcp.NewToolResultError(tool + " failed: " + err.Error()), nil
	}
	return planResult(dp)
}

func (h *handlers) setDayTitle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := requireDay(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title parameter is required"), nil
	}
	dp, err := h.ds.SetDayTitle(ctx, day, title)
	return h.dayMutation("set_day_title", dp, err)
}

func (h *handlers) addExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := requireDay(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dp, err := h.ds.AddExercise(ctx, day)
	return h.dayMutation("add_exercise", dp, err)
}

func (h *handlers) deleteExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := requireDay(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	index, err := req.RequireInt("index")
	if err != nil {
		return mcp.NewToolResultError("index parameter is required"), nil
	}
	dp, err := h.ds.DeleteExercise(ctx, day, index)
	return h.dayMutation("delete_exercise", dp, err)
}

func (h *handlers) moveExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := requireDay(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	index, err := req.RequireInt("index")
	if err != nil {
		return mcp.NewToolResultError("index parameter is required"), nil
	}
	var dir plan.Direction
	switch req.GetString("direction", "") {
	case "up":
		dir = plan.MoveUp
	case "down":
		dir = plan.MoveDown
	default:
		return mcp.NewToolResultError("direction must be up or down"), nil
	}
	dp, err := h.ds.MoveExercise(ctx, day, index, dir)
	return h.dayMutation("move_exercise", dp, err)
}

func (h *handlers) setExerciseField(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := requireDay(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	index, err := req.RequireInt("index")
	if err != nil {
		return mcp.NewToolResultError("index parameter is required"), nil
	}
	fieldName, err := req.RequireString("field")
	if err != nil {
		return mcp.NewToolResultError("field parameter is required"), nil
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value parameter is required"), nil
	}

	field, ok := plan.ParseField(fieldName)
	if !ok {
		return mcp.NewToolResultError("unknown field: " + fieldName), nil
	}
	fv := plan.FieldValue{Field: field}
	switch field {
	case plan.FieldName:
		fv.Name = value
	case plan.FieldReps:
		fv.Reps = value
	case plan.FieldSets:
		if _, err := fmt.Sscanf(value, "%d", &fv.Sets); err != nil || fv.Sets < 0 {
			return mcp.NewToolResultError("sets must be a non-negative integer"), nil
		}
	case plan.FieldCompleted:
		switch value {
		case "true":
			fv.Completed = true
		case "false":
			fv.Completed = false
		default:
			return mcp.NewToolResultError("completed must be true or false"), nil
		}
	}

	dp, err := h.ds.SetExerciseField(ctx, day, index, fv)
	return h.dayMutation("set_exercise_field", dp, err)
}

func (h *handlers) toggleExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := requireDay(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	index, err := req.RequireInt("index")
	if err != nil {
		return mcp.NewToolResultError("index parameter is required"), nil
	}
	dp, err := h.ds.ToggleExercise(ctx, day, index)
	return h.dayMutation("toggle_exercise", dp, err)
}

func (h *handlers) resetDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := requireDay(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dp, err := h.ds.ResetDay(ctx, day)
	return h.dayMutation("reset_day", dp, err)
}

func (h *handlers) resetCompletion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := requireDay(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dp, err := h.ds.ResetCompletion(ctx, day)
	return h.dayMutation("reset_completion", dp, err)
}

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile := generate.UserProfile{
		Name:               req.GetString("name", ""),
		Gender:             req.GetString("gender", ""),
		Age:                req.GetInt("age", 0),
		HeightCm:           req.GetInt("height", 0),
		WeightKg:           req.GetInt("weight", 0),
		BodyFatPct:         req.GetFloat("bfp", 0),
		ExperienceLevel:    req.GetString("experience_level", ""),
		FitnessGoal:        req.GetString("fitness_goal", ""),
		EquipmentAccess:    req.GetString("equipment_access", ""),
		PreferredWorkouts:  req.GetString("workout_type", ""),
		TimeAvailable:      req.GetString("time_available", ""),
		Injuries:           req.GetString("injuries", ""),
		PersonalPreference: req.GetString("personal_preference", ""),
	}

	candidate, err := h.ds.Generate(ctx, profile)
	if err != nil {
		h.log.Error("mcp generate_plan", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	return planResult(map[string]any{
		"candidate": candidate,
		"note":      "This plan is a candidate. Call accept_plan with this JSON to make it the current plan.",
	})
}

func (h *handlers) acceptPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("plan_json")
	if err != nil {
		return mcp.NewToolResultError("plan_json parameter is required"), nil
	}

	var p plan.WeeklyPlan
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return mcp.NewToolResultError("invalid plan JSON: " + err.Error()), nil
	}
	for day := range p {
		if !plan.ValidDay(day) {
			return mcp.NewToolResultError("unknown day in plan: " + day), nil
		}
	}

	committed, err := h.ds.AcceptPlan(ctx, p)
	if err != nil {
		h.log.Error("mcp accept_plan", "error", err)
		return mcp.NewToolResultError("accept failed: " + err.Error()), nil
	}
	return planResult(committed)
}
