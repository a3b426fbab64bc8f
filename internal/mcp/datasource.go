package mcp

import (
	"context"

	"github.com/shashankd123/workout-frontend/internal/generate"
	"github.com/shashankd123/workout-frontend/internal/plan"
	"github.com/shashankd123/workout-frontend/internal/repo"
)

// DataSource abstracts the plan state for MCP tools. Local (in-process
// repository) and HTTPClient (remote via REST API) both satisfy this
// interface.
type DataSource interface {
	Plan(ctx context.Context) (plan.WeeklyPlan, error)
	Day(ctx context.Context, day string) (plan.DayPlan, error)
	UserID(ctx context.Context) (string, error)

	SetDayTitle(ctx context.Context, day, title string) (plan.DayPlan, error)
	AddExercise(ctx context.Context, day string) (plan.DayPlan, error)
	DeleteExercise(ctx context.Context, day string, index int) (plan.DayPlan, error)
	MoveExercise(ctx context.Context, day string, index int, dir plan.Direction) (plan.DayPlan, error)
	SetExerciseField(ctx context.Context, day string, index int, fv plan.FieldValue) (plan.DayPlan, error)
	ToggleExercise(ctx context.Context, day string, index int) (plan.DayPlan, error)
	ResetDay(ctx context.Context, day string) (plan.DayPlan, error)
	ResetCompletion(ctx context.Context, day string) (plan.DayPlan, error)

	AcceptPlan(ctx context.Context, p plan.WeeklyPlan) (plan.WeeklyPlan, error)
	Generate(ctx context.Context, profile generate.UserProfile) (plan.WeeklyPlan, error)
}

// Local serves MCP tools directly from the repository and gateway, for
// running the MCP server in the same process as the plan store.
type Local struct {
	repo    *repo.Repository
	gateway *generate.Gateway
}

var _ DataSource = (*Local)(nil)

// NewLocal creates a Local data source.
func NewLocal(r *repo.Repository, g *generate.Gateway) *Local {
	return &Local{repo: r, gateway: g}
}

func (l *Local) Plan(_ context.Context) (plan.WeeklyPlan, error) {
	return l.repo.Current(), nil
}

func (l *Local) Day(_ context.Context, day string) (plan.DayPlan, error) {
	return l.repo.Current().Day(day), nil
}

func (l *Local) UserID(ctx context.Context) (string, error) {
	return l.repo.UserID(ctx)
}

// mutate applies fn to the current plan, commits, and returns the updated day.
func (l *Local) mutate(ctx context.Context, day string, fn func(plan.WeeklyPlan) plan.WeeklyPlan) (plan.DayPlan, error) {
	next := fn(l.repo.Current())
	l.repo.Commit(ctx, next)
	return next.Day(day), nil
}

func (l *Local) SetDayTitle(ctx context.Context, day, title string) (plan.DayPlan, error) {
	return l.mutate(ctx, day, func(p plan.WeeklyPlan) plan.WeeklyPlan {
		return plan.SetDayTitle(p, day, title)
	})
}

func (l *Local) AddExercise(ctx context.Context, day string) (plan.DayPlan, error) {
	return l.mutate(ctx, day, func(p plan.WeeklyPlan) plan.WeeklyPlan {
		return plan.AddExercise(p, day)
	})
}

func (l *Local) DeleteExercise(ctx context.Context, day string, index int) (plan.DayPlan, error) {
	return l.mutate(ctx, day, func(p plan.WeeklyPlan) plan.WeeklyPlan {
		return plan.DeleteExercise(p, day, index)
	})
}

func (l *Local) MoveExercise(ctx context.Context, day string, index int, dir plan.Direction) (plan.DayPlan, error) {
	return l.mutate(ctx, day, func(p plan.WeeklyPlan) plan.WeeklyPlan {
		return plan.MoveExercise(p, day, index, dir)
	})
}

func (l *Local) SetExerciseField(ctx context.Context, day string, index int, fv plan.FieldValue) (plan.DayPlan, error) {
	return l.mutate(ctx, day, func(p plan.WeeklyPlan) plan.WeeklyPlan {
		return plan.SetExerciseField(p, day, index, fv)
	})
}

func (l *Local) ToggleExercise(ctx context.Context, day string, index int) (plan.DayPlan, error) {
	return l.mutate(ctx, day, func(p plan.WeeklyPlan) plan.WeeklyPlan {
		return plan.ToggleCompletion(p, day, index)
	})
}

func (l *Local) ResetDay(ctx context.Context, day string) (plan.DayPlan, error) {
	return l.mutate(ctx, day, func(p plan.WeeklyPlan) plan.WeeklyPlan {
		return plan.ResetDayToDefault(p, day)
	})
}

func (l *Local) ResetCompletion(ctx context.Context, day string) (plan.DayPlan, error) {
	return l.mutate(ctx, day, func(p plan.WeeklyPlan) plan.WeeklyPlan {
		return plan.ResetCompletionForDay(p, day)
	})
}

func (l *Local) AcceptPlan(ctx context.Context, p plan.WeeklyPlan) (plan.WeeklyPlan, error) {
	next := plan.ReplacePlan(l.repo.Current(), p)
	l.repo.Commit(ctx, next)
	return next, nil
}

func (l *Local) Generate(ctx context.Context, profile generate.UserProfile) (plan.WeeklyPlan, error) {
	userID, err := l.repo.UserID(ctx)
	if err != nil {
		return nil, err
	}
	return l.gateway.Generate(ctx, profile, userID)
}
