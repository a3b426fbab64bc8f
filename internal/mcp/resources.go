package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shashankd123/workout-frontend/internal/plan"
)

func (h *handlers) weeklyPlan(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	p, err := h.ds.Plan(ctx)
	if err != nil {
		return nil, err
	}

	// Emit days in canonical order; map order is meaningless to a reader.
	days := make([]map[string]any, 0, len(plan.DayOrder))
	for _, day := range plan.DayOrder {
		dp := p.Day(day)
		days = append(days, map[string]any{
			"day":       day,
			"workout":   dp.Workout,
			"exercises": dp.Exercises,
		})
	}

	data, err := json.Marshal(days)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) today(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	day := time.Now().Weekday().String()
	dp, err := h.ds.Day(ctx, day)
	if err != nil {
		return nil, err
	}

	remaining := 0
	for _, e := range dp.Exercises {
		if !e.Completed {
			remaining++
		}
	}

	data, err := json.Marshal(map[string]any{
		"day":       day,
		"workout":   dp.Workout,
		"exercises": dp.Exercises,
		"remaining": remaining,
		"rest_day":  len(dp.Exercises) == 0,
	})
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
