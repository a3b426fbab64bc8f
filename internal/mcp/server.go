package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("WorkoutPlanner", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Personal weekly workout planner. Read the plan, mark exercises complete, edit and reorder exercises, reset days, and request an AI-generated plan from a fitness profile. Generated plans are candidates until accepted with accept_plan."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetPlan, Handler: h.getPlan},
		server.ServerTool{Tool: toolGetDay, Handler: h.getDay},
		server.ServerTool{Tool: toolSetDayTitle, Handler: h.setDayTitle},
		server.ServerTool{Tool: toolAddExercise, Handler: h.addExercise},
		server.ServerTool{Tool: toolDeleteExercise, Handler: h.deleteExercise},
		server.ServerTool{Tool: toolMoveExercise, Handler: h.moveExercise},
		server.ServerTool{Tool: toolSetExerciseField, Handler: h.setExerciseField},
		server.ServerTool{Tool: toolToggleExercise, Handler: h.toggleExercise},
		server.ServerTool{Tool: toolResetDay, Handler: h.resetDay},
		server.ServerTool{Tool: toolResetCompletion, Handler: h.resetCompletion},
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolAcceptPlan, Handler: h.acceptPlan},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWeeklyPlan, Handler: h.weeklyPlan},
		server.ServerResource{Resource: resToday, Handler: h.today},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resWeeklyPlan = mcp.NewResource(
	"workout://weekly_plan",
	"Weekly Plan",
	mcp.WithResourceDescription("The full weekly workout plan, days in canonical Monday-Sunday order"),
	mcp.WithMIMEType("application/json"),
)

var resToday = mcp.NewResource(
	"workout://today",
	"Today's Workout",
	mcp.WithResourceDescription("The workout scheduled for the current weekday, with completion state"),
	mcp.WithMIMEType("application/json"),
)
