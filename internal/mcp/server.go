// Package mcp exposes the planning engine to MCP clients so an assistant can
// plan mesocycles, log sets, and complete workouts conversationally.
package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/mesoforge/internal/models"
	"github.com/meltforce/mesoforge/internal/plan"
	"github.com/meltforce/mesoforge/internal/storage"
)

// Store is the document access the MCP tools need beyond the integrator.
// Both the Postgres DB and the local SQLite store satisfy it.
type Store interface {
	plan.Store
	ListMesocycles(ctx context.Context) ([]storage.MesocycleSummary, error)
}

// Compile-time checks.
var (
	_ Store = (*storage.DB)(nil)
	_ Store = (*storage.LocalStore)(nil)
)

// New creates an MCP server with all tools and resources registered.
func New(store Store, integrator *plan.Integrator, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("MesoForge", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("MesoForge mesocycle planner. Plan multi-week resistance-training blocks from split templates, log completed sets with feedback, and complete workouts to propagate progression targets into the following week."),
	)

	h := &handlers{store: store, integrator: integrator, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolListSplits, Handler: h.listSplits},
		server.ServerTool{Tool: toolGetIntensity, Handler: h.getIntensity},
		server.ServerTool{Tool: toolPlanMesocycle, Handler: h.planMesocycle},
		server.ServerTool{Tool: toolListMesocycles, Handler: h.listMesocycles},
		server.ServerTool{Tool: toolGetMesocycle, Handler: h.getMesocycle},
		server.ServerTool{Tool: toolLogSet, Handler: h.logSet},
		server.ServerTool{Tool: toolUpdateTargets, Handler: h.updateTargets},
		server.ServerTool{Tool: toolRecordFeedback, Handler: h.recordFeedback},
		server.ServerTool{Tool: toolCompleteWorkout, Handler: h.completeWorkout},
	)

	s.AddResources(
		server.ServerResource{Resource: resSplitCatalog, Handler: h.splitCatalog},
		server.ServerResource{Resource: resIntensityTable, Handler: h.intensityTable},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	store      Store
	integrator *plan.Integrator
	log        *slog.Logger
}

// --- Resource definitions ---

var resSplitCatalog = mcp.NewResource(
	"mesoforge://split_catalog",
	"Split Template Catalog",
	mcp.WithResourceDescription("All named weekly split templates with their workouts, weekdays, and exercises"),
	mcp.WithMIMEType("application/json"),
)

var resIntensityTable = mcp.NewResource(
	"mesoforge://weekly_intensity",
	"Weekly Intensity Table",
	mcp.WithResourceDescription("Target effort (reps in reserve) band per mesocycle week, including the deload band"),
	mcp.WithMIMEType("application/json"),
)

// coordFromRequest reads the shared document coordinates off a tool request.
func coordFromRequest(req mcp.CallToolRequest) (string, plan.SetCoordinate, error) {
	mesoID, err := req.RequireString("mesocycle_id")
	if err != nil {
		return "", plan.SetCoordinate{}, err
	}
	weekKey, err := req.RequireString("week_key")
	if err != nil {
		return "", plan.SetCoordinate{}, err
	}
	return mesoID, plan.SetCoordinate{
		WeekKey:       weekKey,
		WorkoutIndex:  req.GetInt("workout_index", 0),
		ExerciseIndex: req.GetInt("exercise_index", 0),
		SetIndex:      req.GetInt("set_index", 0),
	}, nil
}

// feelingOrError validates the survey answer enum.
func feelingOrError(s string) (models.Feeling, bool) {
	return models.ParseFeeling(s)
}
