package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/mesoforge/internal/models"
	"github.com/meltforce/mesoforge/internal/plan"
	"github.com/meltforce/mesoforge/internal/templates"
)

// --- Tool definitions ---

var toolListSplits = mcp.NewTool("list_split_templates",
	mcp.WithDescription("List the named weekly split templates available for planning (e.g. Upper/Lower, Push/Pull/Legs), with their workouts, weekdays, and exercises."),
)

var toolGetIntensity = mcp.NewTool("get_weekly_intensity",
	mcp.WithDescription("Get the weekly intensity table: the target effort band (reps in reserve) for each mesocycle week, including the deload band."),
)

var toolPlanMesocycle = mcp.NewTool("plan_mesocycle",
	mcp.WithDescription("Generate and save a new multi-week mesocycle from a split template. Returns the full dated schedule with pre-materialized sets."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Display name for the mesocycle")),
	mcp.WithString("split", mcp.Required(), mcp.Description("Split template name, as returned by list_split_templates")),
	mcp.WithString("start_date", mcp.Required(), mcp.Description("Start date (YYYY-MM-DD)")),
	mcp.WithNumber("week_count", mcp.Required(), mcp.Description("Number of weeks (1-12)")),
	mcp.WithBoolean("include_deload", mcp.Description("Reserve the final week as a deload (no generated workouts). Defaults to false.")),
	mcp.WithNumber("progression_pct", mcp.Description("Weekly progression percentage (0-20). Defaults to 5.")),
)

var toolListMesocycles = mcp.NewTool("list_mesocycles",
	mcp.WithDescription("List stored mesocycles with name, version, and last update time."),
)

var toolGetMesocycle = mcp.NewTool("get_mesocycle",
	mcp.WithDescription("Fetch a full mesocycle document by ID, including every week's workouts, exercises, and sets."),
	mcp.WithString("mesocycle_id", mcp.Required(), mcp.Description("Mesocycle ID")),
)

var toolLogSet = mcp.NewTool("log_set",
	mcp.WithDescription("Record a completed set at (week_key, workout_index, exercise_index, set_index). Returns the exercise status and whether the weight-feeling survey should be shown."),
	mcp.WithString("mesocycle_id", mcp.Required(), mcp.Description("Mesocycle ID")),
	mcp.WithString("week_key", mcp.Required(), mcp.Description("Week key, e.g. week2")),
	mcp.WithNumber("workout_index", mcp.Description("Index into the week's workouts. Defaults to 0.")),
	mcp.WithNumber("exercise_index", mcp.Description("Index into the workout's exercises. Defaults to 0.")),
	mcp.WithNumber("set_index", mcp.Description("Index into the exercise's sets. Defaults to 0.")),
	mcp.WithString("completed_weight", mcp.Description("Weight used, free-form (e.g. '100')")),
	mcp.WithString("completed_reps", mcp.Description("Reps performed, free-form (e.g. '8')")),
)

var toolUpdateTargets = mcp.NewTool("update_exercise_targets",
	mcp.WithDescription("Set the working weight/reps targets for an exercise ahead of performing it. At least one of weight or reps is required; empty values leave the current target alone."),
	mcp.WithString("mesocycle_id", mcp.Required(), mcp.Description("Mesocycle ID")),
	mcp.WithString("week_key", mcp.Required(), mcp.Description("Week key, e.g. week2")),
	mcp.WithNumber("workout_index", mcp.Description("Index into the week's workouts. Defaults to 0.")),
	mcp.WithNumber("exercise_index", mcp.Description("Index into the workout's exercises. Defaults to 0.")),
	mcp.WithString("weight", mcp.Description("Working weight, free-form (e.g. '100')")),
	mcp.WithString("reps", mcp.Description("Working reps, free-form (e.g. '8')")),
)

var toolRecordFeedback = mcp.NewTool("record_feedback",
	mcp.WithDescription("Record the post-exercise survey for an exercise."),
	mcp.WithString("mesocycle_id", mcp.Required(), mcp.Description("Mesocycle ID")),
	mcp.WithString("week_key", mcp.Required(), mcp.Description("Week key, e.g. week2")),
	mcp.WithNumber("workout_index", mcp.Description("Index into the week's workouts. Defaults to 0.")),
	mcp.WithNumber("exercise_index", mcp.Description("Index into the workout's exercises. Defaults to 0.")),
	mcp.WithString("weight_feeling", mcp.Required(), mcp.Description("Survey answer"), mcp.Enum("too_light", "just_right", "too_heavy", "extremely_heavy")),
	mcp.WithString("muscle_activation", mcp.Description("How well the target muscles were felt working")),
	mcp.WithString("performance_rating", mcp.Description("Self-rated performance for the exercise")),
	mcp.WithString("notes", mcp.Description("Free-text notes")),
)

var toolCompleteWorkout = mcp.NewTool("complete_workout",
	mcp.WithDescription("Mark a workout complete and propagate suggested weight/rep targets into the matched workout of the following week. A no-op propagation (final week) is success."),
	mcp.WithString("mesocycle_id", mcp.Required(), mcp.Description("Mesocycle ID")),
	mcp.WithString("week_key", mcp.Required(), mcp.Description("Week key, e.g. week2")),
	mcp.WithNumber("workout_index", mcp.Description("Index into the week's workouts. Defaults to 0.")),
	mcp.WithString("difficulty", mcp.Description("Workout-level difficulty feedback"), mcp.Enum("too_easy", "just_right", "too_hard")),
)

// --- Tool handlers ---

func (h *handlers) listSplits(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(templates.Splits)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getIntensity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(templates.Bands())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) planMesocycle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	splitName, err := req.RequireString("split")
	if err != nil {
		return mcp.NewToolResultError("split parameter is required"), nil
	}
	startStr, err := req.RequireString("start_date")
	if err != nil {
		return mcp.NewToolResultError("start_date parameter is required"), nil
	}
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return mcp.NewToolResultError("start_date must be YYYY-MM-DD"), nil
	}
	split, err := templates.SplitByName(splitName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	m, err := plan.NewMesocycle(plan.GenerateParams{
		Name:           name,
		Split:          split,
		StartDate:      start,
		WeekCount:      req.GetInt("week_count", 4),
		IncludeDeload:  req.GetBool("include_deload", false),
		ProgressionPct: req.GetFloat("progression_pct", 5),
	}, h.log)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := h.store.SaveMesocycle(ctx, m); err != nil {
		return mcp.NewToolResultError("save failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(m)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listMesocycles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := h.store.ListMesocycles(ctx)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	result, err := mcp.NewToolResultJSON(list)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getMesocycle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("mesocycle_id")
	if err != nil {
		return mcp.NewToolResultError("mesocycle_id parameter is required"), nil
	}
	m, err := h.store.LoadMesocycle(ctx, id)
	if err != nil {
		return mcp.NewToolResultError("load failed: " + err.Error()), nil
	}
	result, err := mcp.NewToolResultJSON(m)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) logSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mesoID, coord, err := coordFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := h.integrator.LogSet(ctx, mesoID, coord,
		req.GetString("completed_weight", ""), req.GetString("completed_reps", ""))
	if err != nil {
		return mcp.NewToolResultError("log set failed: " + err.Error()), nil
	}
	result, err := mcp.NewToolResultJSON(res)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) updateTargets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mesoID, coord, err := coordFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	err = h.integrator.UpdateTargets(ctx, mesoID, coord,
		req.GetString("weight", ""), req.GetString("reps", ""))
	if err != nil {
		return mcp.NewToolResultError("update targets failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText("targets updated"), nil
}

func (h *handlers) recordFeedback(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mesoID, coord, err := coordFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	feelingStr, err := req.RequireString("weight_feeling")
	if err != nil {
		return mcp.NewToolResultError("weight_feeling parameter is required"), nil
	}
	feeling, ok := feelingOrError(feelingStr)
	if !ok {
		return mcp.NewToolResultError("weight_feeling must be one of too_light, just_right, too_heavy, extremely_heavy"), nil
	}
	fb := models.FeedbackRecord{
		WeightFeeling:     feeling,
		MuscleActivation:  req.GetString("muscle_activation", ""),
		PerformanceRating: req.GetString("performance_rating", ""),
		Notes:             req.GetString("notes", ""),
	}
	if err := h.integrator.RecordFeedback(ctx, mesoID, coord, fb); err != nil {
		return mcp.NewToolResultError("record feedback failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText("feedback recorded"), nil
}

func (h *handlers) completeWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mesoID, err := req.RequireString("mesocycle_id")
	if err != nil {
		return mcp.NewToolResultError("mesocycle_id parameter is required"), nil
	}
	weekKey, err := req.RequireString("week_key")
	if err != nil {
		return mcp.NewToolResultError("week_key parameter is required"), nil
	}
	res, err := h.integrator.CompleteWorkout(ctx, mesoID, weekKey,
		req.GetInt("workout_index", 0), req.GetString("difficulty", ""))
	if err != nil {
		return mcp.NewToolResultError("complete workout failed: " + err.Error()), nil
	}
	result, err := mcp.NewToolResultJSON(res)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// --- Resource handlers ---

func (h *handlers) splitCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(templates.Splits)
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

func (h *handlers) intensityTable(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(templates.Bands())
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
