package plan

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/mesoforge/internal/models"
	"github.com/meltforce/mesoforge/internal/templates"
)

// GenerateParams are the inputs for planning a new mesocycle.
type GenerateParams struct {
	Name           string
	Split          models.SplitTemplate
	StartDate      time.Time
	WeekCount      int
	IncludeDeload  bool
	ProgressionPct float64
}

func (p GenerateParams) validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(p.Split.Workouts) == 0 {
		return fmt.Errorf("split template has no workouts")
	}
	if p.WeekCount < 1 || p.WeekCount > 12 {
		return fmt.Errorf("week count %d out of range 1-12", p.WeekCount)
	}
	if p.ProgressionPct < 0 || p.ProgressionPct > 20 {
		return fmt.Errorf("progression pct %.1f out of range 0-20", p.ProgressionPct)
	}
	return nil
}

// NewMesocycle validates params and builds a complete mesocycle document with
// its full generated schedule.
func NewMesocycle(p GenerateParams, log *slog.Logger) (*models.Mesocycle, error) {
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid mesocycle params: %w", err)
	}
	start := truncateDay(p.StartDate)
	m := &models.Mesocycle{
		ID:                   uuid.NewString(),
		Name:                 p.Name,
		StartDate:            start,
		EndDate:              start.AddDate(0, 0, p.WeekCount*7-1),
		WeekCount:            p.WeekCount,
		WeeklyProgressionPct: p.ProgressionPct,
		IncludeDeload:        p.IncludeDeload,
	}
	m.Workouts = GenerateSchedule(m.ID, p.Split, start, p.WeekCount, p.IncludeDeload, log)
	return m, nil
}

// GenerateSchedule expands a split template into the full dated schedule.
// The output is deterministic for identical inputs: workout IDs derive from
// week/template/day indices and exercise IDs from workoutID + catalog ID, so
// consumers can re-derive lookups by recomputing IDs.
//
// When includeDeload is set, the final week is left empty here; deload
// sessions, if any, come from a dedicated deload template supplied by the
// caller, so a deload week with no workouts is a valid state.
func GenerateSchedule(mesoID string, split models.SplitTemplate, startDate time.Time, weekCount int, includeDeload bool, log *slog.Logger) map[string][]models.WorkoutSession {
	startDate = truncateDay(startDate)
	workouts := make(map[string][]models.WorkoutSession, weekCount)

	for week := 1; week <= weekCount; week++ {
		if includeDeload && week == weekCount {
			workouts[models.WeekKey(week)] = []models.WorkoutSession{}
			continue
		}

		anchor := startDate.AddDate(0, 0, (week-1)*7)
		band := templates.BandForWeek(week, weekCount, includeDeload)
		sessions := make([]models.WorkoutSession, 0, len(split.Workouts))

		for ti, tpl := range split.Workouts {
			for _, weekday := range tpl.Weekdays {
				date, ok := workoutDate(anchor, weekday)
				if !ok {
					// Defensive: weekdays outside 0-6 should not get past
					// template validation. Fall back to the week anchor.
					log.Warn("invalid weekday in split template, using week anchor",
						"split", split.Name, "workout", tpl.Name, "weekday", weekday)
					date = anchor
				}
				workoutID := fmt.Sprintf("%s-w%d-t%d-d%d", mesoID, week, ti, weekday)
				ws := models.WorkoutSession{
					ID:            workoutID,
					Name:          workoutName(tpl, week),
					Date:          date,
					WeekNumber:    week,
					Exercises:     materializeExercises(workoutID, tpl.Exercises),
					IntensityBand: &band,
				}
				sessions = append(sessions, ws)
			}
		}

		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].Date.Before(sessions[j].Date)
		})
		workouts[models.WeekKey(week)] = sessions
	}
	return workouts
}

// workoutDate returns the first occurrence of weekday on or after anchor.
// The boundary rule is explicit: if anchor itself falls on the weekday, the
// anchor date is used, not the one seven days later.
func workoutDate(anchor time.Time, weekday int) (time.Time, bool) {
	if weekday < 0 || weekday > 6 {
		return time.Time{}, false
	}
	offset := (weekday - int(anchor.Weekday()) + 7) % 7
	return anchor.AddDate(0, 0, offset), true
}

// workoutName builds the display name: "Push (chest & shoulders) (Week 2)".
// Muscle groups are deduplicated in first-appearance order.
func workoutName(tpl models.WorkoutTemplate, week int) string {
	seen := make(map[string]bool)
	var groups []string
	for _, ex := range tpl.Exercises {
		if !seen[ex.MuscleGroup] {
			seen[ex.MuscleGroup] = true
			groups = append(groups, ex.MuscleGroup)
		}
	}
	return fmt.Sprintf("%s (%s) (Week %d)", tpl.Name, strings.Join(groups, " & "), week)
}

func materializeExercises(workoutID string, tpls []models.ExerciseTemplate) []models.ExerciseInstance {
	out := make([]models.ExerciseInstance, 0, len(tpls))
	for _, tpl := range tpls {
		exID := workoutID + "-" + tpl.ID
		sets := make([]models.SetRecord, tpl.Sets)
		for i := range sets {
			sets[i] = models.SetRecord{
				ID:         fmt.Sprintf("%s-set%d", exID, i+1),
				Number:     i + 1,
				TargetReps: fmt.Sprintf("%d", tpl.Reps),
				// Target weight stays blank: there is no history yet, the
				// athlete (or next week's propagation) fills it in.
			}
		}
		out = append(out, models.ExerciseInstance{
			ID:             exID,
			Name:           tpl.Name,
			MuscleGroup:    tpl.MuscleGroup,
			TargetSets:     tpl.Sets,
			TargetReps:     tpl.Reps,
			Notes:          tpl.Notes,
			GeneratedSets:  sets,
			BaseExerciseID: tpl.ID,
		})
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
