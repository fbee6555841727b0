package models

import (
	"strconv"
	"strings"
	"time"
)

// WeekKey returns the workouts map key for a 1-based week number ("week3").
func WeekKey(week int) string {
	return "week" + strconv.Itoa(week)
}

// ParseWeekKey extracts the week number from a workouts map key. Keys are
// normally of the form "week<N>", but documents edited by hand have been seen
// with variants like "Week 3"; any embedded run of digits is accepted.
func ParseWeekKey(key string) (int, bool) {
	start := -1
	for i, r := range key {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, false
	}
	end := start
	for end < len(key) && key[end] >= '0' && key[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(key[start:end])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Mesocycle is a multi-week training block. It is the aggregate root the
// engine operates on: the generator creates it, the propagator and completion
// recording replace it wholesale through the store. Workouts is keyed by
// WeekKey strings so consumers can navigate the serialized document purely
// from (weekKey, workoutIndex, exerciseIndex, setIndex) coordinates.
type Mesocycle struct {
	ID                   string                      `json:"id"`
	Name                 string                      `json:"name"`
	StartDate            time.Time                   `json:"startDate"`
	EndDate              time.Time                   `json:"endDate"`
	WeekCount            int                         `json:"weekCount"`
	WeeklyProgressionPct float64                     `json:"weeklyProgressionPct"`
	IncludeDeload        bool                        `json:"includeDeload"`
	Version              int                         `json:"version"`
	Workouts             map[string][]WorkoutSession `json:"workouts"`
}

// WorkoutSession is one dated workout inside a mesocycle week. ID is derived
// deterministically at generation time from week/template/day indices and
// stays stable for the life of the mesocycle; later lookups depend on that.
type WorkoutSession struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Date          time.Time          `json:"date"`
	WeekNumber    int                `json:"weekNumber"`
	Completed     bool               `json:"completed"`
	Exercises     []ExerciseInstance `json:"exercises"`
	IntensityBand *IntensityBand     `json:"intensityBand,omitempty"`
}

// ExerciseInstance is a single exercise within a session. ID is derived from
// workoutID + baseExerciseID, so it is stable within a week but differs
// across weeks — cross-week matching cannot rely on ID equality alone.
//
// Weight and Reps are the current working targets as entered or propagated;
// they are strings because they start blank (no history on week 1) and
// athletes type free-form values.
type ExerciseInstance struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	MuscleGroup    string         `json:"muscleGroup"`
	TargetSets     int            `json:"targetSets"`
	TargetReps     int            `json:"targetReps"`
	Weight         string         `json:"weight"`
	Reps           string         `json:"reps"`
	Notes          string         `json:"notes"`
	GeneratedSets  []SetRecord    `json:"generatedSets"`
	BaseExerciseID string         `json:"baseExerciseId"`
	Completed      bool           `json:"completed"`
	WeightFeeling  Feeling        `json:"weightFeeling,omitempty"`
	Feedback       FeedbackRecord `json:"feedback"`
}

// SetRecord is one pre-materialized set slot. Completed/target values are
// strings straight from user input; non-numeric values are treated as zero by
// the progression calculator rather than rejected.
type SetRecord struct {
	ID              string `json:"id"`
	Number          int    `json:"number"`
	TargetReps      string `json:"targetReps"`
	TargetWeight    string `json:"targetWeight"`
	CompletedReps   string `json:"completedReps"`
	CompletedWeight string `json:"completedWeight"`
	Completed       bool   `json:"completed"`
}

// ExerciseStatus is the completion state of an exercise instance.
type ExerciseStatus string

const (
	StatusPending    ExerciseStatus = "pending"
	StatusInProgress ExerciseStatus = "in_progress"
	StatusCompleted  ExerciseStatus = "completed"
)

// Status derives the exercise state from its recorded sets.
func (e *ExerciseInstance) Status() ExerciseStatus {
	done := 0
	for _, s := range e.GeneratedSets {
		if s.Completed {
			done++
		}
	}
	switch {
	case done == 0:
		return StatusPending
	case done < e.TargetSets:
		return StatusInProgress
	default:
		return StatusCompleted
	}
}

// CompletedSets returns the sets the athlete marked completed.
func (e *ExerciseInstance) CompletedSets() []SetRecord {
	var out []SetRecord
	for _, s := range e.GeneratedSets {
		if s.Completed {
			out = append(out, s)
		}
	}
	return out
}

// HasTargets reports whether the exercise carries non-empty weight and reps,
// the precondition for counting it toward workout completion.
func (e *ExerciseInstance) HasTargets() bool {
	return strings.TrimSpace(e.Weight) != "" && strings.TrimSpace(e.Reps) != ""
}

// SyncTargets fills blank working targets from the recorded sets, so an
// exercise that reaches completed carries the weight and reps the athlete
// actually used. Hand-entered or propagated targets are preserved.
func (e *ExerciseInstance) SyncTargets() {
	if strings.TrimSpace(e.Weight) == "" {
		weight := e.lastRecorded(func(s SetRecord) string { return s.CompletedWeight })
		if weight == "" {
			weight = e.lastRecorded(func(s SetRecord) string { return s.TargetWeight })
		}
		e.Weight = weight
	}
	if strings.TrimSpace(e.Reps) == "" {
		reps := e.lastRecorded(func(s SetRecord) string { return s.CompletedReps })
		if reps == "" {
			reps = e.lastRecorded(func(s SetRecord) string { return s.TargetReps })
		}
		if reps == "" && e.TargetReps > 0 {
			reps = strconv.Itoa(e.TargetReps)
		}
		e.Reps = reps
	}
}

// lastRecorded returns the value from the most recent completed set for which
// get yields something non-empty.
func (e *ExerciseInstance) lastRecorded(get func(SetRecord) string) string {
	for i := len(e.GeneratedSets) - 1; i >= 0; i-- {
		s := e.GeneratedSets[i]
		if !s.Completed {
			continue
		}
		if v := strings.TrimSpace(get(s)); v != "" {
			return v
		}
	}
	return ""
}

// Clone returns a deep copy of the mesocycle. Propagation operates on a clone
// so the current-week and next-week views never alias the same slices.
func (m *Mesocycle) Clone() *Mesocycle {
	out := *m
	out.Workouts = make(map[string][]WorkoutSession, len(m.Workouts))
	for key, sessions := range m.Workouts {
		copied := make([]WorkoutSession, len(sessions))
		for i, ws := range sessions {
			copied[i] = ws.Clone()
		}
		out.Workouts[key] = copied
	}
	return &out
}

// Clone returns a deep copy of the session.
func (w WorkoutSession) Clone() WorkoutSession {
	out := w
	if w.IntensityBand != nil {
		band := *w.IntensityBand
		out.IntensityBand = &band
	}
	out.Exercises = make([]ExerciseInstance, len(w.Exercises))
	for i, ex := range w.Exercises {
		copied := ex
		copied.GeneratedSets = make([]SetRecord, len(ex.GeneratedSets))
		copy(copied.GeneratedSets, ex.GeneratedSets)
		out.Exercises[i] = copied
	}
	return out
}

// Session returns the workout at (weekKey, workoutIndex), or nil if the
// coordinate does not resolve.
func (m *Mesocycle) Session(weekKey string, workoutIndex int) *WorkoutSession {
	sessions, ok := m.Workouts[weekKey]
	if !ok || workoutIndex < 0 || workoutIndex >= len(sessions) {
		return nil
	}
	return &sessions[workoutIndex]
}
