package plan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/mesoforge/internal/models"
)

// Store is the persistence collaborator. Load and Save move whole documents:
// the engine does a read-modify-write per operation and does not hold a lock
// across it.
//
// Known limitation: writes are last-write-wins. Two completions for the same
// mesocycle submitted concurrently can lose one update; the Version field is
// bumped on every save as a hook for optimistic concurrency, but a mismatch
// does not currently fail the write.
type Store interface {
	LoadMesocycle(ctx context.Context, id string) (*models.Mesocycle, error)
	SaveMesocycle(ctx context.Context, m *models.Mesocycle) error
	AppendHistory(ctx context.Context, entry models.WorkoutHistoryEntry) error
}

// SetCoordinate addresses one set slot inside a mesocycle document.
type SetCoordinate struct {
	WeekKey       string `json:"weekKey"`
	WorkoutIndex  int    `json:"workoutIndex"`
	ExerciseIndex int    `json:"exerciseIndex"`
	SetIndex      int    `json:"setIndex"`
}

// Integrator records completed sets and feedback and, on workout completion,
// drives the suggest → match → apply pipeline into the following week.
type Integrator struct {
	store   Store
	matcher Matcher
	log     *slog.Logger
	now     func() time.Time
}

// NewIntegrator wires the integrator with the default tier matcher.
func NewIntegrator(store Store, log *slog.Logger) *Integrator {
	return &Integrator{store: store, matcher: NewMatcher(), log: log, now: time.Now}
}

// SetResult reports the state after logging a set.
type SetResult struct {
	Status models.ExerciseStatus `json:"status"`
	// NeedsFeedback is set exactly once: on the transition into completed,
	// when no feedback has been recorded yet. The caller shows the
	// weight-feeling survey off this flag.
	NeedsFeedback bool `json:"needsFeedback"`
}

// LogSet records a completed set. Per-set saves are fire-and-forget from the
// UI; rapid repeats on the same exercise can race and the last write wins.
func (in *Integrator) LogSet(ctx context.Context, mesoID string, coord SetCoordinate, completedWeight, completedReps string) (*SetResult, error) {
	m, err := in.load(ctx, mesoID)
	if err != nil {
		return nil, err
	}

	ex, err := exerciseAt(m, coord.WeekKey, coord.WorkoutIndex, coord.ExerciseIndex)
	if err != nil {
		return nil, err
	}
	if coord.SetIndex < 0 || coord.SetIndex >= len(ex.GeneratedSets) {
		return nil, fmt.Errorf("set %d in exercise %s: %w", coord.SetIndex, ex.ID, ErrSetNotFound)
	}

	wasComplete := ex.Status() == models.StatusCompleted

	set := &ex.GeneratedSets[coord.SetIndex]
	set.CompletedWeight = completedWeight
	set.CompletedReps = completedReps
	set.Completed = true

	status := ex.Status()
	if status == models.StatusCompleted {
		ex.Completed = true
		// A completed exercise must carry working targets; generated
		// exercises start blank, so adopt what the athlete recorded.
		ex.SyncTargets()
	}

	if err := in.save(ctx, m); err != nil {
		return nil, err
	}

	return &SetResult{
		Status:        status,
		NeedsFeedback: status == models.StatusCompleted && !wasComplete && !ex.Feedback.Recorded(),
	}, nil
}

// RecordFeedback stores the survey answers for an exercise. The timestamp is
// stamped here; callers fill in the answered fields.
func (in *Integrator) RecordFeedback(ctx context.Context, mesoID string, coord SetCoordinate, fb models.FeedbackRecord) error {
	m, err := in.load(ctx, mesoID)
	if err != nil {
		return err
	}
	ex, err := exerciseAt(m, coord.WeekKey, coord.WorkoutIndex, coord.ExerciseIndex)
	if err != nil {
		return err
	}
	fb.Timestamp = in.now().UTC()
	ex.WeightFeeling = fb.WeightFeeling
	ex.Feedback = fb
	return in.save(ctx, m)
}

// UpdateTargets sets the working weight/reps targets for an exercise, the
// manual edit path for athletes planning a session ahead of performing it.
// Non-empty values overwrite the exercise target and every set's matching
// target field, mirroring what propagation writes; empty values leave the
// current target alone.
func (in *Integrator) UpdateTargets(ctx context.Context, mesoID string, coord SetCoordinate, weight, reps string) error {
	weight = strings.TrimSpace(weight)
	reps = strings.TrimSpace(reps)
	if weight == "" && reps == "" {
		return fmt.Errorf("nothing to update: weight and reps both empty")
	}

	m, err := in.load(ctx, mesoID)
	if err != nil {
		return err
	}
	ex, err := exerciseAt(m, coord.WeekKey, coord.WorkoutIndex, coord.ExerciseIndex)
	if err != nil {
		return err
	}
	if weight != "" {
		ex.Weight = weight
		for i := range ex.GeneratedSets {
			ex.GeneratedSets[i].TargetWeight = weight
		}
	}
	if reps != "" {
		ex.Reps = reps
		for i := range ex.GeneratedSets {
			ex.GeneratedSets[i].TargetReps = reps
		}
	}
	return in.save(ctx, m)
}

// CompletionResult reports what a workout completion did.
type CompletionResult struct {
	Workout    models.WorkoutSession `json:"workout"`
	Propagated []Applied             `json:"propagated"`
}

// CompleteWorkout marks a session complete and propagates progression into
// the matched next-week workout. Requires every exercise to carry non-empty
// weight and reps — a workout can be mostly done without being completable.
//
// Failure to find a next-week match for an exercise is expected for divergent
// templates and at the end of a block: logged, never an error.
func (in *Integrator) CompleteWorkout(ctx context.Context, mesoID, weekKey string, workoutIndex int, difficulty string) (*CompletionResult, error) {
	m, err := in.load(ctx, mesoID)
	if err != nil {
		return nil, err
	}
	ws := m.Session(weekKey, workoutIndex)
	if ws == nil {
		return nil, fmt.Errorf("workout %s[%d]: %w", weekKey, workoutIndex, ErrWorkoutNotFound)
	}
	for _, ex := range ws.Exercises {
		if !ex.HasTargets() {
			return nil, fmt.Errorf("exercise %q has no recorded weight/reps; workout cannot be completed", ex.Name)
		}
	}

	ws.Completed = true

	week, _ := models.ParseWeekKey(weekKey)
	var updates []Applied
	for i, ex := range ws.Exercises {
		sug, ok := Suggest(ex, difficulty)
		if !ok {
			continue
		}
		target, ok := FindNextWeekTarget(in.matcher, m, *ws, week, ex, i)
		if !ok {
			in.log.Info("no next-week match for exercise", "exercise", ex.Name, "week", week)
			continue
		}
		updates = append(updates, Applied{ExerciseID: ex.ID, Target: target, Suggestion: sug})
	}

	completed := ws.Clone()
	next := Apply(m, updates)

	if err := in.save(ctx, next); err != nil {
		return nil, err
	}

	entry := historyEntry(mesoID, completed, difficulty, in.now().UTC())
	if err := in.appendHistory(ctx, entry); err != nil {
		// The document save succeeded; history is supplementary.
		in.log.Warn("appending workout history failed", "workout", completed.ID, "error", err)
	}

	return &CompletionResult{Workout: completed, Propagated: updates}, nil
}

func historyEntry(mesoID string, ws models.WorkoutSession, difficulty string, completedAt time.Time) models.WorkoutHistoryEntry {
	exDone, setsDone := 0, 0
	for _, ex := range ws.Exercises {
		if ex.Status() == models.StatusCompleted {
			exDone++
		}
		for _, s := range ex.GeneratedSets {
			if s.Completed {
				setsDone++
			}
		}
	}
	return models.WorkoutHistoryEntry{
		ID:                 uuid.NewString(),
		MesocycleID:        mesoID,
		WorkoutID:          ws.ID,
		Name:               ws.Name,
		WeekNumber:         ws.WeekNumber,
		WorkoutDate:        ws.Date,
		CompletedAt:        completedAt,
		Difficulty:         models.NormalizeDifficulty(difficulty),
		ExercisesCompleted: exDone,
		SetsCompleted:      setsDone,
	}
}

func (in *Integrator) load(ctx context.Context, id string) (*models.Mesocycle, error) {
	m, err := in.store.LoadMesocycle(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	return m, nil
}

func (in *Integrator) save(ctx context.Context, m *models.Mesocycle) error {
	if err := in.store.SaveMesocycle(ctx, m); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

func (in *Integrator) appendHistory(ctx context.Context, e models.WorkoutHistoryEntry) error {
	if err := in.store.AppendHistory(ctx, e); err != nil {
		return &StorageError{Op: "history", Err: err}
	}
	return nil
}

func exerciseAt(m *models.Mesocycle, weekKey string, workoutIndex, exerciseIndex int) (*models.ExerciseInstance, error) {
	ws := m.Session(weekKey, workoutIndex)
	if ws == nil {
		return nil, fmt.Errorf("workout %s[%d]: %w", weekKey, workoutIndex, ErrWorkoutNotFound)
	}
	if exerciseIndex < 0 || exerciseIndex >= len(ws.Exercises) {
		return nil, fmt.Errorf("exercise %d in workout %s: %w", exerciseIndex, ws.ID, ErrExerciseNotFound)
	}
	return &ws.Exercises[exerciseIndex], nil
}
