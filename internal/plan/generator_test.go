package plan

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/meltforce/mesoforge/internal/models"
	"github.com/meltforce/mesoforge/internal/templates"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func mustSplit(t *testing.T, name string) models.SplitTemplate {
	t.Helper()
	s, err := templates.SplitByName(name)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestGeneratePushPullLegs verifies the canonical schedule: Push/Pull/Legs
// starting Monday 2024-01-01 for 4 weeks with no deload yields 3 sessions per
// week, and the week-1 Monday session lands exactly on the start date.
func TestGeneratePushPullLegs(t *testing.T) {
	split := mustSplit(t, "Push/Pull/Legs")
	workouts := GenerateSchedule("meso1", split, date(2024, time.January, 1), 4, false, testLogger())

	if len(workouts) != 4 {
		t.Fatalf("weeks = %d, want 4", len(workouts))
	}
	total := 0
	for week := 1; week <= 4; week++ {
		sessions := workouts[models.WeekKey(week)]
		if len(sessions) != 3 {
			t.Errorf("week %d sessions = %d, want 3", week, len(sessions))
		}
		total += len(sessions)
	}
	if total != 12 {
		t.Errorf("total sessions = %d, want 12", total)
	}

	first := workouts["week1"][0]
	if !first.Date.Equal(date(2024, time.January, 1)) {
		t.Errorf("week1 first session date = %v, want 2024-01-01", first.Date)
	}
	if first.Date.Weekday() != time.Monday {
		t.Errorf("week1 first session weekday = %v, want Monday", first.Date.Weekday())
	}
}

// TestGenerateDatesWithinRange verifies every generated date falls inside
// [startDate, startDate + weekCount*7 days).
func TestGenerateDatesWithinRange(t *testing.T) {
	for _, split := range templates.Splits {
		for _, weeks := range []int{1, 4, 6, 12} {
			start := date(2024, time.March, 6) // a Wednesday
			workouts := GenerateSchedule("m", split, start, weeks, false, testLogger())
			end := start.AddDate(0, 0, weeks*7)
			for key, sessions := range workouts {
				for _, ws := range sessions {
					if ws.Date.Before(start) || !ws.Date.Before(end) {
						t.Errorf("%s %s %s: date %v outside [%v, %v)",
							split.Name, key, ws.Name, ws.Date, start, end)
					}
				}
			}
		}
	}
}

// TestGenerateDeterministic verifies two runs with identical inputs produce
// byte-identical output — the UI re-derives lookups by recomputing IDs.
func TestGenerateDeterministic(t *testing.T) {
	split := mustSplit(t, "Upper/Lower")
	a := GenerateSchedule("meso1", split, date(2024, time.February, 5), 5, true, testLogger())
	b := GenerateSchedule("meso1", split, date(2024, time.February, 5), 5, true, testLogger())

	aj, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	bj, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if string(aj) != string(bj) {
		t.Error("two generations with identical inputs differ")
	}
}

// TestGenerateDeloadWeekEmpty verifies that with includeDeload and 4 weeks,
// week4 exists but contains no standard-template sessions.
func TestGenerateDeloadWeekEmpty(t *testing.T) {
	split := mustSplit(t, "Push/Pull/Legs")
	workouts := GenerateSchedule("m", split, date(2024, time.January, 1), 4, true, testLogger())

	sessions, ok := workouts["week4"]
	if !ok {
		t.Fatal("week4 key missing; deload week must still be present")
	}
	if len(sessions) != 0 {
		t.Errorf("week4 sessions = %d, want 0 (deload)", len(sessions))
	}
	if len(workouts["week3"]) == 0 {
		t.Error("week3 should still have generated sessions")
	}
}

// TestGenerateSetMaterialization verifies each exercise gets exactly
// targetSets set slots with target reps copied and weight left blank.
func TestGenerateSetMaterialization(t *testing.T) {
	split := mustSplit(t, "Strength Focus")
	workouts := GenerateSchedule("m", split, date(2024, time.January, 1), 1, false, testLogger())

	for _, ws := range workouts["week1"] {
		for _, ex := range ws.Exercises {
			if len(ex.GeneratedSets) != ex.TargetSets {
				t.Errorf("%s: generated sets = %d, want %d", ex.Name, len(ex.GeneratedSets), ex.TargetSets)
			}
			for i, set := range ex.GeneratedSets {
				if set.Number != i+1 {
					t.Errorf("%s set %d: number = %d", ex.Name, i, set.Number)
				}
				if set.TargetWeight != "" {
					t.Errorf("%s set %d: target weight = %q, want blank", ex.Name, i, set.TargetWeight)
				}
				if set.CompletedWeight != "" || set.CompletedReps != "" || set.Completed {
					t.Errorf("%s set %d: completed fields not empty", ex.Name, i)
				}
			}
		}
	}
}

// TestGenerateIDsAndNames verifies the deterministic ID scheme and the
// display-name format with deduplicated muscle groups.
func TestGenerateIDsAndNames(t *testing.T) {
	split := mustSplit(t, "Push/Pull/Legs")
	workouts := GenerateSchedule("meso1", split, date(2024, time.January, 1), 2, false, testLogger())

	push := workouts["week1"][0]
	if push.ID != "meso1-w1-t0-d1" {
		t.Errorf("workout ID = %q, want meso1-w1-t0-d1", push.ID)
	}
	if push.Name != "Push (chest & shoulders & triceps) (Week 1)" {
		t.Errorf("workout name = %q", push.Name)
	}

	ex := push.Exercises[0]
	if ex.ID != push.ID+"-"+ex.BaseExerciseID {
		t.Errorf("exercise ID = %q, want workoutID + base ID", ex.ID)
	}

	// Same template-day pairing next week: same derivation, different week.
	nextPush := workouts["week2"][0]
	if nextPush.ID != "meso1-w2-t0-d1" {
		t.Errorf("week2 workout ID = %q", nextPush.ID)
	}
	if nextPush.Exercises[0].ID == ex.ID {
		t.Error("exercise IDs must differ across weeks")
	}

	// Unique within the session.
	seen := map[string]bool{}
	for _, e := range push.Exercises {
		if seen[e.ID] {
			t.Errorf("duplicate exercise ID %q within session", e.ID)
		}
		seen[e.ID] = true
	}
}

// TestGenerateIntensityBands verifies each week's sessions carry that week's
// band and that the deload week band is used on the last week when a longer
// block has a deload.
func TestGenerateIntensityBands(t *testing.T) {
	split := mustSplit(t, "Upper/Lower")
	workouts := GenerateSchedule("m", split, date(2024, time.January, 1), 3, false, testLogger())

	for week := 1; week <= 3; week++ {
		want := templates.BandForWeek(week, 3, false)
		for _, ws := range workouts[models.WeekKey(week)] {
			if ws.IntensityBand == nil {
				t.Fatalf("week %d session %s: no intensity band", week, ws.Name)
			}
			if *ws.IntensityBand != want {
				t.Errorf("week %d band = %+v, want %+v", week, *ws.IntensityBand, want)
			}
		}
	}
}

// TestWorkoutDateOnOrAfter pins the boundary rule: if the week anchor already
// falls on the template weekday, that same day is used.
func TestWorkoutDateOnOrAfter(t *testing.T) {
	monday := date(2024, time.January, 1)
	got, ok := workoutDate(monday, int(time.Monday))
	if !ok || !got.Equal(monday) {
		t.Errorf("anchor on target weekday: got %v, want %v", got, monday)
	}

	got, ok = workoutDate(monday, int(time.Sunday))
	if !ok || !got.Equal(date(2024, time.January, 7)) {
		t.Errorf("Sunday from Monday anchor: got %v, want 2024-01-07", got)
	}

	if _, ok := workoutDate(monday, 7); ok {
		t.Error("weekday 7 should be rejected")
	}
	if _, ok := workoutDate(monday, -1); ok {
		t.Error("weekday -1 should be rejected")
	}
}

// TestNewMesocycleValidation verifies parameter bounds.
func TestNewMesocycleValidation(t *testing.T) {
	split := mustSplit(t, "Full Body")
	base := GenerateParams{
		Name: "Block 1", Split: split, StartDate: date(2024, time.January, 1),
		WeekCount: 4, ProgressionPct: 5,
	}

	if _, err := NewMesocycle(base, testLogger()); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}

	bad := base
	bad.WeekCount = 0
	if _, err := NewMesocycle(bad, testLogger()); err == nil {
		t.Error("weekCount 0 accepted")
	}
	bad = base
	bad.WeekCount = 13
	if _, err := NewMesocycle(bad, testLogger()); err == nil {
		t.Error("weekCount 13 accepted")
	}
	bad = base
	bad.ProgressionPct = 25
	if _, err := NewMesocycle(bad, testLogger()); err == nil {
		t.Error("progression 25 accepted")
	}
	bad = base
	bad.Name = ""
	if _, err := NewMesocycle(bad, testLogger()); err == nil {
		t.Error("empty name accepted")
	}
}

// TestNewMesocycleEndDate verifies the end date spans the full block.
func TestNewMesocycleEndDate(t *testing.T) {
	split := mustSplit(t, "Full Body")
	m, err := NewMesocycle(GenerateParams{
		Name: "Block", Split: split, StartDate: date(2024, time.January, 1),
		WeekCount: 4, ProgressionPct: 5,
	}, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	want := date(2024, time.January, 28)
	if !m.EndDate.Equal(want) {
		t.Errorf("end date = %v, want %v", m.EndDate, want)
	}
	for _, sessions := range m.Workouts {
		for _, ws := range sessions {
			if ws.Date.Before(m.StartDate) || ws.Date.After(m.EndDate) {
				t.Errorf("session %s date %v outside [%v, %v]", ws.Name, ws.Date, m.StartDate, m.EndDate)
			}
		}
	}
}
