package models

import (
	"strings"
	"time"
)

// Feeling is the athlete's answer to the post-exercise weight-feeling survey.
type Feeling string

const (
	FeelingTooLight       Feeling = "too_light"
	FeelingJustRight      Feeling = "just_right"
	FeelingTooHeavy       Feeling = "too_heavy"
	FeelingExtremelyHeavy Feeling = "extremely_heavy"
)

// ParseFeeling normalizes free-form survey input ("Just Right", "too-heavy")
// to a Feeling. Unknown input returns "" and false.
func ParseFeeling(s string) (Feeling, bool) {
	switch Feeling(normalizeToken(s)) {
	case FeelingTooLight:
		return FeelingTooLight, true
	case FeelingJustRight:
		return FeelingJustRight, true
	case FeelingTooHeavy:
		return FeelingTooHeavy, true
	case FeelingExtremelyHeavy:
		return FeelingExtremelyHeavy, true
	}
	return "", false
}

// FeedbackRecord holds the per-exercise survey answers captured when the
// exercise transitions to completed.
type FeedbackRecord struct {
	WeightFeeling     Feeling   `json:"weightFeeling"`
	MuscleActivation  string    `json:"muscleActivation"`
	PerformanceRating string    `json:"performanceRating"`
	Notes             string    `json:"notes"`
	Timestamp         time.Time `json:"timestamp"`
}

// Recorded reports whether any survey answer has been captured.
func (f FeedbackRecord) Recorded() bool {
	return f.WeightFeeling != "" || f.Notes != "" || f.MuscleActivation != "" || f.PerformanceRating != ""
}

// NormalizeDifficulty canonicalizes workout-level difficulty feedback
// ("Too Hard" → "too_hard") for the progression modifier lookup.
func NormalizeDifficulty(s string) string {
	return normalizeToken(s)
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
