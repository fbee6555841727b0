package models

import "testing"

// TestParseFeeling covers canonical, display-cased and hyphenated input.
func TestParseFeeling(t *testing.T) {
	cases := []struct {
		in   string
		want Feeling
		ok   bool
	}{
		{"too_light", FeelingTooLight, true},
		{"Just Right", FeelingJustRight, true},
		{"too-heavy", FeelingTooHeavy, true},
		{"EXTREMELY HEAVY", FeelingExtremelyHeavy, true},
		{"  just_right  ", FeelingJustRight, true},
		{"fine", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseFeeling(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseFeeling(%q) = %q, %v, want %q, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

// TestNormalizeDifficulty verifies the canonical token form.
func TestNormalizeDifficulty(t *testing.T) {
	cases := map[string]string{
		"Too Hard":    "too_hard",
		"too-easy":    "too_easy",
		" Just Right": "just_right",
		"too_hard":    "too_hard",
	}
	for in, want := range cases {
		if got := NormalizeDifficulty(in); got != want {
			t.Errorf("NormalizeDifficulty(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestFeedbackRecorded verifies any answered field counts as recorded.
func TestFeedbackRecorded(t *testing.T) {
	if (FeedbackRecord{}).Recorded() {
		t.Error("empty record reported as recorded")
	}
	if !(FeedbackRecord{WeightFeeling: FeelingJustRight}).Recorded() {
		t.Error("weight feeling alone should count")
	}
	if !(FeedbackRecord{Notes: "felt strong"}).Recorded() {
		t.Error("notes alone should count")
	}
	if !(FeedbackRecord{MuscleActivation: "good"}).Recorded() {
		t.Error("muscle activation alone should count")
	}
}
