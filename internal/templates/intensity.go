package templates

import "github.com/meltforce/mesoforge/internal/models"

// weeklyBands maps week index to its target effort range. Week 5 is the
// deload band: same effort range as week 1, distinct label. Mesocycles longer
// than four accumulation weeks hold the week-4 band until the deload.
var weeklyBands = []models.IntensityBand{
	{Week: 1, MinEffort: 3, MaxEffort: 4, Label: "3-4 RIR (moderate)"},
	{Week: 2, MinEffort: 2, MaxEffort: 3, Label: "2-3 RIR (challenging)"},
	{Week: 3, MinEffort: 1, MaxEffort: 2, Label: "1-2 RIR (hard)"},
	{Week: 4, MinEffort: 0, MaxEffort: 1, Label: "0-1 RIR (maximal)"},
	{Week: 5, MinEffort: 3, MaxEffort: 4, Label: "Deload (easy)"},
}

const deloadBandIndex = 4

// BandForWeek returns the intensity band to attach to every workout of the
// given week. The deload week (last week when includeDeload is set) always
// gets the deload band regardless of week number.
func BandForWeek(week, weekCount int, includeDeload bool) models.IntensityBand {
	if includeDeload && week == weekCount {
		band := weeklyBands[deloadBandIndex]
		band.Week = week
		return band
	}
	idx := week - 1
	if idx < 0 {
		idx = 0
	}
	if idx > 3 {
		idx = 3
	}
	band := weeklyBands[idx]
	band.Week = week
	return band
}

// Bands returns the full weekly intensity table.
func Bands() []models.IntensityBand {
	out := make([]models.IntensityBand, len(weeklyBands))
	copy(out, weeklyBands)
	return out
}
