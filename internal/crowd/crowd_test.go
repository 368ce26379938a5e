package crowd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ---- calendar helpers ------------------------------------------------------

func TestSeasonOf(t *testing.T) {
	assert.Equal(t, seasonSpring, seasonOf(date(2024, time.April, 10)))
	assert.Equal(t, seasonSummer, seasonOf(date(2024, time.July, 1)))
	assert.Equal(t, seasonFall, seasonOf(date(2024, time.October, 31)))
	assert.Equal(t, seasonWinter, seasonOf(date(2024, time.January, 15)))
	assert.Equal(t, seasonWinter, seasonOf(date(2024, time.December, 25)))
}

func TestIsObservedHoliday(t *testing.T) {
	holidays := []time.Time{
		date(2024, time.January, 1),   // New Year's Day
		date(2024, time.January, 15),  // MLK Day (third Monday)
		date(2024, time.May, 27),      // Memorial Day (last Monday)
		date(2024, time.July, 4),      // Independence Day
		date(2024, time.September, 2), // Labor Day (first Monday)
		date(2024, time.November, 28), // Thanksgiving (fourth Thursday)
		date(2024, time.December, 25), // Christmas
	}
	for _, d := range holidays {
		assert.True(t, isObservedHoliday(d), "%s should be a holiday", d.Format("2006-01-02"))
	}

	ordinary := []time.Time{
		date(2024, time.January, 16), // Tuesday after MLK
		date(2024, time.March, 13),   // midweek, no holiday
		date(2024, time.November, 27), // Wednesday before Thanksgiving
	}
	for _, d := range ordinary {
		assert.False(t, isObservedHoliday(d), "%s should not be a holiday", d.Format("2006-01-02"))
	}
}

func TestIsUSHoliday_AdjacentDays(t *testing.T) {
	// July 3rd and 5th ride along with Independence Day.
	assert.True(t, isUSHoliday(date(2024, time.July, 3)))
	assert.True(t, isUSHoliday(date(2024, time.July, 5)))
	assert.False(t, isUSHoliday(date(2024, time.July, 10)))
}

// ---- Predict ---------------------------------------------------------------

func TestPredict_QuietWeekday(t *testing.T) {
	// A Tuesday in mid-February: no factors at all.
	got := Predict("City Museum", date(2024, time.February, 13))

	assert.Equal(t, LevelLow, got.Level)
	assert.Equal(t, ConfidenceLow, got.Confidence)
	assert.Empty(t, got.Factors)
}

func TestPredict_SummerWeekend(t *testing.T) {
	// Saturday in July: weekend + summer = moderate.
	got := Predict("City Museum", date(2024, time.July, 13))

	assert.Equal(t, LevelModerate, got.Level)
	assert.Equal(t, ConfidenceMedium, got.Confidence)
	assert.ElementsMatch(t, []string{"Weekend", "Summer season"}, got.Factors)
}

func TestPredict_NationalParkPeak(t *testing.T) {
	// Saturday in July at a national park: weekend(1) + summer(1) +
	// park peak(1) + park weekend bonus(0.5) = 3.5 → high.
	got := Predict("Zion National Park", date(2024, time.July, 13))

	assert.Equal(t, LevelHigh, got.Level)
	assert.Equal(t, ConfidenceHigh, got.Confidence)
	assert.Contains(t, got.Factors, "National park peak season")
}

func TestPredict_HolidayWeekendAtPark(t *testing.T) {
	// July 4th 2026 is a Saturday: weekend(1) + holiday(2) + summer(1) +
	// park(1) + bonus(0.5) = 5.5 → very high.
	got := Predict("Yellowstone NP", date(2026, time.July, 4))

	assert.Equal(t, LevelVeryHigh, got.Level)
	assert.Equal(t, ConfidenceHigh, got.Confidence)
}

func TestPredict_NPTokenOnlyMatchesWholeWord(t *testing.T) {
	// "np" inside a word must not trigger the park rules.
	got := Predict("Canopy walk", date(2024, time.July, 13))

	assert.NotContains(t, got.Factors, "National park peak season")
}

func TestPredict_DecemberBump(t *testing.T) {
	// A Wednesday in mid-December: holiday season only → moderate.
	got := Predict("Old Town", date(2024, time.December, 11))

	assert.Equal(t, LevelModerate, got.Level)
	assert.Contains(t, got.Factors, "Holiday season")
}

func TestPredict_Deterministic(t *testing.T) {
	d := date(2024, time.August, 10)
	assert.Equal(t, Predict("Grand Canyon National Park", d), Predict("Grand Canyon National Park", d))
}
