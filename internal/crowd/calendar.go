package crowd

import "time"

type season int

const (
	seasonWinter season = iota
	seasonSpring
	seasonSummer
	seasonFall
)

// seasonOf maps a date to its northern-hemisphere meteorological season.
func seasonOf(date time.Time) season {
	switch date.Month() {
	case time.March, time.April, time.May:
		return seasonSpring
	case time.June, time.July, time.August:
		return seasonSummer
	case time.September, time.October, time.November:
		return seasonFall
	default:
		return seasonWinter
	}
}

// isUSHoliday reports whether date is a major US holiday or part of a
// holiday weekend (the day immediately before or after one).
func isUSHoliday(date time.Time) bool {
	if isObservedHoliday(date) {
		return true
	}
	// Fridays before and Mondays after a holiday behave like the holiday
	// itself for travel purposes.
	return isObservedHoliday(date.AddDate(0, 0, -1)) || isObservedHoliday(date.AddDate(0, 0, 1))
}

// isObservedHoliday checks the fixed and floating federal holidays that move
// crowds: fixed-date holidays by month/day, floating ones by weekday rules
// (e.g. Thanksgiving is the fourth Thursday of November, so it falls on a
// Thursday between the 22nd and 28th).
func isObservedHoliday(date time.Time) bool {
	month, day := date.Month(), date.Day()
	weekday := date.Weekday()

	switch {
	case month == time.January && day == 1: // New Year's Day
		return true
	case month == time.January && weekday == time.Monday && day >= 15 && day <= 21: // MLK Day
		return true
	case month == time.February && weekday == time.Monday && day >= 15 && day <= 21: // Presidents' Day
		return true
	case month == time.May && weekday == time.Monday && day >= 25: // Memorial Day
		return true
	case month == time.July && day == 4: // Independence Day
		return true
	case month == time.September && weekday == time.Monday && day <= 7: // Labor Day
		return true
	case month == time.October && weekday == time.Monday && day >= 8 && day <= 14: // Columbus Day
		return true
	case month == time.November && day == 11: // Veterans Day
		return true
	case month == time.November && weekday == time.Thursday && day >= 22 && day <= 28: // Thanksgiving
		return true
	case month == time.December && day == 25: // Christmas
		return true
	}
	return false
}
