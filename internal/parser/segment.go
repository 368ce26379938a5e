package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// dayBlock groups the lines belonging to one day of the plan.
// day 0 holds unscheduled content that appeared before any day marker.
// Blocks exist only within a single Parse call and are never merged: if the
// generator repeats "Day 1", two day-1 blocks are produced in sequence.
type dayBlock struct {
	day   int
	lines []string
}

// Day-marker forms, checked in order:
//
//	"## Day 3" / "### 3"   heading-prefixed, day word optional
//	"Day 3"                bare, at line start
//	"Day three"            written-out, "one" through "seven"
var (
	headingDayPattern = regexp.MustCompile(`(?i)^#+\s*(?:day\s+)?(\d+)`)
	bareDayPattern    = regexp.MustCompile(`(?i)^day\s+(\d+)`)
	wordDayPattern    = regexp.MustCompile(`(?i)^day\s+(one|two|three|four|five|six|seven)\b`)
)

// dayWords maps written-out day numbers to their values. The generator
// rarely goes past a week in this form, so seven is the ceiling.
var dayWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6, "seven": 7,
}

// isDayMarker reports whether line starts a new day and returns its number.
// A line that looks like a marker but carries an unusable number (e.g.
// "Day 0") is not a marker — it falls through to ordinary prose handling.
func isDayMarker(line string) (int, bool) {
	if m := headingDayPattern.FindStringSubmatch(line); m != nil {
		return parseDayNumber(m[1])
	}
	if m := bareDayPattern.FindStringSubmatch(line); m != nil {
		return parseDayNumber(m[1])
	}
	if m := wordDayPattern.FindStringSubmatch(line); m != nil {
		return dayWords[strings.ToLower(m[1])], true
	}
	return 0, false
}

// parseDayNumber converts a captured digit string, rejecting zero and
// unparseable values so they are not treated as day boundaries.
func parseDayNumber(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// segment splits raw plan text into day-scoped blocks.
//
// Marker lines are consumed — they delimit blocks but are not part of any
// block's lines. Content before the first marker (or all content, when the
// text has no markers) lands in a day-0 block. Empty input yields no blocks;
// any other input yields at least one.
func segment(text string) []dayBlock {
	if text == "" {
		return nil
	}

	var blocks []dayBlock
	current := dayBlock{day: 0}

	for _, raw := range splitLines(text) {
		line := strings.TrimSpace(raw)

		if day, ok := isDayMarker(line); ok {
			// Close the running block. The initial day-0 block is kept only
			// if it accumulated content.
			if current.day != 0 || len(current.lines) > 0 {
				blocks = append(blocks, current)
			}
			current = dayBlock{day: day}
			continue
		}

		current.lines = append(current.lines, line)
	}

	blocks = append(blocks, current)
	return blocks
}
