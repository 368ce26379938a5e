// Package crowd predicts expected crowd levels for a location on a date.
// The prediction is a pure heuristic over calendar signals (weekend, US
// holidays, season) and coarse location hints — it performs no I/O and is
// deterministic, so the same inputs always yield the same prediction.
package crowd

import (
	"regexp"
	"strings"
	"time"
)

// Level is the predicted crowding at a location.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
	LevelVeryHigh Level = "very_high"
)

// Confidence grades how strongly the contributing factors agree.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Prediction is the full crowd forecast for one location and date.
type Prediction struct {
	Level      Level      `json:"level"`
	Confidence Confidence `json:"confidence"`
	Reasoning  string     `json:"reasoning"`
	Factors    []string   `json:"factors"`
}

// npToken matches "np" as a standalone word ("Zion NP"), not inside words.
var npToken = regexp.MustCompile(`\bnp\b`)

// Predict scores the calendar and location signals and maps the total to a
// level. Thresholds: 4+ very high, 2.5+ high, 1+ moderate, below that low.
// Confidence rises with the number of agreeing factors.
func Predict(location string, date time.Time) Prediction {
	var (
		score   float64
		factors []string
	)

	weekday := date.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday
	holiday := isUSHoliday(date)
	season := seasonOf(date)
	month := date.Month()

	if isWeekend {
		score++
		factors = append(factors, "Weekend")
	}
	if holiday {
		score += 2
		factors = append(factors, "Holiday")
	}
	if season == seasonSummer {
		score++
		factors = append(factors, "Summer season")
	}
	if (month == time.March || month == time.April) && !isWeekend {
		score += 0.5
		factors = append(factors, "Spring break season")
	}
	if month == time.December {
		score++
		factors = append(factors, "Holiday season")
	}

	lower := strings.ToLower(location)
	if strings.Contains(lower, "national park") || npToken.MatchString(lower) {
		if season == seasonSummer {
			score++
			factors = append(factors, "National park peak season")
			if isWeekend {
				score += 0.5
			}
		}
	}

	var (
		level     Level
		reasoning string
	)
	switch {
	case score >= 4:
		level = LevelVeryHigh
		reasoning = "Expect very high crowds due to peak conditions"
	case score >= 2.5:
		level = LevelHigh
		reasoning = "Expect high crowds"
	case score >= 1:
		level = LevelModerate
		reasoning = "Expect moderate crowds"
	default:
		level = LevelLow
		reasoning = "Expect lower crowds"
	}

	confidence := ConfidenceLow
	switch {
	case len(factors) >= 3:
		confidence = ConfidenceHigh
	case len(factors) >= 2:
		confidence = ConfidenceMedium
	}

	return Prediction{
		Level:      level,
		Confidence: confidence,
		Reasoning:  reasoning,
		Factors:    factors,
	}
}
