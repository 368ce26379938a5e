// Package parser converts the free-form, markdown-ish trip plan produced by
// the text-completion service into ordered, day-indexed activity records.
//
// The input is adversarial: the generator follows no schema, mixes bullet
// styles, and sometimes emits prose with no structure at all. The pipeline
// therefore never fails — every stage absorbs malformed input and degrades,
// and a total extraction miss yields a single catch-all record so callers
// always have something to render and persist.
//
// The pipeline has three stages, each a pure function of its inputs:
//
//	segment            splits raw text into day-scoped line blocks
//	extractActivities  classifies lines and accumulates activity drafts
//	normalize          assigns dates, ordering, and categories; applies
//	                   the single-record fallback
//
// All lookup tables are package-level read-only values, so concurrent
// callers need no coordination.
package parser

import (
	"strings"
	"time"

	"github.com/tripforge/backend/internal/domain"
)

// maxFallbackDescription bounds the raw-text excerpt used when extraction
// yields nothing.
const maxFallbackDescription = 2000

// Parse converts plan text into activity records for the trip starting at
// tripStart. The result is never empty: if no structure can be extracted,
// a single fallback record dated tripStart is returned.
//
// Records carry no IDs — the persistence layer assigns them.
func Parse(text string, tripStart time.Time) []domain.Activity {
	blocks := segment(text)

	var records []domain.Activity
	for _, b := range blocks {
		drafts := extractActivities(b.lines)
		records = append(records, normalize(b.day, drafts, tripStart)...)
	}

	if len(records) == 0 {
		return []domain.Activity{fallbackRecord(text, tripStart)}
	}
	return records
}

// fallbackRecord synthesizes the catch-all activity used when the pipeline
// extracts nothing. The raw text is preserved (truncated) as the description
// so the user still sees the generated plan.
func fallbackRecord(text string, tripStart time.Time) domain.Activity {
	rec := domain.Activity{
		Title:    "Generated Itinerary",
		Category: domain.CategoryActivity,
		Date:     &tripStart,
		Order:    0,
	}
	if desc := truncateRunes(text, maxFallbackDescription); desc != "" {
		rec.Description = &desc
	}
	return rec
}

// truncateRunes shortens s to at most n runes. Truncation by runes rather
// than bytes avoids splitting a multi-byte character in half.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// splitLines breaks text into lines regardless of line-ending convention
// (\n, \r\n, or bare \r).
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
