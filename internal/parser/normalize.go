package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/tripforge/backend/internal/domain"
)

// categoryRule pairs a keyword pattern with the category it implies.
// Rules are evaluated top to bottom and the first match wins, so precedence
// is a property of the table order, not of any conditional logic: a line
// mentioning both a restaurant and a drive is food, not transportation.
type categoryRule struct {
	keywords *regexp.Regexp
	category domain.Category
}

var categoryRules = []categoryRule{
	{regexp.MustCompile(`\b(eat|restaurant|food|dining|breakfast|lunch|dinner|meal|cafe|bakery)\b`), domain.CategoryFood},
	{regexp.MustCompile(`\b(hotel|stay|accommodation|lodging|resort|hostel)\b`), domain.CategoryAccommodation},
	{regexp.MustCompile(`\b(transport|drive|fly|flight|train|bus|car rental|taxi)\b`), domain.CategoryTransportation},
}

// inferCategory classifies an activity from its combined title and
// description text. Anything the rule table does not recognize is a plain
// activity.
func inferCategory(text string) domain.Category {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		if rule.keywords.MatchString(lower) {
			return rule.category
		}
	}
	return domain.CategoryActivity
}

// normalize finalizes one day block's drafts into activity records.
//
// Dates are tripStart plus (day−1) days; day 0 marks unscheduled content
// and yields a nil date. Order is the zero-based position within this block
// — it restarts for every block, including a repeated day number.
func normalize(day int, drafts []draft, tripStart time.Time) []domain.Activity {
	var date *time.Time
	if day > 0 {
		d := tripStart.AddDate(0, 0, day-1)
		date = &d
	}

	records := make([]domain.Activity, 0, len(drafts))
	for i, dr := range drafts {
		rec := domain.Activity{
			Title:    dr.title,
			Date:     date,
			Category: inferCategory(dr.title + " " + strings.Join(dr.description, " ")),
			Order:    i,
		}
		if desc := strings.TrimSpace(strings.Join(dr.description, " ")); desc != "" {
			rec.Description = &desc
		}
		if dr.location != "" {
			loc := dr.location
			rec.Location = &loc
		}
		records = append(records, rec)
	}
	return records
}
