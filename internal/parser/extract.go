package parser

import (
	"regexp"
	"strings"
)

// maxTitleLen is the storage limit for activity titles. Longer titles are
// truncated, never rejected.
const maxTitleLen = 150

// draft is the in-progress accumulator for one activity while scanning a
// day's lines. It is finalized the moment the next activity marker is seen
// or the block ends.
type draft struct {
	title       string
	description []string
	location    string // first match wins, never overwritten
}

var (
	// activityMarkerPattern matches bullet glyphs and numbered-list prefixes.
	activityMarkerPattern = regexp.MustCompile(`^[-*•]\s+|^\d+[.)]\s+`)

	// markerPrefixPattern strips the bullet or number prefix from a marker line.
	markerPrefixPattern = regexp.MustCompile(`^[-*•\d.)\s]+`)

	// horizontalRulePattern matches separator lines the generator uses
	// between sections.
	horizontalRulePattern = regexp.MustCompile(`^={3,}$|^-{3,}$`)

	// titleSeparatorPattern finds the first colon or dash-like separator
	// dividing an activity's title from its inline description.
	titleSeparatorPattern = regexp.MustCompile(`[:\-–—]`)

	// locationPatterns are tried in order against marker and continuation
	// lines; the first capture wins. The generator writes locations as
	// "at <place>", "Location: <place>", or a 📍-prefixed phrase.
	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\blocation[:\s]+([^,.]+)`),
		regexp.MustCompile(`(?i)\bat\s+([^,.]+)`),
		regexp.MustCompile(`📍\s*([^,.]+)`),
	}
)

// isActivityMarker reports whether line starts a new activity entry.
func isActivityMarker(line string) bool {
	return activityMarkerPattern.MatchString(line)
}

// isHeadingOrRule reports whether line is structural noise: blank, a
// markdown heading (day headings were already consumed by the segmenter),
// or a horizontal rule.
func isHeadingOrRule(line string) bool {
	return line == "" || strings.HasPrefix(line, "#") || horizontalRulePattern.MatchString(line)
}

// matchLocation extracts a location hint from line, or "" when none of the
// known phrasings appear.
func matchLocation(line string) string {
	for _, p := range locationPatterns {
		if m := p.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractActivities walks a day's lines and accumulates activity drafts.
//
// A marker line finalizes the open draft and starts a new one; any other
// line extends the open draft's description. Lines with no open draft and
// no marker (a day's opening narrative, for example) are dropped — this
// stage never fails, it only ignores what it cannot interpret.
func extractActivities(lines []string) []draft {
	var drafts []draft
	var open *draft

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if isHeadingOrRule(line) {
			continue
		}

		if isActivityMarker(line) {
			if open != nil {
				drafts = appendDraft(drafts, *open)
			}
			d := newDraft(line)
			open = &d
			continue
		}

		if open != nil {
			open.description = append(open.description, line)
			if open.location == "" {
				open.location = matchLocation(line)
			}
		}
	}

	if open != nil {
		drafts = appendDraft(drafts, *open)
	}
	return drafts
}

// newDraft builds a draft from a marker line: the prefix is stripped, the
// text is split at the first separator into title and inline description,
// and the whole text is scanned for a location hint.
func newDraft(line string) draft {
	text := strings.TrimSpace(markerPrefixPattern.ReplaceAllString(line, ""))

	title := text
	var description []string
	if loc := titleSeparatorPattern.FindStringIndex(text); loc != nil {
		title = strings.TrimSpace(text[:loc[0]])
		if rest := strings.TrimSpace(text[loc[1]:]); rest != "" {
			description = []string{rest}
		}
	}

	return draft{
		title:       truncateRunes(title, maxTitleLen),
		description: description,
		location:    matchLocation(text),
	}
}

// appendDraft adds d to drafts unless its title is empty — a record must
// always carry a title, so titleless drafts are dropped like any other
// uninterpretable input.
func appendDraft(drafts []draft, d draft) []draft {
	if d.title == "" {
		return drafts
	}
	return append(drafts, d)
}
