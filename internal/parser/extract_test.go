package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- predicates ------------------------------------------------------------

func TestIsActivityMarker(t *testing.T) {
	markers := []string{"- hike", "* swim", "• dive", "1. eat", "2) drink", "12. rest"}
	for _, line := range markers {
		assert.True(t, isActivityMarker(line), "line %q", line)
	}

	notMarkers := []string{"hike", "-no space", "1.no space", "just - a dash", ""}
	for _, line := range notMarkers {
		assert.False(t, isActivityMarker(line), "line %q", line)
	}
}

func TestIsHeadingOrRule(t *testing.T) {
	skipped := []string{"", "# Tips", "### Notes", "---", "----", "===", "======"}
	for _, line := range skipped {
		assert.True(t, isHeadingOrRule(line), "line %q", line)
	}

	kept := []string{"--", "==", "- bullet", "plain prose"}
	for _, line := range kept {
		assert.False(t, isHeadingOrRule(line), "line %q", line)
	}
}

func TestMatchLocation(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"Hike at Zion Canyon", "Zion Canyon"},
		{"Location: Pike Place Market", "Pike Place Market"},
		{"location Pike Place Market", "Pike Place Market"},
		{"📍 Trevi Fountain", "Trevi Fountain"},
		{"Dinner at Luigi's, then a walk", "Luigi's"},
		{"Great views of the skyline", ""}, // "at" inside a word is not a location
		{"nothing to see here", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, matchLocation(tc.line), "line %q", tc.line)
	}
}

// ---- extractActivities -----------------------------------------------------

func TestExtractActivities_TitleAndInlineDescription(t *testing.T) {
	drafts := extractActivities([]string{"- Visit the Louvre: see the Mona Lisa"})

	require.Len(t, drafts, 1)
	assert.Equal(t, "Visit the Louvre", drafts[0].title)
	assert.Equal(t, []string{"see the Mona Lisa"}, drafts[0].description)
}

func TestExtractActivities_DashSeparator(t *testing.T) {
	drafts := extractActivities([]string{"1. Louvre Museum - world famous art"})

	require.Len(t, drafts, 1)
	assert.Equal(t, "Louvre Museum", drafts[0].title)
	assert.Equal(t, []string{"world famous art"}, drafts[0].description)
}

func TestExtractActivities_ContinuationLines(t *testing.T) {
	drafts := extractActivities([]string{
		"- Old town walking tour",
		"Meet your guide by the fountain",
		"Wear comfortable shoes",
	})

	require.Len(t, drafts, 1)
	assert.Equal(t, "Old town walking tour", drafts[0].title)
	assert.Equal(t, []string{
		"Meet your guide by the fountain",
		"Wear comfortable shoes",
	}, drafts[0].description)
}

func TestExtractActivities_MarkerClosesPriorDraft(t *testing.T) {
	drafts := extractActivities([]string{
		"- First stop",
		"some detail",
		"- Second stop",
	})

	require.Len(t, drafts, 2)
	assert.Equal(t, "First stop", drafts[0].title)
	assert.Equal(t, "Second stop", drafts[1].title)
	assert.Empty(t, drafts[1].description)
}

func TestExtractActivities_LeadingProseDiscarded(t *testing.T) {
	drafts := extractActivities([]string{
		"Your day begins bright and early.",
		"- Sunrise balloon ride",
	})

	require.Len(t, drafts, 1)
	assert.Equal(t, "Sunrise balloon ride", drafts[0].title)
}

func TestExtractActivities_LocationNeverOverwritten(t *testing.T) {
	drafts := extractActivities([]string{
		"- Coffee at Blue Bottle",
		"Then a stroll at Golden Gate Park",
	})

	require.Len(t, drafts, 1)
	assert.Equal(t, "Blue Bottle", drafts[0].location)
}

func TestExtractActivities_EmptyTitleDropped(t *testing.T) {
	// A bullet that is all separator yields no usable title; the draft is
	// dropped rather than producing a titleless record.
	drafts := extractActivities([]string{"- : just a description"})

	assert.Empty(t, drafts)
}

func TestExtractActivities_NoLines(t *testing.T) {
	assert.Empty(t, extractActivities(nil))
	assert.Empty(t, extractActivities([]string{"", "  ", "---"}))
}

func TestExtractActivities_TruncatesTitleAtCreation(t *testing.T) {
	long := "- " + repeatRune('t', 200)
	drafts := extractActivities([]string{long})

	require.Len(t, drafts, 1)
	assert.Len(t, []rune(drafts[0].title), maxTitleLen)
}

// repeatRune builds a string of n copies of r.
func repeatRune(r rune, n int) string {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = r
	}
	return string(runes)
}
