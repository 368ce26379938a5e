package planner

import (
	"fmt"
	"strings"

	"github.com/tripforge/backend/internal/domain"
)

// systemPrompt instructs the model to emit the day-by-day markdown shape the
// parser expects. The parser tolerates deviations, but a well-shaped prompt
// keeps extraction quality high.
const systemPrompt = `You are an expert travel guide and itinerary planner. Create detailed, practical, and engaging travel itineraries.

Format your response as follows:
- Use clear day-by-day sections (Day 1, Day 2, etc.)
- For each day, list activities with:
  * Activity name/title
  * Brief description
  * Recommended time (if applicable)
  * Location (if specific)
- Include practical tips and recommendations
- Make it engaging and tailored to the user's interests

Use markdown formatting with clear headings for each day.`

// difficultyPhrases expands the request's difficulty code into prompt text.
var difficultyPhrases = map[string]string{
	"easy":        "easy and relaxed",
	"moderate":    "moderate",
	"challenging": "challenging and adventurous",
	"extreme":     "extreme and very strenuous",
}

// budgetRangePhrases expands the request's budget-range code into prompt text.
var budgetRangePhrases = map[string]string{
	"budget":      "budget-friendly (under $500 per person)",
	"moderate":    "moderate ($500 - $1,500 per person)",
	"comfortable": "comfortable ($1,500 - $3,000 per person)",
	"luxury":      "luxury ($3,000+ per person)",
}

// buildPrompt assembles the user prompt from trip preferences. Optional
// fields contribute a sentence only when set.
func buildPrompt(req domain.GenerateRequest) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("You are an expert travel guide. Plan a %d-day trip to %s.", req.Duration(), req.Destination))

	if req.GroupSize != "" {
		parts = append(parts, fmt.Sprintf("Traveling as: %s.", req.GroupSize))
	}
	if len(req.TravelingWith) > 0 {
		parts = append(parts, fmt.Sprintf("Traveling with: %s.", strings.Join(req.TravelingWith, ", ")))
	}
	if len(req.Interests) > 0 {
		parts = append(parts, fmt.Sprintf("Interests and activities: %s.", strings.Join(req.Interests, ", ")))
	}
	if req.Difficulty != "" {
		phrase, ok := difficultyPhrases[req.Difficulty]
		if !ok {
			phrase = req.Difficulty
		}
		parts = append(parts, fmt.Sprintf("Activity level: %s.", phrase))
	}
	if req.Budget != "" {
		parts = append(parts, fmt.Sprintf("Budget: $%s total for the trip.", req.Budget))
	} else if req.BudgetRange != "" {
		phrase, ok := budgetRangePhrases[req.BudgetRange]
		if !ok {
			phrase = req.BudgetRange
		}
		parts = append(parts, fmt.Sprintf("Budget range: %s.", phrase))
	}
	if req.Description != "" {
		parts = append(parts, fmt.Sprintf("Additional preferences: %s", req.Description))
	}

	parts = append(parts, `Please create a detailed day-by-day itinerary with:
- Specific activities and attractions for each day
- Recommended times for each activity
- Practical tips and recommendations
- Restaurant suggestions (if applicable)
- Transportation options
- Any special considerations based on the group and interests

Format the response in clear sections for each day. Make it practical, engaging, and tailored to the specified interests and activity level.`)

	return strings.Join(parts, " ")
}
