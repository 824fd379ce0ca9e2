package services

import (
	"fmt"
	"strings"

	"activityfinder/internal/models/request_models"
)

const (
	noPreferences = "No specific preferences"

	activitySystemPrompt = "You are a family activity finder assistant. Your job is to recommend weekend activities for families based on their specific criteria. Use the web search tool to find current, real activities in their area."
)

const activityPromptTemplate = `Please help me find family activities with these requirements:

**Location:** %[1]s
**Kids' Ages:** %[2]s
**When:** %[3]s
**Travel Distance:** Within %[4]s miles
**Other Preferences:** %[5]s

Using web search, find 5 current weekend family activities in or near %[1]s. For each recommendation, provide:

1. **Bold Activity Title**
2. 2-4 sentences with:
   - Brief description of the activity
   - Why it's good for kids aged %[2]s
   - Location/venue information
   - Any relevant timing or booking details

Focus on activities that are:
- Age-appropriate for %[2]s year olds
- Available during %[3]s
- Family-friendly and engaging
- Currently operating/available

Format each recommendation clearly with bold titles.`

// BuildActivityPrompt renders the search form into the user message sent to the model.
func BuildActivityPrompt(req request_models.ActivityRequest) string {
	prefs := strings.TrimSpace(req.Preferences)
	if prefs == "" {
		prefs = noPreferences
	}
	return fmt.Sprintf(activityPromptTemplate,
		req.City, req.KidsAges, req.Availability, req.TravelDistance, prefs)
}
