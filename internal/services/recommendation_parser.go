package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"activityfinder/internal/models/response_models"
)

const (
	maxActivities = 5

	// A line holding a bold span is only a title when it is shorter than this, in characters.
	maxTitleLineLength = 100

	excerptLength = 300
)

const (
	parseFallbackNoTitles = "no_titles"
	parseFallbackPanic    = "panic"
)

var (
	boldSpanPattern     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	numberedLinePattern = regexp.MustCompile(`^\d+\.`)
)

// cleanLine normalises one reply line before it is classified.
var cleanLine = strings.TrimSpace

// ParseRecommendations turns the model's markdown reply into at most five
// activities. It never fails: unparseable text becomes a single summary entry.
func ParseRecommendations(text string) []response_models.Activity {
	activities, _ := parseRecommendations(text)
	return activities
}

// parseRecommendations also reports which fallback, if any, produced the result.
func parseRecommendations(text string) (activities []response_models.Activity, fallback string) {
	defer func() {
		if r := recover(); r != nil {
			activities = []response_models.Activity{{
				ID:          1,
				Title:       "Error Processing Recommendations",
				Description: "We encountered an issue processing the recommendations. Please try again.",
			}}
			fallback = parseFallbackPanic
		}
	}()

	var current *response_models.Activity
	flush := func() {
		if current != nil && strings.TrimSpace(current.Description) != "" {
			activities = append(activities, *current)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := cleanLine(line)

		if m := boldSpanPattern.FindStringSubmatch(trimmed); m != nil && utf8.RuneCountInString(trimmed) < maxTitleLineLength {
			flush()
			current = &response_models.Activity{
				ID:    len(activities) + 1,
				Title: m[1],
			}
			continue
		}

		if current == nil || trimmed == "" || numberedLinePattern.MatchString(trimmed) {
			continue
		}
		if current.Description != "" {
			current.Description += " "
		}
		current.Description += trimmed
	}
	flush()

	if len(activities) == 0 {
		return []response_models.Activity{{
			ID:          1,
			Title:       "Activity Recommendations",
			Description: excerpt(text, excerptLength) + "...",
		}}, parseFallbackNoTitles
	}

	if len(activities) > maxActivities {
		activities = activities[:maxActivities]
	}
	return activities, ""
}

// excerpt returns the first n characters of s without splitting a multi-byte rune.
func excerpt(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
