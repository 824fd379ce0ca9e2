package services

import (
	"fmt"
	"strings"

	"activityfinder/internal/models/request_models"
	"activityfinder/internal/models/response_models"
)

const (
	demoModeNote = "Demo mode: Real-time search temporarily unavailable. These are example recommendations based on your criteria."
	budgetNote   = " Budget-friendly with affordable admission."
)

// activityTemplate descriptions take, in order: kidsAges, city, travelDistance, availability.
type activityTemplate struct {
	title       string
	description string
}

var defaultTemplates = []activityTemplate{
	{
		title:       "Local Children's Museum",
		description: "Interactive exhibits perfect for kids aged %[1]s. Features hands-on science experiments, art studios, and imaginative play areas. Located in %[2]s area, within %[3]s miles. Great for %[4]s with educational activities.",
	},
	{
		title:       "City Park Adventure Trail",
		description: "Family-friendly trails with scenic views perfect for children aged %[1]s. The easy loop trail offers nature exploration and wildlife spotting. Free admission within %[3]s miles of %[2]s. Ideal for %[4]s outdoor adventures.",
	},
	{
		title:       "Local Zoo or Wildlife Experience",
		description: "Home to diverse animals in naturalistic habitats, educational for kids aged %[1]s. Educational programs throughout the day make it engaging. Located within %[3]s miles of %[2]s, perfect for %[4]s family learning.",
	},
	{
		title:       "Community Recreation Center",
		description: "Modern facility featuring activities for children aged %[1]s. Indoor and outdoor play areas with organized activities. Located in %[2]s area within %[3]s miles. Great for %[4]s active family fun.",
	},
	{
		title:       "Local Library or Cultural Center",
		description: "Interactive programs and events designed for kids aged %[1]s. Features storytimes, maker spaces, and educational workshops. Located in %[2]s within %[3]s miles. Perfect for %[4]s learning and creativity.",
	},
}

var teenTemplates = []activityTemplate{
	{
		title:       "Escape Room Challenge",
		description: "Immersive puzzle-solving experience perfect for teenagers aged %[1]s. Multiple themed rooms with varying difficulty levels. Located in %[2]s within %[3]s miles. Great for %[4]s group activities and team building.",
	},
	{
		title:       "Rock Climbing Gym or Adventure Center",
		description: "Indoor climbing walls and adventure courses designed for teens aged %[1]s. Professional instruction and safety equipment provided. Located within %[3]s miles of %[2]s. Perfect for %[4]s active entertainment.",
	},
	{
		title:       "Arcade & Entertainment Complex",
		description: "Modern gaming center with VR experiences, laser tag, and arcade games for teenagers aged %[1]s. Food court and social areas available. Located in %[2]s area within %[3]s miles. Ideal for %[4]s social activities.",
	},
	{
		title:       "Mini Golf & Go-Kart Complex",
		description: "Outdoor entertainment venue featuring mini golf and go-kart racing suitable for teens aged %[1]s. Competitive activities and group packages available. Within %[3]s miles of %[2]s. Great for %[4]s active fun.",
	},
	{
		title:       "Movie Theater & Entertainment District",
		description: "Modern cinema complex with latest releases and IMAX experiences for teenagers aged %[1]s. Shopping and dining options nearby. Located in %[2]s within %[3]s miles. Perfect for %[4]s entertainment.",
	},
}

// GenerateFallbackActivities builds the canned recommendations served when the
// model cannot be used. It always returns five activities with ids 1..5.
func GenerateFallbackActivities(req request_models.ActivityRequest) []response_models.Activity {
	prefs := strings.ToLower(req.Preferences)

	if strings.Contains(prefs, "teenager") {
		return renderTemplates(teenTemplates, req, false)
	}

	templates := make([]activityTemplate, len(defaultTemplates))
	copy(templates, defaultTemplates)

	if strings.Contains(prefs, "outdoor") {
		templates[1].title = "Nature Trail & Outdoor Adventure"
		templates[3].title = "Outdoor Sports Complex"
	}

	return renderTemplates(templates, req, strings.Contains(prefs, "budget"))
}

func renderTemplates(templates []activityTemplate, req request_models.ActivityRequest, budget bool) []response_models.Activity {
	activities := make([]response_models.Activity, 0, len(templates))
	for i, t := range templates {
		desc := fmt.Sprintf(t.description, req.KidsAges, req.City, req.TravelDistance, req.Availability)
		if budget {
			desc += budgetNote
		}
		activities = append(activities, response_models.Activity{
			ID:          i + 1,
			Title:       t.title,
			Description: desc,
		})
	}
	return activities
}
