package request_models

import "strings"

type ActivityRequest struct {
	City           string `json:"city"`
	KidsAges       string `json:"kidsAges"`
	Availability   string `json:"availability"`
	TravelDistance string `json:"travelDistance"`
	Preferences    string `json:"preferences,omitempty"`
}

// MissingFields returns the JSON names of required fields that are absent or blank, in form order.
func (r ActivityRequest) MissingFields() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"city", r.City},
		{"kidsAges", r.KidsAges},
		{"availability", r.Availability},
		{"travelDistance", r.TravelDistance},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
