package client

import (
	"strings"

	"activityfinder/internal/models/request_models"
)

// ValidateForm returns a message per blank required field, keyed by the
// field's JSON name. An empty map means the form can be submitted.
func ValidateForm(form request_models.ActivityRequest) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(form.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(form.KidsAges) == "" {
		errs["kidsAges"] = "Kids ages are required"
	}
	if strings.TrimSpace(form.Availability) == "" {
		errs["availability"] = "Availability is required"
	}
	if strings.TrimSpace(form.TravelDistance) == "" {
		errs["travelDistance"] = "Travel distance is required"
	}
	return errs
}
