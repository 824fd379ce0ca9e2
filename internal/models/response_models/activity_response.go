package response_models

type Activity struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ActivityResponse struct {
	Success    bool       `json:"success"`
	Activities []Activity `json:"activities"`
	Count      int        `json:"count"`
	Note       string     `json:"note,omitempty"`
}

// NewActivityResponse keeps Count in step with the activity list.
func NewActivityResponse(activities []Activity, note string) ActivityResponse {
	if activities == nil {
		activities = []Activity{}
	}
	return ActivityResponse{
		Success:    true,
		Activities: activities,
		Count:      len(activities),
		Note:       note,
	}
}

type ErrorResponse struct {
	Error    string   `json:"error"`
	Message  string   `json:"message,omitempty"`
	Required []string `json:"required,omitempty"`
	Details  string   `json:"details,omitempty"`
}

type HealthResponse struct {
	Status              string `json:"status"`
	Timestamp           string `json:"timestamp"`
	AnthropicConfigured bool   `json:"anthropicConfigured"`
	Provider            string `json:"provider"`
}
