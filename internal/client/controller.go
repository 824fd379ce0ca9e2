package client

import (
	"context"
	"fmt"
	"io"
	"sort"

	"activityfinder/internal/models/request_models"
	"activityfinder/internal/models/response_models"

	"go.uber.org/zap"
)

const GeneralErrorMessage = "Unable to get recommendations. Please check your connection and try again."

// localActivities are shown when the backend cannot be reached.
var localActivities = []response_models.Activity{
	{
		ID:          1,
		Title:       "Seattle Children's Museum",
		Description: "Interactive exhibits perfect for curious minds aged 6-10. Features hands-on science experiments, art studios, and imaginative play areas. Located in the heart of Seattle Center, just 8 miles from downtown. Open weekends 10am-5pm with $15 admission.",
	},
	{
		ID:          2,
		Title:       "Discovery Park Adventure Trail",
		Description: "Family-friendly hiking trails with stunning Puget Sound views. The easy 2-mile loop trail is perfect for kids who love nature and wildlife spotting. Free parking and admission, just 12 miles north. Great for Saturday afternoon adventures with picnic areas available.",
	},
	{
		ID:          3,
		Title:       "Woodland Park Zoo Safari Experience",
		Description: "Home to over 1,000 animals from around the world in naturalistic habitats. Educational keeper talks throughout the day make it engaging for school-age children. Located 10 miles from city center with $25 family passes. Perfect for weekend exploration and learning.",
	},
	{
		ID:          4,
		Title:       "Alki Beach Playground & Splash Pad",
		Description: "Beach playground featuring modern equipment and a splash pad for hot days. Kids can build sandcastles while parents enjoy coffee from nearby cafes. Free public access with plenty of parking, just 15 miles west. Ideal for active families seeking outdoor fun.",
	},
	{
		ID:          5,
		Title:       "Pacific Science Center IMAX Theater",
		Description: "Immersive educational films on a giant screen that captivate kids and adults alike. Current features include nature documentaries and space exploration films. Located at Seattle Center, 8 miles from downtown. Weekend shows every hour with $18 tickets including museum access.",
	},
}

// LocalActivities returns a copy of the canned offline recommendations.
func LocalActivities() []response_models.Activity {
	out := make([]response_models.Activity, len(localActivities))
	copy(out, localActivities)
	return out
}

type ActivityFinder interface {
	FindActivities(ctx context.Context, form request_models.ActivityRequest) (response_models.ActivityResponse, error)
}

// Result is what one submission rendered. FieldErrors set means nothing was sent.
type Result struct {
	FieldErrors  map[string]string
	GeneralError string
	Activities   []response_models.Activity
	Note         string
	UsedFallback bool
}

type Controller struct {
	finder ActivityFinder
	logger *zap.Logger
}

func NewController(finder ActivityFinder, logger *zap.Logger) *Controller {
	return &Controller{finder: finder, logger: logger}
}

// Submit validates the form and, if valid, asks the backend. On any backend
// failure the local activities are used instead.
func (c *Controller) Submit(ctx context.Context, form request_models.ActivityRequest) Result {
	if errs := ValidateForm(form); len(errs) > 0 {
		return Result{FieldErrors: errs}
	}

	c.logger.Debug("calling backend api", zap.String("city", form.City))
	resp, err := c.finder.FindActivities(ctx, form)
	if err != nil {
		c.logger.Warn("backend call failed, falling back to local activities", zap.Error(err))
		return Result{
			GeneralError: GeneralErrorMessage,
			Activities:   LocalActivities(),
			UsedFallback: true,
		}
	}

	return Result{
		Activities: resp.Activities,
		Note:       resp.Note,
	}
}

// Render writes the result as plain text.
func Render(w io.Writer, res Result) error {
	if len(res.FieldErrors) > 0 {
		fields := make([]string, 0, len(res.FieldErrors))
		for f := range res.FieldErrors {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			if _, err := fmt.Fprintf(w, "%s: %s\n", f, res.FieldErrors[f]); err != nil {
				return err
			}
		}
		return nil
	}

	if res.GeneralError != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", res.GeneralError); err != nil {
			return err
		}
	}
	if res.Note != "" {
		if _, err := fmt.Fprintf(w, "Note: %s\n\n", res.Note); err != nil {
			return err
		}
	}
	for _, a := range res.Activities {
		if _, err := fmt.Fprintf(w, "%d. %s\n   %s\n\n", a.ID, a.Title, a.Description); err != nil {
			return err
		}
	}
	return nil
}
