package main

import (
	"log"
	"os"

	"activityfinder/internal/client"
	"activityfinder/internal/models/request_models"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "finder",
		Usage: "find weekend family activities",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api", Value: client.DefaultBaseURL, Usage: "activity finder API base URL", EnvVars: []string{"FINDER_API_URL"}},
			&cli.StringFlag{Name: "city", Usage: "city or area to search"},
			&cli.StringFlag{Name: "ages", Usage: "kids' ages, e.g. 6-10"},
			&cli.StringFlag{Name: "when", Usage: "availability, e.g. Saturday afternoon"},
			&cli.StringFlag{Name: "distance", Usage: "travel distance in miles"},
			&cli.StringFlag{Name: "preferences", Usage: "other preferences (optional)"},
			&cli.BoolFlag{Name: "verbose", Usage: "log backend calls"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	logger := zap.NewNop()
	if c.Bool("verbose") {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	form := request_models.ActivityRequest{
		City:           c.String("city"),
		KidsAges:       c.String("ages"),
		Availability:   c.String("when"),
		TravelDistance: c.String("distance"),
		Preferences:    c.String("preferences"),
	}

	controller := client.NewController(client.New(c.String("api")), logger)
	res := controller.Submit(c.Context, form)
	if err := client.Render(os.Stdout, res); err != nil {
		return err
	}
	if len(res.FieldErrors) > 0 {
		return cli.Exit("", 2)
	}
	return nil
}
