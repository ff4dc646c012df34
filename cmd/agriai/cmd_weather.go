package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agriai/internal/advisor"
)

// weatherCmd fetches a 5-day forecast.
var weatherCmd = &cobra.Command{
	Use:   "weather [location]",
	Short: "5-day weather forecast for a location",
	Long: `Fetches a 5-day forecast with conditions, temperatures, wind, and
humidity.

Example:
  agriai weather "Coimbatore, Tamil Nadu"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		location := strings.TrimSpace(strings.Join(args, " "))
		if location == "" {
			return fmt.Errorf("location must not be blank")
		}

		ctx, cancel := requestContext()
		defer cancel()

		client, err := newAdvisorClient(ctx)
		if err != nil {
			return err
		}

		fc, err := client.WeatherForecast(ctx, location, app.Lang)
		if err != nil {
			logger.Error("weather forecast failed", zap.Error(err))
			return fmt.Errorf("%s", advisor.UserMessage(err, err.Error()))
		}

		styles := appStyles()
		fmt.Println(styles.Title.Render("Forecast for " + location))
		printWeatherForecast(fc)
		return nil
	},
}
