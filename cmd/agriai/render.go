package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"agriai/internal/advisor"
)

// renderMarkdown renders model markdown for the terminal. On renderer
// failure the raw text is shown instead of nothing.
func renderMarkdown(text string) string {
	style := "light"
	if appStyles().Theme.IsDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}

// printCropRecommendations renders the structured crop picks.
func printCropRecommendations(recs *advisor.CropRecommendations) {
	styles := appStyles()
	for _, r := range recs.Recommendations {
		fmt.Println(styles.Bold.Render(fmt.Sprintf("%s  %.1f/10", r.CropName, r.SuitabilityScore)))
		fmt.Println(styles.Muted.Render("Market demand: " + string(r.MarketDemand)))
		fmt.Println(styles.Body.Render(r.Reasoning))
		fmt.Println()
	}
}

// printFertilizerRecommendations renders the structured diagnosis.
func printFertilizerRecommendations(recs *advisor.FertilizerRecommendations) {
	styles := appStyles()
	for _, r := range recs.Recommendations {
		fmt.Println(styles.Bold.Render("Issue: " + r.IssueDetected))
		fmt.Println(styles.Body.Render(r.RecommendationText))
		if len(r.RecommendedFertilizers) > 0 {
			fmt.Println(styles.Muted.Render("Fertilizers: " + strings.Join(r.RecommendedFertilizers, ", ")))
		}
		if r.IrrigationAdvice != "" {
			fmt.Println(styles.Muted.Render("Irrigation: " + r.IrrigationAdvice))
		}
		fmt.Println()
	}
}

// printWeatherForecast renders the 5-day forecast.
func printWeatherForecast(fc *advisor.WeatherForecast) {
	styles := appStyles()
	for _, d := range fc.Forecast {
		fmt.Printf("%s  %s\n",
			styles.Bold.Render(fmt.Sprintf("%-10s", d.Day)),
			styles.Body.Render(fmt.Sprintf("%-14s  %2.0f°C / %2.0f°C  wind %.0f km/h  humidity %.0f%%",
				d.Condition, d.HighC, d.LowC, d.WindKPH, d.HumidityPercent)))
	}
}

// printMarketAnalysis renders the price analysis.
func printMarketAnalysis(m *advisor.MarketAnalysis) {
	styles := appStyles()
	fmt.Println(styles.Bold.Render(m.Crop))
	fmt.Printf("High $%.2f   Average $%.2f   Low $%.2f\n", m.PriceHighUSD, m.PriceAverageUSD, m.PriceLowUSD)
	fmt.Println(styles.Muted.Render("Outlook: " + string(m.DemandOutlook)))
	fmt.Println(styles.Body.Render(m.MarketInsights))
}
