// Package advisor dispatches capability requests to the Gemini API and
// decodes the responses into typed results.
package advisor

import (
	"errors"
	"fmt"

	"agriai/internal/locale"
	"agriai/internal/prompt"
)

// Image is raw picture data attached to a request.
type Image struct {
	Data     []byte
	MIMEType string
}

// MarketDemand is the demand level attached to a recommended crop.
type MarketDemand string

const (
	DemandHigh   MarketDemand = "High"
	DemandMedium MarketDemand = "Medium"
	DemandLow    MarketDemand = "Low"
)

// DemandOutlook is the market outlook in a market analysis.
type DemandOutlook string

const (
	OutlookStrong DemandOutlook = "Strong"
	OutlookStable DemandOutlook = "Stable"
	OutlookWeak   DemandOutlook = "Weak"
)

// RecommendedCrop is one entry in a crop recommendation.
type RecommendedCrop struct {
	CropName         string       `json:"cropName"`
	SuitabilityScore float64      `json:"suitabilityScore"`
	Reasoning        string       `json:"reasoning"`
	MarketDemand     MarketDemand `json:"marketDemand"`
}

// CropRecommendations is the structured crop recommendation result.
type CropRecommendations struct {
	Recommendations []RecommendedCrop `json:"recommendations"`
}

// Validate checks the decoded result for the shape the product relies on.
func (c *CropRecommendations) Validate() error {
	if len(c.Recommendations) == 0 {
		return fmt.Errorf("no crop recommendations returned")
	}
	for i, r := range c.Recommendations {
		if r.CropName == "" {
			return fmt.Errorf("recommendation %d has no crop name", i)
		}
		if r.SuitabilityScore < 0 || r.SuitabilityScore > 10 {
			return fmt.Errorf("recommendation %d has suitability score %v out of range", i, r.SuitabilityScore)
		}
		switch r.MarketDemand {
		case DemandHigh, DemandMedium, DemandLow:
		default:
			return fmt.Errorf("recommendation %d has unknown market demand %q", i, r.MarketDemand)
		}
	}
	return nil
}

// FertilizerRecommendation is one diagnosis with treatment advice.
type FertilizerRecommendation struct {
	IssueDetected          string   `json:"issueDetected"`
	RecommendationText     string   `json:"recommendationText"`
	RecommendedFertilizers []string `json:"recommendedFertilizers"`
	IrrigationAdvice       string   `json:"irrigationAdvice"`
}

// FertilizerRecommendations is the structured fertilizer result.
type FertilizerRecommendations struct {
	Recommendations []FertilizerRecommendation `json:"recommendations"`
}

// Validate checks the decoded result.
func (f *FertilizerRecommendations) Validate() error {
	if len(f.Recommendations) == 0 {
		return fmt.Errorf("no fertilizer recommendations returned")
	}
	for i, r := range f.Recommendations {
		if r.IssueDetected == "" {
			return fmt.Errorf("recommendation %d has no issue detected", i)
		}
		if r.RecommendationText == "" {
			return fmt.Errorf("recommendation %d has no recommendation text", i)
		}
	}
	return nil
}

// WeatherDay is one day of the forecast.
type WeatherDay struct {
	Day             string  `json:"day"`
	Condition       string  `json:"condition"`
	HighC           float64 `json:"high_c"`
	LowC            float64 `json:"low_c"`
	WindKPH         float64 `json:"wind_kph"`
	HumidityPercent float64 `json:"humidity_percent"`
}

// WeatherForecast is the structured weather result.
type WeatherForecast struct {
	Forecast []WeatherDay `json:"forecast"`
}

// Validate checks the decoded result.
func (w *WeatherForecast) Validate() error {
	if len(w.Forecast) == 0 {
		return fmt.Errorf("empty forecast returned")
	}
	for i, d := range w.Forecast {
		if d.Day == "" || d.Condition == "" {
			return fmt.Errorf("forecast day %d is missing day or condition", i)
		}
	}
	return nil
}

// MarketAnalysis is the search-augmented market result.
type MarketAnalysis struct {
	Crop            string        `json:"crop"`
	PriceHighUSD    float64       `json:"priceHighUSD"`
	PriceAverageUSD float64       `json:"priceAverageUSD"`
	PriceLowUSD     float64       `json:"priceLowUSD"`
	DemandOutlook   DemandOutlook `json:"demandOutlook"`
	MarketInsights  string        `json:"marketInsights"`
}

// Validate checks the decoded result.
func (m *MarketAnalysis) Validate() error {
	if m.Crop == "" {
		return fmt.Errorf("market analysis has no crop")
	}
	switch m.DemandOutlook {
	case OutlookStrong, OutlookStable, OutlookWeak:
	default:
		return fmt.Errorf("unknown demand outlook %q", m.DemandOutlook)
	}
	return nil
}

// Failure wraps a capability-level error with the short localized message
// shown to the user. The wrapped error carries the raw cause for logs.
type Failure struct {
	Capability  prompt.Capability
	UserMessage string
	Err         error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s failed: %v", f.Capability, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// newFailure builds a Failure carrying the locale's message for the
// capability's failure key.
func newFailure(c prompt.Capability, l locale.Locale, key locale.MessageKey, err error) error {
	return &Failure{Capability: c, UserMessage: locale.Message(l, key), Err: err}
}

// UserMessage returns the localized message for err when it is a Failure,
// or the fallback otherwise.
func UserMessage(err error, fallback string) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.UserMessage
	}
	return fallback
}
