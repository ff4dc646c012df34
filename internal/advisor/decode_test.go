package advisor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marketJSON = `{"crop": "Corn", "priceHighUSD": 7.2, "priceAverageUSD": 6.5, "priceLowUSD": 5.9, "demandOutlook": "Strong", "marketInsights": "Exports are up."}`

func TestUnwrapFencedJSON(t *testing.T) {
	t.Run("fenced block extracted", func(t *testing.T) {
		body := "Here is the analysis:\n```json\n" + marketJSON + "\n```\nLet me know if you need more."
		assert.Equal(t, marketJSON, unwrapFencedJSON(body))
	})

	t.Run("bare body passes through trimmed", func(t *testing.T) {
		assert.Equal(t, marketJSON, unwrapFencedJSON("  \n"+marketJSON+"\n  "))
	})
}

func TestDecodeMarketAnalysis(t *testing.T) {
	want := MarketAnalysis{
		Crop:            "Corn",
		PriceHighUSD:    7.2,
		PriceAverageUSD: 6.5,
		PriceLowUSD:     5.9,
		DemandOutlook:   OutlookStrong,
		MarketInsights:  "Exports are up.",
	}

	t.Run("fenced", func(t *testing.T) {
		var got MarketAnalysis
		require.NoError(t, decodeStrict(unwrapFencedJSON("```json\n"+marketJSON+"\n```"), &got))
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("unfenced", func(t *testing.T) {
		var got MarketAnalysis
		require.NoError(t, decodeStrict(unwrapFencedJSON(marketJSON), &got))
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("unknown outlook rejected", func(t *testing.T) {
		var got MarketAnalysis
		err := decodeStrict(`{"crop":"Corn","demandOutlook":"Bullish"}`, &got)
		assert.Error(t, err)
	})

	t.Run("missing crop rejected", func(t *testing.T) {
		var got MarketAnalysis
		err := decodeStrict(`{"demandOutlook":"Stable"}`, &got)
		assert.Error(t, err)
	})
}

func TestDecodeCropRecommendations(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		body := `{"recommendations":[{"cropName":"Rice","suitabilityScore":8.5,"reasoning":"Clay soil holds water well.","marketDemand":"High"}]}`
		var got CropRecommendations
		require.NoError(t, decodeStrict(body, &got))
		require.Len(t, got.Recommendations, 1)
		assert.Equal(t, "Rice", got.Recommendations[0].CropName)
		assert.Equal(t, DemandHigh, got.Recommendations[0].MarketDemand)
	})

	t.Run("empty list rejected", func(t *testing.T) {
		var got CropRecommendations
		assert.Error(t, decodeStrict(`{"recommendations":[]}`, &got))
	})

	t.Run("score out of range rejected", func(t *testing.T) {
		body := `{"recommendations":[{"cropName":"Rice","suitabilityScore":11,"reasoning":"x","marketDemand":"High"}]}`
		var got CropRecommendations
		assert.Error(t, decodeStrict(body, &got))
	})

	t.Run("unknown demand rejected", func(t *testing.T) {
		body := `{"recommendations":[{"cropName":"Rice","suitabilityScore":7,"reasoning":"x","marketDemand":"Huge"}]}`
		var got CropRecommendations
		assert.Error(t, decodeStrict(body, &got))
	})

	t.Run("malformed JSON rejected", func(t *testing.T) {
		var got CropRecommendations
		assert.Error(t, decodeStrict(`{"recommendations":`, &got))
	})
}

func TestDecodeFertilizerRecommendations(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		body := `{"recommendations":[{"issueDetected":"Nitrogen deficiency","recommendationText":"Apply urea in split doses.","recommendedFertilizers":["Urea","NPK 10-20-10"],"irrigationAdvice":"Water twice a day."}]}`
		var got FertilizerRecommendations
		require.NoError(t, decodeStrict(body, &got))
		require.Len(t, got.Recommendations, 1)
		assert.Equal(t, []string{"Urea", "NPK 10-20-10"}, got.Recommendations[0].RecommendedFertilizers)
	})

	t.Run("missing issue rejected", func(t *testing.T) {
		body := `{"recommendations":[{"recommendationText":"x","recommendedFertilizers":[],"irrigationAdvice":"y"}]}`
		var got FertilizerRecommendations
		assert.Error(t, decodeStrict(body, &got))
	})
}

func TestDecodeWeatherForecast(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		body := `{"forecast":[{"day":"Monday","condition":"Sunny","high_c":34,"low_c":26,"wind_kph":12,"humidity_percent":60}]}`
		var got WeatherForecast
		require.NoError(t, decodeStrict(body, &got))
		require.Len(t, got.Forecast, 1)
		assert.Equal(t, "Monday", got.Forecast[0].Day)
		assert.Equal(t, 34.0, got.Forecast[0].HighC)
	})

	t.Run("empty forecast rejected", func(t *testing.T) {
		var got WeatherForecast
		assert.Error(t, decodeStrict(`{"forecast":[]}`, &got))
	})

	t.Run("missing condition rejected", func(t *testing.T) {
		body := `{"forecast":[{"day":"Monday","high_c":34,"low_c":26,"wind_kph":12,"humidity_percent":60}]}`
		var got WeatherForecast
		assert.Error(t, decodeStrict(body, &got))
	})
}
