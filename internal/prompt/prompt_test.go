package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriai/internal/locale"
)

func TestBuildContainsParams(t *testing.T) {
	p := Params{Season: "Autumn", Crop: "Cotton", Month: "September", Location: "Coimbatore"}

	cases := []struct {
		cap   Capability
		wants []string
	}{
		{SoilAnalysis, nil},
		{CropRecommendation, []string{"Autumn"}},
		{FertilizerRecommendation, []string{"Cotton"}},
		{MarketAnalysis, []string{"Cotton", "Autumn", "September"}},
		{WeatherForecast, []string{"Coimbatore"}},
		{ChatSystem, nil},
	}

	for _, tc := range cases {
		for _, l := range locale.Supported() {
			t.Run(string(tc.cap)+"/"+string(l), func(t *testing.T) {
				got, err := Build(tc.cap, l, p)
				require.NoError(t, err)
				assert.NotEmpty(t, got)
				for _, want := range tc.wants {
					assert.Contains(t, got, want)
				}
				// Sprintf verb left unfilled would surface as an EXTRA/MISSING marker.
				assert.NotContains(t, got, "%!")
				assert.NotContains(t, got, "%s")
			})
		}
	}
}

func TestBuildMarketAnalysisStructure(t *testing.T) {
	got, err := Build(MarketAnalysis, locale.English, Params{Crop: "Rice", Season: "Summer", Month: "June"})
	require.NoError(t, err)

	// The crop name appears both in the request and inside the JSON example.
	assert.Equal(t, 2, strings.Count(got, "Rice"))
	assert.Contains(t, got, "```json")
	assert.Contains(t, got, `"crop": "Rice"`)
	assert.Contains(t, got, `"demandOutlook"`)
}

func TestBuildWeatherSharedAcrossLocales(t *testing.T) {
	p := Params{Location: "Madurai"}
	en, err := Build(WeatherForecast, locale.English, p)
	require.NoError(t, err)
	ta, err := Build(WeatherForecast, locale.Tamil, p)
	require.NoError(t, err)
	assert.Equal(t, en, ta)
}

func TestBuildLocalizedTemplatesDiffer(t *testing.T) {
	for _, c := range []Capability{SoilAnalysis, CropRecommendation, FertilizerRecommendation, MarketAnalysis, ChatSystem} {
		p := Params{Season: "Spring", Crop: "Corn", Month: "March"}
		en, err := Build(c, locale.English, p)
		require.NoError(t, err)
		ta, err := Build(c, locale.Tamil, p)
		require.NoError(t, err)
		assert.NotEqual(t, en, ta, "capability %s", c)
	}
}

func TestBuildErrors(t *testing.T) {
	t.Run("unknown capability", func(t *testing.T) {
		_, err := Build(Capability("pestControl"), locale.English, Params{})
		assert.Error(t, err)
	})

	t.Run("unsupported locale", func(t *testing.T) {
		_, err := Build(SoilAnalysis, locale.Locale("fr"), Params{})
		assert.Error(t, err)
	})
}
