package advisor

import "google.golang.org/genai"

// Response schemas for the structured capabilities. Declaring these on the
// request makes the provider return strict JSON matching the shape, which
// the decoder then validates.

var cropRecommendationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"recommendations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"cropName":         {Type: genai.TypeString},
					"suitabilityScore": {Type: genai.TypeNumber},
					"reasoning":        {Type: genai.TypeString},
					"marketDemand": {
						Type: genai.TypeString,
						Enum: []string{"High", "Medium", "Low"},
					},
				},
				Required: []string{"cropName", "suitabilityScore", "reasoning", "marketDemand"},
			},
		},
	},
	Required: []string{"recommendations"},
}

var fertilizerRecommendationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"recommendations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"issueDetected":      {Type: genai.TypeString},
					"recommendationText": {Type: genai.TypeString},
					"recommendedFertilizers": {
						Type:  genai.TypeArray,
						Items: &genai.Schema{Type: genai.TypeString},
					},
					"irrigationAdvice": {Type: genai.TypeString},
				},
				Required: []string{"issueDetected", "recommendationText", "recommendedFertilizers", "irrigationAdvice"},
			},
		},
	},
	Required: []string{"recommendations"},
}

var weatherForecastSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"forecast": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"day":              {Type: genai.TypeString},
					"condition":        {Type: genai.TypeString},
					"high_c":           {Type: genai.TypeNumber},
					"low_c":            {Type: genai.TypeNumber},
					"wind_kph":         {Type: genai.TypeNumber},
					"humidity_percent": {Type: genai.TypeNumber},
				},
				Required: []string{"day", "condition", "high_c", "low_c", "wind_kph", "humidity_percent"},
			},
		},
	},
	Required: []string{"forecast"},
}
