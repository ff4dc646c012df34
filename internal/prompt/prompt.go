// Package prompt builds the request text sent to the model for each
// assistant capability. Every capability has one canonical template per
// supported locale; runtime parameters are interpolated verbatim (the inputs
// are trusted free text from the local user, never escaped).
package prompt

import (
	"fmt"

	"agriai/internal/locale"
)

// Capability identifies one discrete AI-assisted feature.
type Capability string

const (
	SoilAnalysis             Capability = "soilAnalysis"
	CropRecommendation       Capability = "cropRecommendation"
	FertilizerRecommendation Capability = "fertilizerRecommendation"
	MarketAnalysis           Capability = "marketAnalysis"
	WeatherForecast          Capability = "weatherForecast"
	ChatSystem               Capability = "chatSystem"
)

// Params carries the capability-specific values interpolated into a template.
// Only the fields a capability uses are read; the rest are ignored.
type Params struct {
	Season   string
	Crop     string
	Month    string
	Location string
}

const (
	soilAnalysisEN = "Analyze this soil image for agricultural purposes. Provide a report on its likely type, texture, moisture level, and potential suitability for common crops. Suggest possible improvements if any deficiencies are apparent. Format the response as clear, actionable points for a farmer."
	soilAnalysisTA = "இந்த மண் படத்தை விவசாய நோக்கங்களுக்காக பகுப்பாய்வு செய்யவும். அதன் வகை, அமைப்பு, ஈரப்பதம் மற்றும் பொதுவான பயிர்களுக்கு அதன் சாத்தியமான பொருத்தம் குறித்த அறிக்கையை வழங்கவும். ஏதேனும் குறைபாடுகள் இருந்தால் சாத்தியமான மேம்பாடுகளை பரிந்துரைக்கவும். பதிலை ஒரு விவசாயிக்கு தெளிவான, செயல்படக்கூடிய புள்ளிகளாக வடிவமைக்கவும்."

	cropRecommendationEN = "Based on this soil image and for the %s planting season, recommend the top 3-5 most suitable crops. For each crop, provide its name, a suitability score out of 10, a brief reasoning for the recommendation (considering soil type, texture, and season), and the current market demand (High, Medium, or Low)."
	cropRecommendationTA = "இந்த மண் படம் மற்றும் %s நடவுப் பருவத்தின் அடிப்படையில், மிகவும் பொருத்தமான 3-5 பயிர்களைப் பரிந்துரைக்கவும். ஒவ்வொரு பயிருக்கும், அதன் பெயர், 10க்கு ஒரு பொருத்தமான மதிப்பெண், பரிந்துரைக்கான சுருக்கமான காரணம் (மண் வகை, அமைப்பு மற்றும் பருவத்தைக் கருத்தில் கொண்டு), மற்றும் தற்போதைய சந்தை தேவை (உயர், நடுத்தர, அல்லது குறைந்த) ஆகியவற்றை வழங்கவும்."

	fertilizerRecommendationEN = "Act as an expert agronomist. Analyze the attached image of a %s leaf. Identify any visible signs of nutrient deficiency, disease, or water stress. Provide a diagnosis and a set of actionable recommendations. The recommendations should include a primary issue detected, a clear recommendation text, a list of specific fertilizer types to apply (e.g., 'NPK 10-20-10', 'Urea'), and advice on irrigation adjustments (e.g., 'Increase watering frequency to twice a day')."
	fertilizerRecommendationTA = "ஒரு நிபுணர் வேளாண் விஞ்ஞானியாக செயல்படுங்கள். இணைக்கப்பட்டுள்ள %s இலையின் படத்தை பகுப்பாய்வு செய்யுங்கள். ஊட்டச்சத்து குறைபாடு, நோய் அல்லது நீர் அழுத்தத்தின் எந்தவொரு புலப்படும் அறிகுறிகளையும் அடையாளம் காணவும். ஒரு நோயறிதல் மற்றும் செயல்படுத்தக்கூடிய பரிந்துரைகளின் தொகுப்பை வழங்கவும். பரிந்துரைகளில் கண்டறியப்பட்ட முதன்மை சிக்கல், தெளிவான பரிந்துரை உரை, பயன்படுத்த வேண்டிய குறிப்பிட்ட உர வகைகளின் பட்டியல் (எ.கா., 'NPK 10-20-10', 'யூரியா'), மற்றும் நீர்ப்பாசன சரிசெய்தல் குறித்த ஆலோசனை (எ.கா., 'நீர்ப்பாசன அதிர்வெண்ணை ஒரு நாளைக்கு இரண்டு முறையாக அதிகரிக்கவும்') ஆகியவை அடங்கும்."

	marketAnalysisEN = "Provide a market price analysis for %[1]s for the month of %[3]s during the %[2]s season. Use real-time market data. Respond ONLY with a JSON object in the following structure: ```json\n{\"crop\": \"%[1]s\", \"priceHighUSD\": number, \"priceAverageUSD\": number, \"priceLowUSD\": number, \"demandOutlook\": \"Strong\" | \"Stable\" | \"Weak\", \"marketInsights\": \"string\"}\n``` Do not include any text before or after the JSON object."
	marketAnalysisTA = "%[2]s பருவத்தில் %[3]s மாதத்திற்கான %[1]s-க்கான சந்தை விலை பகுப்பாய்வை வழங்கவும். நிகழ்நேர சந்தைத் தரவைப் பயன்படுத்தவும். இந்த அமைப்பில் ஒரு JSON பொருளுடன் மட்டும் பதிலளிக்கவும்: ```json\n{\"crop\": \"%[1]s\", \"priceHighUSD\": number, \"priceAverageUSD\": number, \"priceLowUSD\": number, \"demandOutlook\": \"Strong\" | \"Stable\" | \"Weak\", \"marketInsights\": \"string\"}\n``` JSON பொருளுக்கு முன்னும் பின்னும் எந்த உரையும் சேர்க்க வேண்டாம்."

	// The weather prompt is intentionally English-only; both locales share it.
	weatherForecastEN = "Provide a 5-day weather forecast for %s. Include the day of the week, a short, one or two-word weather condition description (e.g., 'Sunny', 'Partly Cloudy', 'Rain', 'Thunderstorm', 'Snow'), high and low temperatures in Celsius, wind speed in km/h, and humidity percentage. Respond ONLY with a JSON object. Ensure the 'day' is the name of the day (e.g., \"Monday\")."

	chatSystemEN = "You are AgriBot, an AI assistant for farmers. Your goal is to provide expert advice on agriculture, including crop management, soil health, pest control, and market trends. Keep your answers clear, concise, and easy for a farmer to understand and act upon. Respond in the language of the user's query."
	chatSystemTA = "நீங்கள் அக்ரிபாட், விவசாயிகளுக்கான ஒரு AI உதவியாளர். பயிர் மேலாண்மை, மண் ஆரோக்கியம், பூச்சி கட்டுப்பாடு மற்றும் சந்தை போக்குகள் உள்ளிட்ட விவசாயம் குறித்த நிபுணர் ஆலோசனைகளை வழங்குவதே உங்கள் குறிக்கோள். உங்கள் பதில்களை தெளிவாகவும், சுருக்கமாகவும், ஒரு விவசாயி எளிதில் புரிந்துகொண்டு செயல்படக்கூடியதாகவும் வைத்திருங்கள். பயனரின் கேள்விக்கு அவர்களின் மொழியிலேயே பதிலளிக்கவும்."
)

// templates maps capability -> locale -> format string. Templates that take
// no parameters are stored as plain strings.
var templates = map[Capability]map[locale.Locale]string{
	SoilAnalysis: {
		locale.English: soilAnalysisEN,
		locale.Tamil:   soilAnalysisTA,
	},
	CropRecommendation: {
		locale.English: cropRecommendationEN,
		locale.Tamil:   cropRecommendationTA,
	},
	FertilizerRecommendation: {
		locale.English: fertilizerRecommendationEN,
		locale.Tamil:   fertilizerRecommendationTA,
	},
	MarketAnalysis: {
		locale.English: marketAnalysisEN,
		locale.Tamil:   marketAnalysisTA,
	},
	WeatherForecast: {
		locale.English: weatherForecastEN,
		locale.Tamil:   weatherForecastEN,
	},
	ChatSystem: {
		locale.English: chatSystemEN,
		locale.Tamil:   chatSystemTA,
	},
}

// Build returns the request text for a capability in the given locale.
// An unknown capability or unsupported locale is a configuration error.
func Build(c Capability, l locale.Locale, p Params) (string, error) {
	byLocale, ok := templates[c]
	if !ok {
		return "", fmt.Errorf("unknown capability %q", c)
	}
	tmpl, ok := byLocale[l]
	if !ok {
		return "", fmt.Errorf("capability %q has no template for locale %q", c, l)
	}

	switch c {
	case SoilAnalysis, ChatSystem:
		return tmpl, nil
	case CropRecommendation:
		return fmt.Sprintf(tmpl, p.Season), nil
	case FertilizerRecommendation:
		return fmt.Sprintf(tmpl, p.Crop), nil
	case MarketAnalysis:
		return fmt.Sprintf(tmpl, p.Crop, p.Season, p.Month), nil
	case WeatherForecast:
		return fmt.Sprintf(tmpl, p.Location), nil
	}
	return "", fmt.Errorf("unknown capability %q", c)
}
