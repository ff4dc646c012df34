// Package locale defines the display/prompt languages Agri AI supports and
// the localized strings the CLI surfaces to the user. Exactly two locales are
// supported; anything else is a configuration error, not a runtime case.
package locale

import "fmt"

// Locale identifies one of the supported display/prompt languages.
type Locale string

const (
	English Locale = "en"
	Tamil   Locale = "ta"
)

// Supported returns the full set of supported locales.
func Supported() []Locale {
	return []Locale{English, Tamil}
}

// Parse validates a locale code from config or a CLI flag.
func Parse(s string) (Locale, error) {
	switch Locale(s) {
	case English:
		return English, nil
	case Tamil:
		return Tamil, nil
	}
	return "", fmt.Errorf("unsupported locale %q (supported: en, ta)", s)
}

// IsSupported reports whether l is one of the supported locales.
func (l Locale) IsSupported() bool {
	return l == English || l == Tamil
}

// MessageKey names a localized user-facing string.
type MessageKey string

const (
	MsgChatGreeting      MessageKey = "chat.greeting"
	MsgSoilFailed        MessageKey = "error.soilAnalysis"
	MsgCropsFailed       MessageKey = "error.cropRecommendation"
	MsgFertilizerFailed  MessageKey = "error.fertilizerRecommendation"
	MsgMarketFailed      MessageKey = "error.marketAnalysis"
	MsgWeatherFailed     MessageKey = "error.weatherForecast"
	MsgChatFailed        MessageKey = "error.chat"
	MsgFeedbackThanks    MessageKey = "feedback.thanks"
	MsgFeedbackAsk       MessageKey = "feedback.ask"
	MsgLoginRequired     MessageKey = "auth.loginRequired"
)

var messages = map[MessageKey]map[Locale]string{
	MsgChatGreeting: {
		English: "Hello! I'm AgriBot, your AI farming assistant. Ask me anything about crops, soil health, pest control, or market prices.",
		Tamil:   "வணக்கம்! நான் அக்ரிபாட், உங்கள் AI விவசாய உதவியாளர். பயிர்கள், மண் ஆரோக்கியம், பூச்சி கட்டுப்பாடு அல்லது சந்தை விலைகள் பற்றி என்னிடம் கேளுங்கள்.",
	},
	MsgSoilFailed: {
		English: "Sorry, I couldn't analyze the soil image. Please try again.",
		Tamil:   "மன்னிக்கவும், மண் படத்தை பகுப்பாய்வு செய்ய முடியவில்லை. மீண்டும் முயற்சிக்கவும்.",
	},
	MsgCropsFailed: {
		English: "Could not retrieve or parse crop recommendation data.",
		Tamil:   "பயிர் பரிந்துரை தரவைப் பெற முடியவில்லை.",
	},
	MsgFertilizerFailed: {
		English: "Could not retrieve or parse fertilizer recommendation data.",
		Tamil:   "உர பரிந்துரை தரவைப் பெற முடியவில்லை.",
	},
	MsgMarketFailed: {
		English: "Could not retrieve or parse market analysis data.",
		Tamil:   "சந்தை பகுப்பாய்வு தரவைப் பெற முடியவில்லை.",
	},
	MsgWeatherFailed: {
		English: "Could not retrieve or parse weather forecast data.",
		Tamil:   "வானிலை முன்னறிவிப்பைப் பெற முடியவில்லை.",
	},
	MsgChatFailed: {
		English: "Failed to get response from AI assistant.",
		Tamil:   "AI உதவியாளரிடமிருந்து பதிலைப் பெற முடியவில்லை.",
	},
	MsgFeedbackThanks: {
		English: "Thank you for your feedback!",
		Tamil:   "உங்கள் கருத்துக்கு நன்றி!",
	},
	MsgFeedbackAsk: {
		English: "Enjoying this feature? Rate it with: agriai feedback %s --rating 1-5",
		Tamil:   "இந்த அம்சம் பிடித்திருக்கிறதா? மதிப்பிடுங்கள்: agriai feedback %s --rating 1-5",
	},
	MsgLoginRequired: {
		English: "Please log in first: agriai login --name <name> --role farmer|broker",
		Tamil:   "முதலில் உள்நுழையவும்: agriai login --name <name> --role farmer|broker",
	},
}

// Message returns the localized string for key. Unknown keys return the key
// itself so a missing translation is visible rather than silent.
func Message(l Locale, key MessageKey) string {
	byLocale, ok := messages[key]
	if !ok {
		return string(key)
	}
	if msg, ok := byLocale[l]; ok {
		return msg
	}
	return byLocale[English]
}
