package notify

import "suraksha/internal/models"

// VoiceAlert is the payload handed to the speech playback backend
type VoiceAlert struct {
	Message      string
	LanguageCode string
	Pitch        float64
	Rate         float64
}

// Canonical alert messages with their translations. Unknown messages or
// languages fall back to the original message text.
var translations = map[string]map[string]string{
	"Phishing Email Detected": {
		"Hindi":    "फिशिंग ईमेल का पता चला है। सावधान रहें।",
		"English":  "Phishing email detected. Be careful.",
		"Marathi":  "फिशिंग ईमेल आढळले आहे. सावध राहा.",
		"Gujarati": "ફિશિંગ ઈમેલ મળ્યો છે. સાવચેત રહો.",
	},
	"Malware Detected": {
		"Hindi":    "मैलवेयर का पता चला है। तुरंत कार्रवाई करें।",
		"English":  "Malware detected. Take immediate action.",
		"Marathi":  "मालवेअर आढळले आहे. तातडीने कारवाई करा.",
		"Gujarati": "મેલવેર મળ્યો છે. તાત્કાલિક પગલાં લો.",
	},
	"Suspicious Website": {
		"Hindi":    "संदिग्ध वेबसाइट। इस साइट पर जानकारी न दें।",
		"English":  "Suspicious website. Do not enter information on this site.",
		"Marathi":  "संशयास्पद वेबसाइट. या साइटवर माहिती देऊ नका.",
		"Gujarati": "શંકાસ્પદ વેબસાઇટ. આ સાઇટ પર માહિતી આપશો નહીં.",
	},
}

var languageCodes = map[string]string{
	"English":   "en-US",
	"Hindi":     "hi-IN",
	"Marathi":   "mr-IN",
	"Gujarati":  "gu-IN",
	"Bengali":   "bn-IN",
	"Tamil":     "ta-IN",
	"Telugu":    "te-IN",
	"Kannada":   "kn-IN",
	"Malayalam": "ml-IN",
	"Punjabi":   "pa-IN",
}

// LocalizeMessage translates a canonical alert message into the target
// language, falling back to the original text
func LocalizeMessage(message, language string) string {
	if byLanguage, ok := translations[message]; ok {
		if translated, ok := byLanguage[language]; ok {
			return translated
		}
	}
	return message
}

// LanguageCode maps a language name to its BCP 47 speech code
func LanguageCode(language string) string {
	if code, ok := languageCodes[language]; ok {
		return code
	}
	return "en-US"
}

// BuildVoiceAlert localizes a message and derives speech parameters
// from the alert severity. High severity speaks faster-pitched and
// slower-paced.
func BuildVoiceAlert(message, language string, severity models.AlertSeverity) VoiceAlert {
	alert := VoiceAlert{
		Message:      LocalizeMessage(message, language),
		LanguageCode: LanguageCode(language),
		Pitch:        1.0,
		Rate:         1.0,
	}
	if severity == models.SeverityHigh {
		alert.Pitch = 1.2
		alert.Rate = 0.8
	}
	return alert
}
