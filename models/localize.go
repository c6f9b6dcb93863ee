package models

// MultilingualText maps an ISO 639-1 language code to a display string.
type MultilingualText map[string]string

// DefaultLanguage is the fallback used when a requested language is missing.
const DefaultLanguage = "en"

// Localize resolves the display string for the requested language, falling
// back to English and then to any available translation.
func Localize(text MultilingualText, lang string) string {
	if len(text) == 0 {
		return ""
	}
	if v, ok := text[lang]; ok && v != "" {
		return v
	}
	if v, ok := text[DefaultLanguage]; ok && v != "" {
		return v
	}
	for _, v := range text {
		if v != "" {
			return v
		}
	}
	return ""
}
