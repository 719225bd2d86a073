package domain

// Language is an app display language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
	LanguageChinese Language = "zh"
)

// SupportedLanguages is the fixed set accepted for the app-language entry.
var SupportedLanguages = []Language{LanguageEnglish, LanguageSpanish, LanguageChinese}

// ValidLanguage reports whether code is one of the supported languages.
func ValidLanguage(code Language) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}
