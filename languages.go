package lexishift

import "strings"

// LanguageCode is an ISO-639-1-like two-letter language code. The set is
// open: any code round-trips through the engine, "en" is the distinguished
// pivot value with special-cased identity and hub behavior.
type LanguageCode string

// English is the hub pivot language.
const English LanguageCode = "en"

// LanguageNames maps language codes to human-readable names, used for
// logging and for prompts sent to the external translator.
var LanguageNames = map[LanguageCode]string{
	"en": "English",
	"ja": "Japanese",
	"zh": "Chinese (Simplified)",
	"ko": "Korean",
	"de": "German",
	"es": "Spanish",
	"fr": "French",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"ar": "Arabic",
	"he": "Hebrew",
	"hi": "Hindi",
	"nl": "Dutch",
	"pl": "Polish",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"vi": "Vietnamese",
}

// RTLLanguages contains language codes written right to left.
var RTLLanguages = map[LanguageCode]bool{
	"ar": true,
	"he": true,
	"fa": true,
	"ur": true,
}

// GetLanguageName returns the human-readable name for a language code,
// falling back to the code itself.
func GetLanguageName(code LanguageCode) string {
	if name, ok := LanguageNames[NormalizeLanguage(code)]; ok {
		return name
	}
	return string(code)
}

// NormalizeLanguage lowers the code and strips a region suffix
// (e.g. "ja_JP" or "ja-JP" → "ja").
func NormalizeLanguage(code LanguageCode) LanguageCode {
	s := strings.ToLower(string(code))
	s = strings.ReplaceAll(s, "-", "_")
	if i := strings.IndexByte(s, '_'); i > 0 {
		s = s[:i]
	}
	return LanguageCode(s)
}

// IsRTL reports whether the language is written right to left.
func IsRTL(code LanguageCode) bool {
	return RTLLanguages[NormalizeLanguage(code)]
}
