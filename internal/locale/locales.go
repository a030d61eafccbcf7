package locale

// Language is a supported UI language code.
type Language string

const (
	LangEnglish Language = "en"
	LangHebrew  Language = "he"
	LangArabic  Language = "ar"
	LangSpanish Language = "es"
	LangFrench  Language = "fr"
)

const DefaultLanguage = LangEnglish

type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// supportedLanguages fixes the enumeration order used everywhere (matcher
// index, /api/locales listing).
var supportedLanguages = []Language{
	LangEnglish,
	LangHebrew,
	LangArabic,
	LangSpanish,
	LangFrench,
}

var displayNames = map[Language]string{
	LangEnglish: "English",
	LangHebrew:  "עברית",
	LangArabic:  "العربية",
	LangSpanish: "Español",
	LangFrench:  "Français",
}

var rtlLanguages = map[Language]bool{
	LangHebrew: true,
	LangArabic: true,
}

func Supported() []Language {
	out := make([]Language, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

func IsSupported(code string) bool {
	_, ok := displayNames[Language(code)]
	return ok
}

func DisplayName(lang Language) string {
	return displayNames[lang]
}

// IsRTL reports whether lang is in the fixed RTL set. Unknown codes fail
// closed to false.
func IsRTL(lang Language) bool {
	return rtlLanguages[lang]
}

func TextDirection(lang Language) Direction {
	if IsRTL(lang) {
		return DirectionRTL
	}
	return DirectionLTR
}
