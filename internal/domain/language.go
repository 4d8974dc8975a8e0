package domain

import "strings"

// Language is a lowercase language code such as "zh" or "en".
type Language string

const (
	LanguageZh Language = "zh"
	LanguageEn Language = "en"
)

var languageNames = map[Language]string{
	LanguageZh: "Simplified Chinese",
	LanguageEn: "English",
	"ja":       "Japanese",
	"ko":       "Korean",
	"fr":       "French",
	"de":       "German",
	"es":       "Spanish",
}

// ParseLanguage normalizes a caller-supplied code ("ZH", " en ") to a Language.
func ParseLanguage(s string) Language {
	return Language(strings.ToLower(strings.TrimSpace(s)))
}

// DisplayName returns the English name of the language, or the raw code when unknown.
func (l Language) DisplayName() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return string(l)
}

// Suffix returns the code in the form used by slot names: "zh" -> "Zh".
func (l Language) Suffix() string {
	s := string(l)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
