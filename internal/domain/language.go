package domain

import "strings"

// DefaultLanguage is used when no target language is given
const DefaultLanguage = "EN"

// Language is a supported translation target
type Language struct {
	Code  string `json:"code"`
	Flag  string `json:"flag"`
	Label string `json:"label"`
}

var languages = []Language{
	{Code: "EN", Flag: "🇬🇧", Label: "English"},
	{Code: "DE", Flag: "🇩🇪", Label: "Deutsch"},
	{Code: "FR", Flag: "🇫🇷", Label: "Français"},
	{Code: "ES", Flag: "🇪🇸", Label: "Español"},
	{Code: "IT", Flag: "🇮🇹", Label: "Italiano"},
	{Code: "RU", Flag: "🇷🇺", Label: "Русский"},
	{Code: "JA", Flag: "🇯🇵", Label: "日本語"},
	{Code: "ZH", Flag: "🇨🇳", Label: "中文"},
	{Code: "PT", Flag: "🇵🇹", Label: "Português"},
}

// Languages returns the supported target languages
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// LookupLanguage finds a language by its two-letter code, ignoring case
func LookupLanguage(code string) (Language, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}
