package translate

import (
	"context"
	"fmt"
	"strings"

	"wordreader/internal/domain"
)

// Translator maps a word to its translation in a target language
type Translator interface {
	// Translate returns the translation of word in targetLang
	Translate(ctx context.Context, word, targetLang string) (string, error)
	// Name returns the engine name
	Name() string
}

// ValidateLanguage normalizes a target language code. An empty code means
// the default language.
func ValidateLanguage(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.DefaultLanguage, nil
	}
	lang, ok := domain.LookupLanguage(code)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, code)
	}
	return lang.Code, nil
}
