package service

import (
	"context"
	"fmt"

	"wordreader/internal/domain"
	"wordreader/internal/translate"

	"go.uber.org/zap"
)

// Lookup is the result of looking up a word while reading
type Lookup struct {
	Original    string        `json:"original"`
	Translation string        `json:"translation"`
	Language    string        `json:"target_lang"`
	Saved       bool          `json:"saved"`
	Status      domain.Status `json:"status,omitempty"`
	WordID      int           `json:"word_id,omitempty"`
}

// LookupService translates words and reports their tracking status
type LookupService struct {
	translator translate.Translator
	vocab      *VocabularyService
	logger     *zap.Logger
}

// NewLookupService creates a new lookup service
func NewLookupService(translator translate.Translator, vocab *VocabularyService, logger *zap.Logger) *LookupService {
	return &LookupService{
		translator: translator,
		vocab:      vocab,
		logger:     logger,
	}
}

// Translate returns the translation of word without touching the vocabulary
func (s *LookupService) Translate(ctx context.Context, word, targetLang string) (string, error) {
	word = CleanWord(word)
	if word == "" {
		return "", domain.ErrEmptyWord
	}

	lang, err := translate.ValidateLanguage(targetLang)
	if err != nil {
		return "", err
	}

	translation, err := s.translator.Translate(ctx, word, lang)
	if err != nil {
		s.logger.Error("Translation failed",
			zap.Error(err),
			zap.String("word", word),
			zap.String("target_lang", lang),
			zap.String("provider", s.translator.Name()),
		)
		return "", fmt.Errorf("translate %q: %w", word, err)
	}
	return translation, nil
}

// Lookup translates word and reports whether it is already tracked
func (s *LookupService) Lookup(ctx context.Context, word, targetLang string) (Lookup, error) {
	lang, err := translate.ValidateLanguage(targetLang)
	if err != nil {
		return Lookup{}, err
	}

	translation, err := s.Translate(ctx, word, lang)
	if err != nil {
		return Lookup{}, err
	}

	result := Lookup{
		Original:    CleanWord(word),
		Translation: translation,
		Language:    lang,
	}
	if w, ok := s.vocab.Lookup(result.Original); ok {
		result.Saved = true
		result.Status = w.Status
		result.WordID = w.ID
	}
	return result, nil
}
