package service

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"wordreader/internal/domain"
	"wordreader/internal/repository"
	"wordreader/internal/vocabulary"

	"go.uber.org/zap"
)

// VocabularyService wraps the session's word store and keeps the optional
// repository in sync with it. The store is the source of truth: a failed
// write to the repository is reported but does not roll the store back.
type VocabularyService struct {
	store    *vocabulary.Store
	wordRepo repository.WordRepository
	logger   *zap.Logger

	// writeMu orders each store mutation together with its repository write
	writeMu sync.Mutex
}

// NewVocabularyService creates a new vocabulary service. wordRepo may be nil
// to keep the vocabulary in memory only.
func NewVocabularyService(store *vocabulary.Store, wordRepo repository.WordRepository, logger *zap.Logger) *VocabularyService {
	return &VocabularyService{
		store:    store,
		wordRepo: wordRepo,
		logger:   logger,
	}
}

// CleanWord trims whitespace and surrounding punctuation from a token picked
// out of a page, e.g. `„Hund,“` becomes `Hund`.
func CleanWord(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

// Restore loads persisted words into the store in their saved order
func (s *VocabularyService) Restore() error {
	if s.wordRepo == nil {
		return nil
	}

	words, err := s.wordRepo.ListWords()
	if err != nil {
		return fmt.Errorf("load saved words: %w", err)
	}

	for _, w := range words {
		s.store.AddWord(w.Original, w.Translation, w.Status)
	}

	s.logger.Info("Vocabulary restored", zap.Int("words", len(words)))
	return nil
}

// AddWord saves a word with its translation. An empty status means new.
func (s *VocabularyService) AddWord(original, translation string, status domain.Status) (domain.Word, error) {
	original = strings.TrimSpace(original)
	if original == "" {
		return domain.Word{}, domain.ErrEmptyWord
	}
	if status == "" {
		status = domain.StatusNew
	}
	if !status.IsValid() {
		return domain.Word{}, domain.ErrInvalidStatus
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	word := s.store.AddWord(original, translation, status)

	s.logger.Info("Word saved",
		zap.Int("word_id", word.ID),
		zap.String("word", word.Original),
		zap.String("status", word.Status.String()),
	)

	return word, s.persist(word)
}

// RemoveWord stops tracking a word. Unknown ids are ignored.
func (s *VocabularyService) RemoveWord(id int) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	word, ok := s.store.Word(id)
	if !ok {
		return nil
	}
	s.store.RemoveWord(id)

	s.logger.Info("Word removed", zap.Int("word_id", id), zap.String("word", word.Original))

	if s.wordRepo == nil {
		return nil
	}
	if err := s.wordRepo.DeleteWord(word.Original); err != nil {
		s.logger.Error("Failed to delete saved word", zap.Error(err), zap.Int("word_id", id))
		return fmt.Errorf("delete saved word: %w", err)
	}
	return nil
}

// UpdateStatus sets a word's status. It reports false for unknown ids.
func (s *VocabularyService) UpdateStatus(id int, status domain.Status) (domain.Word, bool, error) {
	if !status.IsValid() {
		return domain.Word{}, false, domain.ErrInvalidStatus
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	word, ok := s.store.UpdateStatus(id, status)
	if !ok {
		return domain.Word{}, false, nil
	}
	return word, true, s.persist(word)
}

// AdvanceStatus moves a word to the next status. It reports false for unknown ids.
func (s *VocabularyService) AdvanceStatus(id int) (domain.Word, bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	word, ok := s.store.AdvanceStatus(id)
	if !ok {
		return domain.Word{}, false, nil
	}
	return word, true, s.persist(word)
}

func (s *VocabularyService) IsWordSaved(original string) bool {
	return s.store.IsWordSaved(original)
}

func (s *VocabularyService) GetWordStatus(original string) (domain.Status, bool) {
	return s.store.GetWordStatus(original)
}

func (s *VocabularyService) Lookup(original string) (domain.Word, bool) {
	return s.store.Lookup(original)
}

func (s *VocabularyService) Word(id int) (domain.Word, bool) {
	return s.store.Word(id)
}

func (s *VocabularyService) Words() []domain.Word {
	return s.store.Words()
}

func (s *VocabularyService) Counts() domain.Counts {
	return s.store.Counts()
}

func (s *VocabularyService) persist(word domain.Word) error {
	if s.wordRepo == nil {
		return nil
	}
	if err := s.wordRepo.SaveWord(word); err != nil {
		s.logger.Error("Failed to persist word", zap.Error(err), zap.Int("word_id", word.ID))
		return fmt.Errorf("persist word: %w", err)
	}
	return nil
}
