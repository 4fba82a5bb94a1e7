// Package vocabulary tracks the words a reader has looked up or saved.
//
// A Store is a set of words keyed by their case-insensitive text. Words
// keep their insertion order, and each gets an identifier that is never
// changed or reused for the lifetime of the store.
package vocabulary

import (
	"strings"
	"sync"

	"wordreader/internal/domain"
)

// Store holds the tracked words of one session
type Store struct {
	mu     sync.Mutex
	words  []*domain.Word
	byKey  map[string]*domain.Word
	nextID int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		byKey:  make(map[string]*domain.Word),
		nextID: 1,
	}
}

// AddWord adds a word or, if a word with the same normalized text is
// already tracked, overwrites its translation and status and returns it.
// An invalid status is stored as new. A blank original is ignored and the
// zero Word is returned.
func (s *Store) AddWord(original, translation string, status domain.Status) domain.Word {
	if strings.TrimSpace(original) == "" {
		return domain.Word{}
	}
	if !status.IsValid() {
		status = domain.StatusNew
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.NormalizeText(original)
	if existing, ok := s.byKey[key]; ok {
		existing.Translation = translation
		existing.Status = status
		return *existing
	}

	w := &domain.Word{
		ID:          s.nextID,
		Original:    original,
		Translation: translation,
		Status:      status,
	}
	s.nextID++
	s.words = append(s.words, w)
	s.byKey[key] = w
	return *w
}

// RemoveWord removes the word with the given id; unknown ids are ignored
func (s *Store) RemoveWord(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, w := range s.words {
		if w.ID == id {
			delete(s.byKey, domain.NormalizeText(w.Original))
			s.words = append(s.words[:i], s.words[i+1:]...)
			return
		}
	}
}

// UpdateStatus sets the status of a word directly, without following the
// cycle. It reports false if the id is unknown or status is not one of the
// three statuses, in which case nothing changes.
func (s *Store) UpdateStatus(id int, status domain.Status) (domain.Word, bool) {
	if !status.IsValid() {
		return domain.Word{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(id)
	if w == nil {
		return domain.Word{}, false
	}
	w.Status = status
	return *w, true
}

// AdvanceStatus moves a word to the next status in the cycle
// new → learning → known → new. It reports false if the id is unknown.
func (s *Store) AdvanceStatus(id int) (domain.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(id)
	if w == nil {
		return domain.Word{}, false
	}
	w.Status = w.Status.Next()
	return *w, true
}

// IsWordSaved reports whether original is tracked, ignoring case
func (s *Store) IsWordSaved(original string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.byKey[domain.NormalizeText(original)]
	return ok
}

// GetWordStatus returns the status of original. The boolean is false when
// the word is not tracked.
func (s *Store) GetWordStatus(original string) (domain.Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.byKey[domain.NormalizeText(original)]
	if !ok {
		return "", false
	}
	return w.Status, true
}

// Lookup returns the tracked word matching original, ignoring case
func (s *Store) Lookup(original string) (domain.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.byKey[domain.NormalizeText(original)]
	if !ok {
		return domain.Word{}, false
	}
	return *w, true
}

// Word returns the word with the given id
func (s *Store) Word(id int) (domain.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(id)
	if w == nil {
		return domain.Word{}, false
	}
	return *w, true
}

// Words returns a copy of all tracked words in insertion order
func (s *Store) Words() []domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Word, len(s.words))
	for i, w := range s.words {
		out[i] = *w
	}
	return out
}

// Len returns the number of tracked words
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words)
}

// Counts returns the number of words per status
func (s *Store) Counts() domain.Counts {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c domain.Counts
	for _, w := range s.words {
		switch w.Status {
		case domain.StatusNew:
			c.New++
		case domain.StatusLearning:
			c.Learning++
		case domain.StatusKnown:
			c.Known++
		}
	}
	return c
}

func (s *Store) NewCount() int      { return s.Counts().New }
func (s *Store) LearningCount() int { return s.Counts().Learning }
func (s *Store) KnownCount() int    { return s.Counts().Known }

// find must be called with mu held
func (s *Store) find(id int) *domain.Word {
	for _, w := range s.words {
		if w.ID == id {
			return w
		}
	}
	return nil
}
