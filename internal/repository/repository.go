package repository

import (
	"wordreader/internal/domain"
)

// WordRepository persists the vocabulary of a session.
// Rows are keyed by the normalized original, never by store identifiers.
type WordRepository interface {
	SaveWord(word domain.Word) error
	DeleteWord(original string) error
	ListWords() ([]domain.Word, error)
}
