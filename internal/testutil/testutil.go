package testutil

import (
	"wordreader/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(id int, original, translation string, status domain.Status) domain.Word {
	return domain.Word{
		ID:          id,
		Original:    original,
		Translation: translation,
		Status:      status,
	}
}

// NewTestBook creates a test book with the given pages
func NewTestBook(title string, pages ...string) domain.Book {
	return domain.Book{
		Title: title,
		Pages: pages,
	}
}
