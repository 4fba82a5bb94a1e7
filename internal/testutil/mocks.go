package testutil

import (
	"context"

	"wordreader/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) SaveWord(word domain.Word) error {
	args := m.Called(word)
	return args.Error(0)
}

func (m *MockWordRepository) DeleteWord(original string) error {
	args := m.Called(original)
	return args.Error(0)
}

func (m *MockWordRepository) ListWords() ([]domain.Word, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

// MockTranslator is a mock for translate.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, word, targetLang string) (string, error) {
	args := m.Called(ctx, word, targetLang)
	return args.String(0), args.Error(1)
}

func (m *MockTranslator) Name() string {
	return "mock"
}

// MockCatalog is a mock for service.Catalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Search(ctx context.Context, query, lang string) ([]domain.BookSummary, error) {
	args := m.Called(ctx, query, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookSummary), args.Error(1)
}

func (m *MockCatalog) Import(ctx context.Context, id uint64) (domain.Book, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Book), args.Error(1)
}
