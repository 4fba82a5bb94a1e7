package service

import (
	"context"
	"io"

	"wordreader/internal/domain"
	"wordreader/internal/library"

	"go.uber.org/zap"
)

// Catalog searches and downloads public-domain books
type Catalog interface {
	Search(ctx context.Context, query, lang string) ([]domain.BookSummary, error)
	Import(ctx context.Context, id uint64) (domain.Book, error)
}

// LibraryService imports texts for reading
type LibraryService struct {
	catalog      Catalog
	wordsPerPage int
	logger       *zap.Logger
}

// NewLibraryService creates a new library service
func NewLibraryService(catalog Catalog, wordsPerPage int, logger *zap.Logger) *LibraryService {
	return &LibraryService{
		catalog:      catalog,
		wordsPerPage: wordsPerPage,
		logger:       logger,
	}
}

// ImportPDF extracts and paginates an uploaded PDF
func (s *LibraryService) ImportPDF(r io.ReaderAt, size int64, title string) (domain.Book, error) {
	book, err := library.ImportPDF(r, size, title, s.wordsPerPage)
	if err != nil {
		s.logger.Warn("Failed to import PDF", zap.Error(err), zap.String("title", title), zap.Int64("size", size))
		return domain.Book{}, err
	}

	s.logger.Info("PDF imported", zap.String("title", book.Title), zap.Int("pages", book.PageCount()))
	return book, nil
}

// ImportText paginates plain text
func (s *LibraryService) ImportText(title, text string) (domain.Book, error) {
	return library.NewBook(title, text, s.wordsPerPage)
}

// Search finds books in the catalog
func (s *LibraryService) Search(ctx context.Context, query, lang string) ([]domain.BookSummary, error) {
	books, err := s.catalog.Search(ctx, query, lang)
	if err != nil {
		s.logger.Error("Catalog search failed", zap.Error(err), zap.String("query", query))
		return nil, err
	}
	return books, nil
}

// ImportBook downloads a catalog book
func (s *LibraryService) ImportBook(ctx context.Context, id uint64) (domain.Book, error) {
	book, err := s.catalog.Import(ctx, id)
	if err != nil {
		s.logger.Error("Catalog import failed", zap.Error(err), zap.Uint64("book_id", id))
		return domain.Book{}, err
	}

	s.logger.Info("Book imported",
		zap.Uint64("book_id", id),
		zap.String("title", book.Title),
		zap.Int("pages", book.PageCount()),
	)
	return book, nil
}
