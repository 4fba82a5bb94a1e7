package library

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"wordreader/internal/domain"

	"github.com/ledongthuc/pdf"
)

// DefaultTitle is used for uploads without a title
const DefaultTitle = "Untitled"

// ExtractPDFText returns the plain text of a PDF document
func ExtractPDFText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

// ImportPDF extracts and paginates a PDF document
func ImportPDF(r io.ReaderAt, size int64, title string, wordsPerPage int) (domain.Book, error) {
	text, err := ExtractPDFText(r, size)
	if err != nil {
		return domain.Book{}, err
	}
	return NewBook(title, text, wordsPerPage)
}

// NewBook paginates text into a book. Text without any words is rejected.
func NewBook(title, text string, wordsPerPage int) (domain.Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}

	pages := SplitIntoPages(text, wordsPerPage)
	if len(pages) == 0 {
		return domain.Book{}, domain.ErrEmptyDocument
	}
	return domain.Book{Title: title, Pages: pages}, nil
}
