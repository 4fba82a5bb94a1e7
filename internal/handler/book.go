package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"wordreader/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const importTimeout = 2 * time.Minute

// isPDF reports whether a document looks like a PDF
func isPDF(doc *tele.Document) bool {
	return doc.MIME == "application/pdf" || strings.EqualFold(filepath.Ext(doc.FileName), ".pdf")
}

// documentTitle picks a book title from caption or file name
func documentTitle(caption, fileName string) string {
	if t := strings.TrimSpace(caption); t != "" {
		return t
	}
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

// handleDocument imports an uploaded PDF and opens its first page
func (h *Handler) handleDocument(c tele.Context) error {
	userID := c.Sender().ID
	msg := c.Message()
	if msg == nil || msg.Document == nil {
		return nil
	}
	doc := msg.Document

	if !isPDF(doc) {
		return c.Send("Only PDF documents can be imported.")
	}
	if h.maxUploadBytes > 0 && doc.FileSize > h.maxUploadBytes {
		return c.Send(fmt.Sprintf("The file is too large (limit %d MB).", h.maxUploadBytes/(1024*1024)))
	}

	reader, err := h.bot.File(&doc.File)
	if err != nil {
		h.logger.Error("Failed to download document", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("❌ Could not download the file.")
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		h.logger.Error("Failed to read document", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("❌ Could not download the file.")
	}

	book, err := h.libraryService.ImportPDF(bytes.NewReader(data), int64(len(data)), documentTitle(msg.Caption, doc.FileName))
	if err != nil {
		if errors.Is(err, domain.ErrEmptyDocument) {
			return c.Send("This PDF has no extractable text.")
		}
		return c.Send("❌ Could not read the PDF: " + err.Error())
	}

	return h.openBook(c, book)
}

// handleGutenbergSearch searches Project Gutenberg: /gutenberg <query>
func (h *Handler) handleGutenbergSearch(c tele.Context) error {
	query := strings.TrimSpace(c.Message().Payload)
	if query == "" {
		return c.Send("Usage: /gutenberg <title or author>")
	}

	ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
	defer cancel()

	books, err := h.libraryService.Search(ctx, query, "")
	if err != nil {
		return c.Send("❌ Search failed: " + err.Error())
	}

	return c.Send(renderSearchResults(query, books), searchMarkup(books))
}

// handleBookSelection imports the chosen catalog book
func (h *Handler) handleBookSelection(c tele.Context, data string) error {
	id, err := strconv.ParseUint(strings.TrimPrefix(data, prefixBook), 10, 64)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid book"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
	defer cancel()

	book, err := h.libraryService.ImportBook(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNoPlainText) {
			return c.Respond(&tele.CallbackResponse{Text: "No plain text available for this book", ShowAlert: true})
		}
		return c.Respond(&tele.CallbackResponse{Text: "Import failed", ShowAlert: true})
	}

	return h.openBook(c, book)
}

func (h *Handler) openBook(c tele.Context, book domain.Book) error {
	userID := c.Sender().ID
	h.UpdateState(userID, func(s *domain.StateData) {
		s.State = domain.StateReading
		s.Book = &book
		s.Page = 1
	})

	h.logger.Info("Book opened",
		zap.Int64("user_id", userID),
		zap.String("title", book.Title),
		zap.Int("pages", book.PageCount()),
	)
	return h.editOrSend(c, renderPage(book, 1), pageMarkup(book, 1))
}

// handlePage navigates to another page of the current book
func (h *Handler) handlePage(c tele.Context, data string) error {
	page, err := parseIntSuffix(data, prefixPage)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}
	return h.showPage(c, page)
}

// handleContinue reopens the current page
func (h *Handler) handleContinue(c tele.Context) error {
	return h.showPage(c, h.GetState(c.Sender().ID).Page)
}

func (h *Handler) showPage(c tele.Context, page int) error {
	userID := c.Sender().ID
	state := h.GetState(userID)
	if state.Book == nil {
		return c.Respond(&tele.CallbackResponse{Text: "No book open"})
	}
	book := *state.Book
	if _, ok := book.Page(page); !ok {
		return c.Respond(&tele.CallbackResponse{Text: "No such page"})
	}

	h.UpdateState(userID, func(s *domain.StateData) {
		s.Page = page
	})
	return h.editOrSend(c, renderPage(book, page), pageMarkup(book, page))
}
