package handlers

import (
	"errors"
	"net/http"
	"strings"

	"wordreader/internal/domain"
	"wordreader/internal/service"
)

// GutenbergHandler searches and imports public-domain books
type GutenbergHandler struct {
	library *service.LibraryService
}

func NewGutenbergHandler(library *service.LibraryService) *GutenbergHandler {
	return &GutenbergHandler{library: library}
}

// Search lists catalog books matching q, in lang (default de)
func (h *GutenbergHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		jsonError(w, "q is required", http.StatusBadRequest)
		return
	}

	books, err := h.library.Search(r.Context(), query, r.URL.Query().Get("lang"))
	if err != nil {
		jsonError(w, "catalog search failed", http.StatusBadGateway)
		return
	}
	if books == nil {
		books = []domain.BookSummary{}
	}

	jsonResponse(w, books, http.StatusOK)
}

type importRequest struct {
	ID uint64 `json:"id"`
}

// Import downloads a catalog book and returns it paginated
func (h *GutenbergHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(r, &req); err != nil || req.ID == 0 {
		jsonError(w, "invalid book id", http.StatusBadRequest)
		return
	}

	book, err := h.library.ImportBook(r.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoPlainText):
			jsonError(w, "no plain text version available", http.StatusNotFound)
		case errors.Is(err, domain.ErrEmptyDocument):
			jsonError(w, "book has no text", http.StatusBadRequest)
		default:
			jsonError(w, "book import failed", http.StatusBadGateway)
		}
		return
	}

	jsonResponse(w, newBookResponse(book), http.StatusOK)
}
