package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wordreader/internal/domain"
)

func jsonResponse(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// isBadInput reports errors caused by the request rather than the server
func isBadInput(err error) bool {
	return errors.Is(err, domain.ErrEmptyWord) ||
		errors.Is(err, domain.ErrInvalidStatus) ||
		errors.Is(err, domain.ErrUnsupportedLanguage) ||
		errors.Is(err, domain.ErrEmptyDocument)
}

type bookResponse struct {
	Title string   `json:"title"`
	Pages []string `json:"pages"`
}

func newBookResponse(book domain.Book) bookResponse {
	pages := book.Pages
	if pages == nil {
		pages = []string{}
	}
	return bookResponse{Title: book.Title, Pages: pages}
}
