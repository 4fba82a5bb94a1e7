package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"wordreader/internal/domain"
	"wordreader/internal/service"

	"github.com/go-chi/chi/v5"
)

// WordsHandler exposes the tracked vocabulary
type WordsHandler struct {
	vocab *service.VocabularyService
}

func NewWordsHandler(vocab *service.VocabularyService) *WordsHandler {
	return &WordsHandler{vocab: vocab}
}

type wordsResponse struct {
	Words  []domain.Word `json:"words"`
	Counts domain.Counts `json:"counts"`
}

// List returns all words in insertion order with their counts
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	words := h.vocab.Words()
	if words == nil {
		words = []domain.Word{}
	}
	jsonResponse(w, wordsResponse{Words: words, Counts: h.vocab.Counts()}, http.StatusOK)
}

type addWordRequest struct {
	Original    string        `json:"original"`
	Translation string        `json:"translation"`
	Status      domain.Status `json:"status"`
}

// Add saves a word, overwriting the translation and status of an existing one
func (h *WordsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addWordRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	word, err := h.vocab.AddWord(req.Original, req.Translation, req.Status)
	if err != nil {
		if isBadInput(err) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, "failed to save word", http.StatusInternalServerError)
		return
	}

	jsonResponse(w, word, http.StatusOK)
}

type lookupResponse struct {
	Saved  bool          `json:"saved"`
	Status domain.Status `json:"status,omitempty"`
}

// Lookup reports whether a word is tracked and its status
func (h *WordsHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	original := r.URL.Query().Get("original")
	status, ok := h.vocab.GetWordStatus(original)
	resp := lookupResponse{Saved: ok}
	if ok {
		resp.Status = status
	}
	jsonResponse(w, resp, http.StatusOK)
}

type statusRequest struct {
	Status *domain.Status `json:"status"`
}

// UpdateStatus sets the given status, or advances the cycle when none is sent
func (h *WordsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := wordID(r)
	if err != nil {
		jsonError(w, "invalid word id", http.StatusBadRequest)
		return
	}

	// an empty body advances the cycle like a missing status
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var (
		word  domain.Word
		found bool
	)
	if req.Status != nil {
		word, found, err = h.vocab.UpdateStatus(id, *req.Status)
	} else {
		word, found, err = h.vocab.AdvanceStatus(id)
	}
	if err != nil {
		if isBadInput(err) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, "failed to update word", http.StatusInternalServerError)
		return
	}
	if !found {
		jsonError(w, "word not found", http.StatusNotFound)
		return
	}

	jsonResponse(w, word, http.StatusOK)
}

// Remove stops tracking a word; unknown ids succeed too
func (h *WordsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := wordID(r)
	if err != nil {
		jsonError(w, "invalid word id", http.StatusBadRequest)
		return
	}

	if err := h.vocab.RemoveWord(id); err != nil {
		jsonError(w, "failed to remove word", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func wordID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
