package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"wordreader/internal/service"

	"go.uber.org/zap"
)

// ReaderHandler serves document upload and word translation
type ReaderHandler struct {
	library        *service.LibraryService
	lookup         *service.LookupService
	maxUploadBytes int64
	logger         *zap.Logger
}

func NewReaderHandler(library *service.LibraryService, lookup *service.LookupService, maxUploadBytes int64, logger *zap.Logger) *ReaderHandler {
	return &ReaderHandler{
		library:        library,
		lookup:         lookup,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Upload accepts a multipart form with a PDF "file" and an optional "title"
// and returns the paginated text.
func (h *ReaderHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	reader, err := r.MultipartReader()
	if err != nil {
		jsonError(w, "expected multipart form data", http.StatusBadRequest)
		return
	}

	var (
		title string
		data  []byte
		found bool
	)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			h.uploadReadError(w, err)
			return
		}

		switch part.FormName() {
		case "title":
			raw, err := io.ReadAll(part)
			if err != nil {
				h.uploadReadError(w, err)
				return
			}
			title = strings.TrimSpace(string(raw))
		case "file":
			data, err = io.ReadAll(part)
			if err != nil {
				h.uploadReadError(w, err)
				return
			}
			found = true
		}
		part.Close()
	}

	if !found {
		jsonError(w, "missing file", http.StatusBadRequest)
		return
	}

	book, err := h.library.ImportPDF(bytes.NewReader(data), int64(len(data)), title)
	if err != nil {
		jsonError(w, "failed to extract text from PDF", http.StatusBadRequest)
		return
	}

	jsonResponse(w, newBookResponse(book), http.StatusOK)
}

func (h *ReaderHandler) uploadReadError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		jsonError(w, "file too large", http.StatusRequestEntityTooLarge)
		return
	}
	h.logger.Warn("Failed to read upload", zap.Error(err))
	jsonError(w, "failed to read upload", http.StatusBadRequest)
}

type translateRequest struct {
	Word       string `json:"word"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Translation string `json:"translation"`
}

// Translate returns the translation of a single word
func (h *ReaderHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	translation, err := h.lookup.Translate(r.Context(), req.Word, req.TargetLang)
	if err != nil {
		if isBadInput(err) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, "translation failed", http.StatusBadGateway)
		return
	}

	jsonResponse(w, translateResponse{Translation: translation}, http.StatusOK)
}

// Lookup translates a word and reports whether it is tracked
func (h *ReaderHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.lookup.Lookup(r.Context(), req.Word, req.TargetLang)
	if err != nil {
		if isBadInput(err) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, "translation failed", http.StatusBadGateway)
		return
	}

	jsonResponse(w, result, http.StatusOK)
}
