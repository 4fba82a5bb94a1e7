package domain

import "errors"

var (
	ErrEmptyWord           = errors.New("word cannot be empty")
	ErrInvalidStatus       = errors.New("invalid word status")
	ErrUnsupportedLanguage = errors.New("unsupported target language")
	ErrNoPlainText         = errors.New("no plain text format available for this book")
	ErrEmptyDocument       = errors.New("document contains no text")
)
