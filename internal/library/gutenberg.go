package library

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wordreader/internal/domain"

	"github.com/go-resty/resty/v2"
)

// DefaultGutendexURL is the public Gutendex catalog
const DefaultGutendexURL = "https://gutendex.com"

// DefaultSearchLanguage is used for searches without a language
const DefaultSearchLanguage = "de"

var plainTextFormats = []string{"text/plain; charset=utf-8", "text/plain"}

// GutenbergClient searches and downloads Project Gutenberg books through Gutendex
type GutenbergClient struct {
	baseURL      string
	wordsPerPage int
	http         *resty.Client
}

// NewGutenbergClient creates a catalog client. An empty baseURL selects the public Gutendex.
func NewGutenbergClient(baseURL string, wordsPerPage int) *GutenbergClient {
	if baseURL == "" {
		baseURL = DefaultGutendexURL
	}
	return &GutenbergClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		wordsPerPage: wordsPerPage,
		http:         resty.New().SetTimeout(60 * time.Second),
	}
}

type gutendexAuthor struct {
	Name string `json:"name"`
}

type gutendexBook struct {
	ID            uint64            `json:"id"`
	Title         string            `json:"title"`
	Authors       []gutendexAuthor  `json:"authors"`
	Formats       map[string]string `json:"formats"`
	DownloadCount uint64            `json:"download_count"`
}

type gutendexResponse struct {
	Results []gutendexBook `json:"results"`
}

func (b gutendexBook) summary() domain.BookSummary {
	authors := make([]string, 0, len(b.Authors))
	for _, a := range b.Authors {
		authors = append(authors, a.Name)
	}
	return domain.BookSummary{
		ID:            b.ID,
		Title:         b.Title,
		Authors:       authors,
		DownloadCount: b.DownloadCount,
	}
}

func (b gutendexBook) plainTextURL() (string, bool) {
	for _, f := range plainTextFormats {
		if u, ok := b.Formats[f]; ok && u != "" {
			return u, true
		}
	}
	return "", false
}

// Search finds books matching query in the given language (default "de")
func (c *GutenbergClient) Search(ctx context.Context, query, lang string) ([]domain.BookSummary, error) {
	if lang == "" {
		lang = DefaultSearchLanguage
	}

	var resp gutendexResponse
	r, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("languages", lang).
		SetQueryParam("search", query).
		SetResult(&resp).
		Get(c.baseURL + "/books/")
	if err != nil {
		return nil, fmt.Errorf("gutendex search: %w", err)
	}
	if r.IsError() {
		return nil, fmt.Errorf("gutendex search: %s; body: %s", r.Status(), r.String())
	}

	books := make([]domain.BookSummary, 0, len(resp.Results))
	for _, b := range resp.Results {
		books = append(books, b.summary())
	}
	return books, nil
}

// Import downloads the plain text of a book and paginates it
func (c *GutenbergClient) Import(ctx context.Context, id uint64) (domain.Book, error) {
	var book gutendexBook
	r, err := c.http.R().
		SetContext(ctx).
		SetResult(&book).
		Get(c.baseURL + "/books/" + strconv.FormatUint(id, 10))
	if err != nil {
		return domain.Book{}, fmt.Errorf("gutendex book %d: %w", id, err)
	}
	if r.IsError() {
		return domain.Book{}, fmt.Errorf("gutendex book %d: %s; body: %s", id, r.Status(), r.String())
	}

	textURL, ok := book.plainTextURL()
	if !ok {
		return domain.Book{}, domain.ErrNoPlainText
	}

	tr, err := c.http.R().SetContext(ctx).Get(textURL)
	if err != nil {
		return domain.Book{}, fmt.Errorf("download book %d: %w", id, err)
	}
	if tr.IsError() {
		return domain.Book{}, fmt.Errorf("download book %d: %s", id, tr.Status())
	}

	return NewBook(book.Title, tr.String(), c.wordsPerPage)
}
