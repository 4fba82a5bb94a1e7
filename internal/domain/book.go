package domain

// Book is an imported text split into pages
type Book struct {
	Title string   `json:"title"`
	Pages []string `json:"pages"`
}

// PageCount returns the number of pages
func (b Book) PageCount() int {
	return len(b.Pages)
}

// Page returns page n (1-based) and whether it exists
func (b Book) Page(n int) (string, bool) {
	if n < 1 || n > len(b.Pages) {
		return "", false
	}
	return b.Pages[n-1], true
}

// BookSummary describes a public-domain book found in the catalog
type BookSummary struct {
	ID            uint64   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	DownloadCount uint64   `json:"download_count"`
}
