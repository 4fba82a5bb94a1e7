// Package library imports readable texts: uploaded PDF documents and
// public-domain books from Project Gutenberg.
package library

import "strings"

// WordsPerPage is the default page size in words
const WordsPerPage = 300

// SplitIntoPages splits text on whitespace and joins every wordsPerPage
// words into one page. A non-positive wordsPerPage selects WordsPerPage.
func SplitIntoPages(text string, wordsPerPage int) []string {
	if wordsPerPage <= 0 {
		wordsPerPage = WordsPerPage
	}

	words := strings.Fields(text)
	pages := make([]string, 0, (len(words)+wordsPerPage-1)/wordsPerPage)
	for i := 0; i < len(words); i += wordsPerPage {
		end := i + wordsPerPage
		if end > len(words) {
			end = len(words)
		}
		pages = append(pages, strings.Join(words[i:end], " "))
	}
	return pages
}
