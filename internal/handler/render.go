package handler

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"wordreader/internal/domain"
	"wordreader/internal/service"

	tele "gopkg.in/telebot.v3"
)

// Telegram rejects messages longer than 4096 characters
const maxMessageRunes = 4000

// maxListedWords caps the /words list
const maxListedWords = 50

func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit-1]) + "…"
}

// renderLookup describes a looked-up word and its tracking status
func renderLookup(original, translation string, word *domain.Word) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 %s\n", original)
	if translation == "" {
		b.WriteString("🔄 (no translation)\n")
	} else {
		fmt.Fprintf(&b, "🔄 %s\n", translation)
	}
	if word != nil {
		fmt.Fprintf(&b, "\nStatus: %s", word.Status.Label())
	} else {
		b.WriteString("\nNot in your vocabulary yet.")
	}
	return b.String()
}

// lookupMarkup offers saving an untracked word, or status controls for a tracked one
func lookupMarkup(word *domain.Word) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	if word == nil {
		markup.Inline(markup.Row(btnSave), markup.Row(btnMainMenu))
		return markup
	}

	id := word.ID
	setRow := tele.Row{}
	for _, st := range domain.Statuses() {
		if st == word.Status {
			continue
		}
		setRow = append(setRow, markup.Data(st.Label(), fmt.Sprintf("%s%d_%s", prefixSet, id, st)))
	}

	markup.Inline(
		markup.Row(
			markup.Data("🔁 "+word.Status.Next().String(), fmt.Sprintf("%s%d", prefixCycle, id)),
			markup.Data("🗑 Remove", fmt.Sprintf("%s%d", prefixRemove, id)),
		),
		setRow,
		markup.Row(btnMainMenu),
	)
	return markup
}

// renderWords lists tracked words in the order they were added
func renderWords(words []domain.Word) string {
	if len(words) == 0 {
		return "📚 Your vocabulary is empty.\n\nSend me a word to look it up."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 Your words (%d):\n\n", len(words))
	for i, w := range words {
		if i == maxListedWords {
			fmt.Fprintf(&b, "… and %d more", len(words)-maxListedWords)
			break
		}
		fmt.Fprintf(&b, "%d. %s — %s [%s]\n", i+1, w.Original, w.Translation, w.Status)
	}
	return truncate(b.String(), maxMessageRunes)
}

// renderSummary shows per-status counts
func renderSummary(summary service.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Progress: %d words\n\n", summary.Total)
	for _, l := range summary.Labels {
		fmt.Fprintf(&b, "%s: %d\n", l.Label, l.Count)
	}
	return b.String()
}

// renderPage shows one page of the current book
func renderPage(book domain.Book, page int) string {
	text, ok := book.Page(page)
	if !ok {
		return "Page not found"
	}
	header := fmt.Sprintf("📖 %s — %d/%d\n\n", book.Title, page, book.PageCount())
	return truncate(header+text, maxMessageRunes)
}

// pageMarkup adds navigation between pages
func pageMarkup(book domain.Book, page int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	navRow := tele.Row{}
	if page > 1 {
		navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("%s%d", prefixPage, page-1)))
	}
	if page < book.PageCount() {
		navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("%s%d", prefixPage, page+1)))
	}
	if len(navRow) > 0 {
		rows = append(rows, navRow)
	}
	rows = append(rows, markup.Row(btnMainMenu))

	markup.Inline(rows...)
	return markup
}

// renderSearchResults lists catalog books
func renderSearchResults(query string, books []domain.BookSummary) string {
	if len(books) == 0 {
		return fmt.Sprintf("🔎 Nothing found for %q", query)
	}
	return fmt.Sprintf("🔎 Books for %q — pick one to read:", query)
}

// searchMarkup has one button per book
func searchMarkup(books []domain.BookSummary) *tele.ReplyMarkup {
	const maxResults = 10

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for i, book := range books {
		if i == maxResults {
			break
		}
		label := book.Title
		if len(book.Authors) > 0 {
			label = fmt.Sprintf("%s (%s)", book.Title, book.Authors[0])
		}
		rows = append(rows, markup.Row(markup.Data(truncate(label, 60), fmt.Sprintf("%s%d", prefixBook, book.ID))))
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return markup
}

func backMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))
	return markup
}
