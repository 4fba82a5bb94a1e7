package handler

import (
	"fmt"
	"strings"

	"wordreader/internal/domain"
	"wordreader/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command and the main menu button
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if !h.authService.IsAuthorized(userID) {
		return c.Send(middleware.PasswordPrompt)
	}

	state := h.GetState(userID)
	text := renderMainMenu(h.statsService.Summary().Counts, state)
	return h.editOrSend(c, text, mainMenuMarkup(state.Book != nil))
}

// handleStats shows progress per status
func (h *Handler) handleStats(c tele.Context) error {
	return h.editOrSend(c, renderSummary(h.statsService.Summary()), backMarkup())
}

// handleLanguage shows or sets the target language: /lang DE
func (h *Handler) handleLanguage(c tele.Context) error {
	userID := c.Sender().ID
	args := c.Args()

	if len(args) == 0 {
		state := h.GetState(userID)
		return c.Send(renderLanguages(state.Language()))
	}

	lang, ok := domain.LookupLanguage(args[0])
	if !ok {
		return c.Send(fmt.Sprintf("Unknown language %q.\n\n%s", args[0], renderLanguages(h.GetState(userID).Language())))
	}

	h.UpdateState(userID, func(s *domain.StateData) {
		s.TargetLang = lang.Code
	})

	h.logger.Info("Target language changed", zap.Int64("user_id", userID), zap.String("target_lang", lang.Code))
	return c.Send(fmt.Sprintf("%s Translations will be in %s", lang.Flag, lang.Label))
}

// renderMainMenu builds the main menu text
func renderMainMenu(counts domain.Counts, state domain.StateData) string {
	var b strings.Builder
	b.WriteString("🏠 Main menu\n\n")
	if state.Book != nil {
		fmt.Fprintf(&b, "📖 Reading: %s (page %d/%d)\n", state.Book.Title, state.Page, state.Book.PageCount())
	} else {
		b.WriteString("Send a PDF or use /gutenberg <query> to find a book.\n")
	}
	fmt.Fprintf(&b, "🌐 Target language: %s\n\n", state.Language())
	fmt.Fprintf(&b, "%s %d · %s %d · %s %d",
		domain.StatusNew.Label(), counts.New,
		domain.StatusLearning.Label(), counts.Learning,
		domain.StatusKnown.Label(), counts.Known,
	)
	return b.String()
}

// renderLanguages lists the supported target languages
func renderLanguages(current string) string {
	var b strings.Builder
	b.WriteString("🌐 Choose a target language with /lang <CODE>:\n\n")
	for _, l := range domain.Languages() {
		marker := ""
		if l.Code == current {
			marker = " ◀️"
		}
		fmt.Fprintf(&b, "%s %s — %s%s\n", l.Flag, l.Code, l.Label, marker)
	}
	return b.String()
}
