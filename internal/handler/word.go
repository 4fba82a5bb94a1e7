package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	"wordreader/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const lookupTimeout = 15 * time.Second

// handleText handles all text messages: the password while locked, a word lookup otherwise
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if !h.authService.IsAuthorized(userID) {
		if h.authService.CheckPassword(text) {
			h.authService.AuthorizeUser(userID)
			h.logger.Info("User authorized", zap.Int64("user_id", userID))
			return c.Send("✅ Access granted!\n\n"+renderMainMenu(h.statsService.Summary().Counts, h.GetState(userID)),
				mainMenuMarkup(false))
		}
		return c.Send("❌ Wrong password")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	state := h.GetState(userID)
	result, err := h.lookupService.Lookup(ctx, text, state.Language())
	if err != nil {
		h.logger.Warn("Lookup failed",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("word", text),
		)
		if errors.Is(err, domain.ErrEmptyWord) {
			return c.Send("Send me a single word to translate.")
		}
		return c.Send("❌ Translation failed: " + err.Error())
	}

	h.UpdateState(userID, func(s *domain.StateData) {
		s.LastLookup = result.Original
		s.Translation = result.Translation
	})

	var word *domain.Word
	if result.Saved {
		if w, ok := h.vocabService.Word(result.WordID); ok {
			word = &w
		}
	}
	return c.Send(renderLookup(result.Original, result.Translation, word), lookupMarkup(word))
}

// handleSave adds the last looked-up word to the vocabulary
func (h *Handler) handleSave(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.LastLookup == "" {
		return c.Respond(&tele.CallbackResponse{Text: "Look up a word first"})
	}

	word, err := h.vocabService.AddWord(state.LastLookup, state.Translation, domain.StatusNew)
	if err != nil {
		h.logger.Error("Failed to save word", zap.Error(err), zap.Int64("user_id", userID))
		if word.ID == 0 {
			return c.Respond(&tele.CallbackResponse{Text: "Could not save the word", ShowAlert: true})
		}
	}

	return h.editOrSend(c, renderLookup(word.Original, word.Translation, &word), lookupMarkup(&word))
}

// handleCycle moves a word to its next status
func (h *Handler) handleCycle(c tele.Context, data string) error {
	id, err := parseIntSuffix(data, prefixCycle)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid word"})
	}

	word, ok, err := h.vocabService.AdvanceStatus(id)
	return h.showWordUpdate(c, word, ok, err)
}

// handleSetStatus sets a word's status directly
func (h *Handler) handleSetStatus(c tele.Context, data string) error {
	id, status, err := parseSetData(data)
	if err != nil {
		h.logger.Warn("Malformed status callback", zap.Error(err), zap.String("data", data))
		return c.Respond(&tele.CallbackResponse{Text: "Invalid status"})
	}

	word, ok, err := h.vocabService.UpdateStatus(id, status)
	return h.showWordUpdate(c, word, ok, err)
}

func (h *Handler) showWordUpdate(c tele.Context, word domain.Word, found bool, err error) error {
	if !found {
		return c.Respond(&tele.CallbackResponse{Text: "This word is no longer in your vocabulary"})
	}
	if err != nil {
		h.logger.Error("Failed to store status change", zap.Error(err), zap.Int("word_id", word.ID))
	}
	return h.editOrSend(c, renderLookup(word.Original, word.Translation, &word), lookupMarkup(&word))
}

// handleRemove removes a word from the vocabulary
func (h *Handler) handleRemove(c tele.Context, data string) error {
	id, err := parseIntSuffix(data, prefixRemove)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid word"})
	}

	word, ok := h.vocabService.Word(id)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Already removed"})
	}

	if err := h.vocabService.RemoveWord(id); err != nil {
		h.logger.Error("Failed to remove word", zap.Error(err), zap.Int("word_id", id))
	}

	return h.editOrSend(c, "🗑 Removed: "+word.Original, lookupMarkup(nil))
}

// handleWords lists the vocabulary
func (h *Handler) handleWords(c tele.Context) error {
	return h.editOrSend(c, renderWords(h.vocabService.Words()), backMarkup())
}
