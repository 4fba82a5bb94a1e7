package handler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"wordreader/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Callback data prefixes of dynamic buttons
const (
	prefixPage   = "page_"
	prefixBook   = "book_"
	prefixCycle  = "cycle_"
	prefixSet    = "set_"
	prefixRemove = "remove_"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseIntSuffix parses the number after prefix, e.g. "cycle_12" → 12
func parseIntSuffix(data, prefix string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(data, prefix))
}

// parseSetData parses "set_<id>_<status>"
func parseSetData(data string) (int, domain.Status, error) {
	rest := strings.TrimPrefix(data, prefixSet)
	idStr, statusStr, ok := strings.Cut(rest, "_")
	if !ok {
		return 0, "", fmt.Errorf("malformed status data %q", data)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, "", fmt.Errorf("malformed word id %q: %w", idStr, err)
	}
	status, err := domain.ParseStatus(statusStr)
	if err != nil {
		return 0, "", err
	}
	return id, status, nil
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Pressing the same button twice leaves the message unchanged
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// editOrSend edits the message under a pressed button, or sends a new one for commands
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons whose Unique did not reach their own handler
	key := callback.Unique
	if key == "" {
		key = data
	}
	switch key {
	case btnWords.Unique:
		return h.handleWords(c)
	case btnStats.Unique:
		return h.handleStats(c)
	case btnContinue.Unique:
		return h.handleContinue(c)
	case btnSave.Unique:
		return h.handleSave(c)
	case btnMainMenu.Unique:
		return h.handleStart(c)
	}

	switch {
	case strings.HasPrefix(data, prefixPage):
		return h.handlePage(c, data)
	case strings.HasPrefix(data, prefixBook):
		return h.handleBookSelection(c, data)
	case strings.HasPrefix(data, prefixCycle):
		return h.handleCycle(c, data)
	case strings.HasPrefix(data, prefixSet):
		return h.handleSetStatus(c, data)
	case strings.HasPrefix(data, prefixRemove):
		return h.handleRemove(c, data)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
