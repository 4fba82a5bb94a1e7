package middleware

import (
	"strings"

	"wordreader/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// PasswordPrompt is sent to users who have not entered the password yet
const PasswordPrompt = "🔒 This reader is private. Send the password to continue."

// AuthMiddleware creates authentication middleware.
// Plain text always passes so the handler can check the password.
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if authService.IsAuthorized(userID) {
				return next(c)
			}

			if c.Callback() != nil {
				logger.Debug("Rejected callback from unauthorized user", zap.Int64("user_id", userID))
				return c.Respond(&tele.CallbackResponse{Text: "Send the password first", ShowAlert: true})
			}

			text := strings.TrimSpace(c.Text())
			if text != "" && !strings.HasPrefix(text, "/") {
				return next(c)
			}

			logger.Info("Prompting unauthorized user for password", zap.Int64("user_id", userID))
			return c.Send(PasswordPrompt)
		}
	}
}
