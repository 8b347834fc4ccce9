package middleware

import (
	"numberhunt/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware rejects everyone outside the allow-list
func AuthMiddleware(access *service.AccessService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			if !access.IsAllowed(sender.ID) {
				// Audit trail for operators
				logger.Warn("Rejected unauthorized user",
					zap.Int64("user_id", sender.ID),
					zap.String("username", sender.Username),
				)
				return c.Send("⛔ У тебя нет доступа к этому боту.")
			}

			return next(c)
		}
	}
}
