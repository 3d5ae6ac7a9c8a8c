package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates a middleware that logs every handled update and any
// handler failure
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if sender := c.Sender(); sender != nil {
				logger.Info("Handling update",
					zap.Int64("user_id", sender.ID),
					zap.String("username", sender.Username),
				)
			}

			err := next(c)
			if err != nil {
				logger.Error("Update handler failed", zap.Error(err))
			}
			return err
		}
	}
}
