package handler

import (
	"errors"
	"fmt"
	"strings"

	"coursebot/internal/domain"
	"coursebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText dispatches a plain text message. First match wins:
// buy command, informational keyword, e-mail capture, then the
// greeting as the fallback.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())
	lower := strings.ToLower(text)

	if strings.HasPrefix(lower, "buy") {
		return h.handleBuy(c, lower)
	}

	if promo, ok := domain.PromoFor(lower); ok {
		return c.Send(promo)
	}

	if h.purchases.AwaitingEmail(userID) {
		return h.handleEmail(c, text)
	}

	return h.handleStart(c)
}

// handleBuy handles "buy [course]"
func (h *Handler) handleBuy(c tele.Context, lower string) error {
	userID := c.Sender().ID

	_, token := splitCommand(lower)
	if token == "" {
		return c.Send("Tell me which course you want, like this: buy physics")
	}

	course, info, err := h.purchases.BeginPurchase(userID, token)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCourse) {
			return c.Send(fmt.Sprintf(
				"I don't know the course %q. Valid courses: %s.",
				token,
				strings.Join(h.purchases.Catalog().Names(), ", "),
			))
		}
		h.logger.Error("Failed to begin purchase",
			zap.Int64("user_id", userID),
			zap.String("course", token),
			zap.Error(err),
		)
		return c.Send("Something went wrong, please try again later.")
	}

	h.logger.Info("Purchase started",
		zap.Int64("user_id", userID),
		zap.String("course", string(course)),
	)

	return c.Send(fmt.Sprintf(
		"The %s course costs ₹%d. Pay here: %s\n\nThen reply with the e-mail address "+
			"of your Google account - access is granted to that address.",
		strings.ToUpper(string(course)), info.Price, info.PaymentURL,
	))
}

// handleEmail captures the buyer's e-mail address
func (h *Handler) handleEmail(c tele.Context, text string) error {
	userID := c.Sender().ID

	err := h.purchases.SubmitEmail(userID, text)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			return c.Send("That doesn't look like an e-mail address, please try again.")
		}
		h.logger.Error("Failed to submit email",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send("Something went wrong, please try again later.")
	}

	h.logger.Info("Email recorded",
		zap.Int64("user_id", userID),
	)

	return c.Send(fmt.Sprintf(
		"Got it! As soon as your payment is confirmed, %s will receive access to the course folder.",
		text,
	))
}

// splitCommand splits "buy physics" into the command and its argument
func splitCommand(text string) (string, string) {
	fields := strings.Fields(text)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], fields[1]
	}
}
