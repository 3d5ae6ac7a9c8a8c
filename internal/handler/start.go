package handler

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart sends the full greeting: the formatted welcome text and
// the promotional image. It is also the fallback for any text nothing
// else matched.
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("Sending greeting",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := c.Send(welcomeText(h.purchases.Catalog().Names()), tele.ModeMarkdownV2); err != nil {
		h.logger.Error("Failed to send welcome text",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return err
	}

	// Image delivery failing must not fail the update: degrade to a
	// plain-text apology and carry on.
	photo := &tele.Photo{File: tele.FromURL(promoImageURL)}
	if err := c.Send(photo); err != nil {
		h.logger.Warn("Failed to send promo image, sending apology",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		if err := c.Send("Sorry, the course poster could not be loaded right now."); err != nil {
			h.logger.Warn("Failed to send apology", zap.Error(err))
		}
	}

	return nil
}

// welcomeText builds the MarkdownV2 greeting. Literal punctuation is
// escaped or Telegram rejects the message.
func welcomeText(courses []string) string {
	list := make([]string, len(courses))
	for i, course := range courses {
		list[i] = escapeMarkdownV2(fmt.Sprintf("• %s", course))
	}

	return strings.Join([]string{
		"*Welcome to the Course Store*",
		"",
		escapeMarkdownV2("Full notes and solved papers, delivered straight to your Google Drive."),
		"",
		escapeMarkdownV2("Available courses:"),
		strings.Join(list, "\n"),
		"",
		escapeMarkdownV2("Send \"buy <course>\" to purchase, or \"price\" to see the price list."),
	}, "\n")
}
