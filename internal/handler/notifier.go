package handler

import (
	tele "gopkg.in/telebot.v3"
)

// TelegramNotifier sends plain-text messages through the bot. It backs
// the fulfillment service's Notifier dependency.
type TelegramNotifier struct {
	bot *tele.Bot
}

// NewTelegramNotifier creates a notifier over an existing bot
func NewTelegramNotifier(bot *tele.Bot) *TelegramNotifier {
	return &TelegramNotifier{bot: bot}
}

// SendText delivers text to the given chat
func (n *TelegramNotifier) SendText(chatID int64, text string) error {
	_, err := n.bot.Send(&tele.Chat{ID: chatID}, text)
	return err
}
