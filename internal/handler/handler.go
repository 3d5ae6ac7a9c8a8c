package handler

import (
	"coursebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// promoImageURL is the picture attached to the greeting
const promoImageURL = "https://i.imgur.com/4M7IWwP.jpg"

// Handler manages all bot interactions
type Handler struct {
	bot       *tele.Bot
	purchases *service.PurchaseService
	logger    *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, purchases *service.PurchaseService, logger *zap.Logger) *Handler {
	return &Handler{
		bot:       bot,
		purchases: purchases,
		logger:    logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)
}
