// Package server exposes the two webhook endpoints: Telegram updates
// and payment-gateway notifications.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"coursebot/internal/service"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// UpdateProcessor feeds one Telegram update through the bot's
// handlers, synchronously
type UpdateProcessor interface {
	ProcessUpdate(u tele.Update)
}

// Fulfiller processes a normalized payment event
type Fulfiller interface {
	HandlePaymentEvent(ctx context.Context, ev service.PaymentEvent) bool
}

// Server routes webhook deliveries to the bot and the fulfillment flow
type Server struct {
	bot       UpdateProcessor
	fulfiller Fulfiller
	secret    string
	logger    *zap.Logger
}

// New creates a webhook server. secret gates both endpoints: Telegram
// sends it back verbatim in a header, the payment gateway signs the
// body with it.
func New(bot UpdateProcessor, fulfiller Fulfiller, secret string, logger *zap.Logger) *Server {
	return &Server{
		bot:       bot,
		fulfiller: fulfiller,
		secret:    secret,
		logger:    logger,
	}
}

// Routes builds the HTTP handler
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
	)

	r.Post("/webhook/telegram", s.handleTelegramUpdate)
	r.Post("/payment_webhook", s.handlePaymentWebhook)

	return r
}

// response is the JSON body every endpoint answers with
type response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// handleTelegramUpdate decodes one update envelope and runs it through
// the bot before responding
func (s *Server) handleTelegramUpdate(w http.ResponseWriter, r *http.Request) {
	// Telegram echoes the secret_token given at webhook registration;
	// anything else is a forgery
	if !secretTokenMatches(r.Header.Get("X-Telegram-Bot-Api-Secret-Token"), s.secret) {
		s.logger.Warn("Rejected telegram update with bad secret token")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response{Status: "error", Error: "unauthorized"})
		return
	}

	var update tele.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.logger.Error("Failed to decode telegram update", zap.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response{Status: "error", Error: "failed to parse update"})
		return
	}

	// Handled fully before responding; the bot runs synchronously
	s.bot.ProcessUpdate(update)

	render.JSON(w, r, response{Status: "ok"})
}
