package server

import (
	"encoding/json"
	"io"
	"net/http"

	"coursebot/internal/service"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// paymentPayload mirrors the gateway's webhook body. chat_id arrives as
// a number or a string depending on the gateway version, so it is
// decoded as json.Number.
type paymentPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Email    string `json:"email"`
		Metadata struct {
			Course string      `json:"course"`
			ChatID json.Number `json:"chat_id"`
		} `json:"metadata"`
	} `json:"payload"`
}

// handlePaymentWebhook verifies the delivery signature, then hands the
// event to fulfillment. Authenticated deliveries are always answered
// with 200 - handled or not - so the gateway never retries.
func (s *Server) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error("Failed to read payment webhook body", zap.Error(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response{Status: "error", Error: "failed to read body"})
		return
	}
	defer r.Body.Close()

	signature := r.Header.Get("X-Api-Signature")
	if signature == "" || !verifySignature(s.secret, body, signature) {
		s.logger.Warn("Rejected payment webhook with invalid signature")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response{Status: "error", Error: "invalid signature"})
		return
	}

	var payload paymentPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		s.logger.Error("Failed to decode payment webhook payload", zap.Error(err))
		render.JSON(w, r, response{Status: "ignored"})
		return
	}

	// A delivery without a usable chat_id cannot be fulfilled: there is
	// nobody to confirm to and no record to evict, so no grant either
	chatID, err := payload.Payload.Metadata.ChatID.Int64()
	if err != nil {
		s.logger.Error("Payment webhook missing or non-numeric chat_id",
			zap.String("chat_id", payload.Payload.Metadata.ChatID.String()),
		)
		render.JSON(w, r, response{Status: "ignored"})
		return
	}

	ev := service.PaymentEvent{
		Event:  payload.Event,
		Email:  payload.Payload.Email,
		Course: payload.Payload.Metadata.Course,
		ChatID: chatID,
	}

	if s.fulfiller.HandlePaymentEvent(r.Context(), ev) {
		render.JSON(w, r, response{Status: "handled"})
		return
	}
	render.JSON(w, r, response{Status: "ignored"})
}
