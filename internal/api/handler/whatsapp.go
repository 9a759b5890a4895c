package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/novasync/clinic-api/internal/domain"
	"github.com/novasync/clinic-api/internal/usecases/inboxing"
	"github.com/novasync/clinic-api/pkg/apiErrors"
	"github.com/novasync/clinic-api/pkg/log"
	"github.com/novasync/clinic-api/pkg/utils"
)

// WhatsAppSender is the outbound side of the WhatsApp integration.
type WhatsAppSender interface {
	Configured() bool
	SendText(ctx context.Context, to, text string) error
}

// SendMessageRequest is the body of both platform send endpoints: a
// destination (phone number or recipient ID) and the message text.
type SendMessageRequest struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// VerifyWebhook answers Meta's webhook verification challenge. The same
// handshake is used by both messaging platforms, each with its own token.
func VerifyWebhook(verifyToken string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mode := r.URL.Query().Get("hub.mode")
		token := r.URL.Query().Get("hub.verify_token")
		challenge := r.URL.Query().Get("hub.challenge")

		if mode == "" || token == "" {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		if mode == "subscribe" && token == verifyToken {
			log.ForContext(r.Context()).Info("webhook verified")
			fmt.Fprint(w, challenge)
			return
		}

		http.Error(w, "Forbidden", http.StatusForbidden)
	})
}

// WhatsAppWebhook ingests inbound WhatsApp messages. Partial or unexpected
// payloads are tolerated: whatever messages can be found are stored and the
// fixed acknowledgement is always returned.
func WhatsAppWebhook(store *inboxing.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.WhatsAppWebhookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Error("whatsapp webhook: invalid payload")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		for _, entry := range req.Entry {
			for _, change := range entry.Changes {
				value := change.Value
				for _, msg := range value.Messages {
					text := ""
					if msg.Text != nil {
						text = msg.Text.Body
					}

					sender := msg.From
					if len(value.Contacts) > 0 && value.Contacts[0].Profile.Name != "" {
						sender = value.Contacts[0].Profile.Name
					}

					store.Prepend(domain.Message{
						ID:       msg.ID,
						Platform: domain.PlatformWhatsApp,
						Sender:   sender,
						From:     msg.From,
						Text:     text,
						Time:     "Just now",
						Unread:   true,
					})

					logger.WithField("from", msg.From).Info("whatsapp webhook: message stored")
				}
			}
		}

		fmt.Fprint(w, "EVENT_RECEIVED")
	})
}

// SendWhatsAppMessage sends the text via the Cloud API when credentials are
// configured and always records the outbound message in the inbox. The
// upstream result is logged, not required.
func SendWhatsAppMessage(store *inboxing.Store, sender WhatsAppSender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("whatsapp send: invalid request body")
			apiErrors.WriteInternalError(w, err)
			return
		}

		if req.To == "" || req.Text == "" {
			apiErrors.WriteBadRequest(w, "Missing to or text")
			return
		}

		if sender.Configured() {
			if err := sender.SendText(r.Context(), req.To, req.Text); err != nil {
				logger.WithError(err).Error("whatsapp send: upstream send failed")
			}
		} else {
			logger.Warn("whatsapp send: missing credentials, simulating send")
		}

		message := domain.Message{
			ID:       outboundMessageID("sent_"),
			Platform: domain.PlatformWhatsApp,
			Sender:   "me",
			To:       req.To,
			Text:     req.Text,
			Time:     "Just now",
			Unread:   false,
		}
		store.Prepend(message)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(message)
	})
}

func outboundMessageID(prefix string) string {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Sprintf("%s%d", prefix, time.Now().Unix())
	}
	return prefix + id
}
