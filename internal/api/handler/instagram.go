package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/novasync/clinic-api/internal/domain"
	"github.com/novasync/clinic-api/internal/usecases/inboxing"
	"github.com/novasync/clinic-api/pkg/apiErrors"
	"github.com/novasync/clinic-api/pkg/log"
)

// InstagramSender is the outbound side of the Instagram integration.
type InstagramSender interface {
	Configured() bool
	SendText(ctx context.Context, recipientID, text string) error
}

// InstagramWebhook ingests inbound Instagram DMs. Entries carry either a
// messaging array or the changes/value form; events without text content
// are skipped.
func InstagramWebhook(store *inboxing.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.InstagramWebhookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Error("instagram webhook: invalid payload")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		for _, entry := range req.Entry {
			for _, event := range entry.Messaging {
				if event.Message == nil || event.Message.Text == "" {
					continue
				}

				store.Prepend(domain.Message{
					ID:       event.Message.MID,
					Platform: domain.PlatformInstagram,
					Sender:   "Instagram User",
					From:     event.Sender.ID,
					Text:     event.Message.Text,
					Time:     "Just now",
					Unread:   true,
				})

				logger.WithField("from", event.Sender.ID).Info("instagram webhook: message stored")
			}

			for _, change := range entry.Changes {
				for _, msg := range change.Value.Messages {
					if msg.Text == "" {
						continue
					}

					store.Prepend(domain.Message{
						ID:       msg.ID,
						Platform: domain.PlatformInstagram,
						Sender:   "Instagram User",
						From:     msg.From,
						Text:     msg.Text,
						Time:     "Just now",
						Unread:   true,
					})

					logger.WithField("from", msg.From).Info("instagram webhook: message stored")
				}
			}
		}

		fmt.Fprint(w, "EVENT_RECEIVED")
	})
}

// SendInstagramMessage mirrors the WhatsApp send flow with a recipient-id
// addressing scheme.
func SendInstagramMessage(store *inboxing.Store, sender InstagramSender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("instagram send: invalid request body")
			apiErrors.WriteInternalError(w, err)
			return
		}

		if req.To == "" || req.Text == "" {
			apiErrors.WriteBadRequest(w, "Missing to or text")
			return
		}

		if sender.Configured() {
			if err := sender.SendText(r.Context(), req.To, req.Text); err != nil {
				logger.WithError(err).Error("instagram send: upstream send failed")
			}
		} else {
			logger.Warn("instagram send: missing access token, simulating send")
		}

		message := domain.Message{
			ID:       outboundMessageID("sent_ig_"),
			Platform: domain.PlatformInstagram,
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
