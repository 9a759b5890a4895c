package handler

import (
	"net/http"

	"github.com/novasync/clinic-api/internal/usecases/inboxing"
	"github.com/novasync/clinic-api/pkg/log"
)

// GetMessages returns the whole inbox, newest first. No pagination or
// platform filtering.
func GetMessages(store *inboxing.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		messages := store.List()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(messages); err != nil {
			logger.WithError(err).Error("messages: failed to encode response")
		}
	})
}
