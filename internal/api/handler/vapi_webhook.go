package handler

import (
	"net/http"

	"github.com/novasync/clinic-api/internal/domain"
	"github.com/novasync/clinic-api/internal/usecases/booking"
	"github.com/novasync/clinic-api/pkg/apiErrors"
	"github.com/novasync/clinic-api/pkg/log"
)

// VapiWebhook handles tool calls and events from the voice agent. Tool
// failures are embedded as result text in a 200 response; only transport
// level problems produce an error status.
func VapiWebhook(dispatcher booking.ToolDispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.VapiWebhookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Error("vapi webhook: invalid payload")
			apiErrors.WriteInternalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if req.Message == nil || req.Message.Type != domain.ServerMessageTypeToolCalls {
			json.NewEncoder(w).Encode(map[string]string{"status": "ignored"})
			return
		}

		logger.WithField("tool_call_count", len(req.Message.ToolCalls)).Info("vapi webhook: dispatching tool calls")

		results := dispatcher.Dispatch(r.Context(), req.Message.ToolCalls)

		json.NewEncoder(w).Encode(domain.VapiWebhookResponse{Results: results})
	})
}
