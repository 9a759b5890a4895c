package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/novasync/clinic-api/internal/usecases/calling"
	"github.com/novasync/clinic-api/pkg/apiErrors"
	"github.com/novasync/clinic-api/pkg/log"
)

const defaultCallListLimit = 50

// InitiateCallRequest is the front end's call request body.
type InitiateCallRequest struct {
	PhoneNumber string            `json:"phoneNumber"`
	Name        string            `json:"name"`
	Variables   map[string]string `json:"variables"`
}

func InitiateCall(service calling.Caller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req InitiateCallRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("calls: invalid request body")
			apiErrors.WriteInternalError(w, err)
			return
		}

		if req.PhoneNumber == "" {
			apiErrors.WriteBadRequest(w, "Phone number is required")
			return
		}
		if req.Name == "" {
			req.Name = "Test User"
		}

		logger.WithField("phone_number", req.PhoneNumber).Info("calls: initiating call")

		resp, err := service.InitiateCall(req.PhoneNumber, req.Name, req.Variables)
		if err != nil {
			if errors.Is(err, calling.ErrNotConfigured) {
				apiErrors.WriteError(w, http.StatusInternalServerError, "Server misconfiguration: Missing Vapi env vars", nil)
				return
			}
			logger.WithError(err).Error("calls: failed to initiate call")
			apiErrors.WriteInternalError(w, err)
			return
		}

		if resp.Success() {
			w.Header().Set("Content-Type", "application/json")
			w.Write(resp.Body)
			return
		}

		logger.WithField("status_code", resp.StatusCode).Error("calls: upstream rejected the call")
		apiErrors.WriteError(w, resp.StatusCode, "Vapi Error", string(resp.Body))
	})
}

func ListCalls(service calling.Caller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := defaultCallListLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteBadRequest(w, "limit must be an integer")
				return
			}
			limit = parsed
		}

		logger.WithField("limit", limit).Info("calls: fetching call history")

		resp, err := service.ListCalls(limit)
		if err != nil {
			if errors.Is(err, calling.ErrNotConfigured) {
				apiErrors.WriteError(w, http.StatusInternalServerError, "Server misconfiguration: Missing VAPI_API_KEY", nil)
				return
			}
			logger.WithError(err).Error("calls: failed to fetch call history")
			apiErrors.WriteInternalError(w, err)
			return
		}

		if resp.StatusCode == http.StatusOK {
			w.Header().Set("Content-Type", "application/json")
			w.Write(resp.Body)
			return
		}

		logger.WithField("status_code", resp.StatusCode).Error("calls: upstream call history error")
		apiErrors.WriteError(w, resp.StatusCode, "Vapi Error", string(resp.Body))
	})
}
