package handler

import (
	"net/http"

	"github.com/novasync/clinic-api/internal/usecases/agenda"
	"github.com/novasync/clinic-api/pkg/apiErrors"
	"github.com/novasync/clinic-api/pkg/log"
)

func GetAppointments(service agenda.AppointmentLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("appointments: fetching upcoming events")

		result, err := service.Upcoming(r.Context())
		if err != nil {
			logger.WithError(err).Error("appointments: failed to fetch calendar")
			apiErrors.WriteInternalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("appointments: failed to encode response")
		}
	})
}
