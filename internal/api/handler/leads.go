package handler

import (
	"net/http"

	"github.com/novasync/clinic-api/internal/usecases/leads"
	"github.com/novasync/clinic-api/pkg/apiErrors"
	"github.com/novasync/clinic-api/pkg/log"
)

func GetLeads(service leads.LeadLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("leads: fetching leads from sheet")

		result, err := service.List(r.Context())
		if err != nil {
			logger.WithError(err).Error("leads: failed to fetch sheet")
			apiErrors.WriteInternalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("leads: failed to encode response")
		}
	})
}
