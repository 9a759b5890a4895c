package handler

import (
	"net/http"

	"github.com/pkg/errors"

	metadomain "github.com/novasync/clinic-api/infrastructure/integrator/meta/domain"
	"github.com/novasync/clinic-api/internal/usecases/insighting"
	"github.com/novasync/clinic-api/pkg/apiErrors"
	"github.com/novasync/clinic-api/pkg/log"
)

// GetMetaCampaigns serves the aggregated campaign overview. A failing
// campaign-list call passes the upstream status and body through; missing
// credentials come back as a 200 with empty data so the front end does not
// fault.
func GetMetaCampaigns(service insighting.CampaignInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("campaigns: fetching campaign overview")

		overview, err := service.GetCampaignOverview()
		if err != nil {
			var upstreamErr *metadomain.UpstreamError
			if errors.As(err, &upstreamErr) {
				logger.WithField("status_code", upstreamErr.StatusCode).Error("campaigns: graph api error")
				apiErrors.WriteError(w, upstreamErr.StatusCode, "Meta API Error", upstreamErr.Details())
				return
			}

			logger.WithError(err).Error("campaigns: failed to build overview")
			apiErrors.WriteInternalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logger.WithError(err).Error("campaigns: failed to encode response")
		}
	})
}
