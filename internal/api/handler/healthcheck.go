package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/novasync/clinic-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"message": "API server is running",
		})
		if err != nil {
			log.L.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
