package controllers

import (
	"net/http"

	"github.com/raizapp/raizapp-backend/api/responses"
	"github.com/raizapp/raizapp-backend/internal/statistics"
	"github.com/raizapp/raizapp-backend/pkg/logger"
)

// PromoStats serves the public landing-page counters.
func PromoStats(svc statistics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.PublicStats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}
