package controllers

import (
	"net/http"

	"github.com/raizapp/raizapp-backend/api/responses"
	"github.com/raizapp/raizapp-backend/internal/profiles"
	"github.com/raizapp/raizapp-backend/internal/statistics"
	"github.com/raizapp/raizapp-backend/pkg/logger"
)

// AdminStats returns the latest app-wide statistics snapshot.
func AdminStats(svc statistics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := svc.AdminStats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, statistics.FromModel(snapshot))
	}
}

// AdminUsers lists every profile for the admin panel.
func AdminUsers(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		users := make([]*profiles.ProfileDTO, 0, len(rows))
		for i := range rows {
			users = append(users, profiles.FromModel(&rows[i]))
		}
		responses.WriteSuccess(w, map[string]any{"users": users})
	}
}
