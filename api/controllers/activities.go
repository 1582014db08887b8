package controllers

import (
	"net/http"

	"github.com/raizapp/raizapp-backend/api/responses"
	"github.com/raizapp/raizapp-backend/api/validators"
	"github.com/raizapp/raizapp-backend/internal/activities"
	"github.com/raizapp/raizapp-backend/pkg/logger"
)

type activityCreateRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"max=1000"`
	ActivityType string `json:"activity_type" validate:"required,min=1,max=60"`
}

// ActivityCreate records a journey event for the caller.
func ActivityCreate(svc activities.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := callerIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body activityCreateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		activity, err := svc.Record(r.Context(), identity.UserID, body.Title, body.Description, body.ActivityType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, activities.FromModel(activity))
	}
}

// ActivityList returns the caller's most recent activities.
func ActivityList(svc activities.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := callerIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 10, 1, 50)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.ListRecent(r.Context(), identity.UserID, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"activities": activities.FromModels(rows)})
	}
}
