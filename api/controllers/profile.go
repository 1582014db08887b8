package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/raizapp/raizapp-backend/api/middleware"
	"github.com/raizapp/raizapp-backend/api/responses"
	"github.com/raizapp/raizapp-backend/api/validators"
	"github.com/raizapp/raizapp-backend/internal/profiles"
	pkgerrors "github.com/raizapp/raizapp-backend/pkg/errors"
	"github.com/raizapp/raizapp-backend/pkg/logger"
)

// ProfileFetch returns the caller's profile, creating it when absent.
func ProfileFetch(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := callerIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.Ensure(r.Context(), identity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profiles.FromModel(profile))
	}
}

// ProfileUpdate saves the editable profile fields.
func ProfileUpdate(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := callerIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body profiles.SaveRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.Save(r.Context(), identity.UserID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profiles.FromModel(profile))
	}
}

// ProfileStartTrial flips the caller's subscription into the trial window.
func ProfileStartTrial(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := callerIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.StartTrial(r.Context(), identity.UserID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profiles.FromModel(profile))
	}
}

func callerIdentity(r *http.Request) (profiles.Identity, error) {
	raw := middleware.UserIDFromContext(r.Context())
	userID, err := uuid.Parse(raw)
	if err != nil || userID == uuid.Nil {
		return profiles.Identity{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	return profiles.Identity{
		UserID: userID,
		Email:  middleware.EmailFromContext(r.Context()),
		Name:   middleware.NameFromContext(r.Context()),
	}, nil
}
