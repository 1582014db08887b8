package controllers

import (
	"net/http"

	"github.com/raizapp/raizapp-backend/api/responses"
	"github.com/raizapp/raizapp-backend/api/validators"
	"github.com/raizapp/raizapp-backend/internal/conversations"
	"github.com/raizapp/raizapp-backend/internal/habits"
	"github.com/raizapp/raizapp-backend/internal/insights"
	"github.com/raizapp/raizapp-backend/pkg/logger"
)

type conversationSendRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// InsightsFetch returns the caller's newest insight, seeding the default on
// first visit.
func InsightsFetch(svc insights.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := callerIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		insight, err := svc.Ensure(r.Context(), identity.UserID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, insights.FromModel(insight))
	}
}

// HabitsFetch returns the caller's top habits, seeding the starters on first
// visit.
func HabitsFetch(svc habits.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := callerIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.Ensure(r.Context(), identity.UserID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"habits": habits.FromModels(rows)})
	}
}

// ConversationSend stores the caller's message with its assistant reply.
func ConversationSend(svc conversations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := callerIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body conversationSendRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		conversation, err := svc.Send(r.Context(), identity.UserID, body.Message)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, conversations.FromModel(conversation))
	}
}

// ConversationHistory returns the caller's recent exchanges.
func ConversationHistory(svc conversations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := callerIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 20, 1, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.History(r.Context(), identity.UserID, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"conversations": conversations.FromModels(rows)})
	}
}
