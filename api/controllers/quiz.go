package controllers

import (
	"net/http"

	"github.com/raizapp/raizapp-backend/api/responses"
	"github.com/raizapp/raizapp-backend/api/validators"
	"github.com/raizapp/raizapp-backend/internal/quiz"
	"github.com/raizapp/raizapp-backend/pkg/logger"
)

type quizSubmitRequest struct {
	Answers map[int]string `json:"answers" validate:"required"`
}

// QuizQuestions returns the fixed onboarding questionnaire.
func QuizQuestions(svc quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"questions": svc.Questions()})
	}
}

// QuizSubmit upserts the caller's answers and records the completion activity.
func QuizSubmit(svc quiz.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := callerIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body quizSubmitRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Submit(r.Context(), identity.UserID, body.Answers); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "submitted"})
	}
}

// QuizResponses returns the caller's stored answers in question order.
func QuizResponses(svc quiz.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := callerIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.Responses(r.Context(), identity.UserID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"responses": quiz.ResponsesFromModels(rows)})
	}
}

// QuizStatus reports whether the caller has completed the questionnaire.
func QuizStatus(svc quiz.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := callerIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		completed, err := svc.Completed(r.Context(), identity.UserID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"completed": completed})
	}
}
