package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/raizapp/raizapp-backend/api/responses"
	pkgerrors "github.com/raizapp/raizapp-backend/pkg/errors"
	"github.com/raizapp/raizapp-backend/pkg/logger"
)

type adminChecker interface {
	IsAdmin(ctx context.Context, id uuid.UUID) (bool, error)
}

// RequireAdmin gates a route group on the caller's admin flag. Deployments
// without the flag column simply see every caller as non-admin.
func RequireAdmin(checker adminChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := uuid.Parse(UserIDFromContext(r.Context()))
			if err != nil || userID == uuid.Nil {
				respondErr := pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
				responses.WriteError(r.Context(), logg, w, respondErr)
				return
			}

			isAdmin, err := checker.IsAdmin(r.Context(), userID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			if !isAdmin {
				respondErr := pkgerrors.New(pkgerrors.CodeForbidden, "admin access required")
				responses.WriteError(r.Context(), logg, w, respondErr)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
