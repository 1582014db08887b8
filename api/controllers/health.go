package controllers

import (
	"context"
	"net/http"

	"github.com/raizapp/raizapp-backend/api/responses"
	"github.com/raizapp/raizapp-backend/pkg/config"
	pkgerrors "github.com/raizapp/raizapp-backend/pkg/errors"
	"github.com/raizapp/raizapp-backend/pkg/logger"
)

// Pinger is the readiness surface exposed by backing stores.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RaizApp-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RaizApp-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true
		if dbP != nil {
			checks["database"] = pingStatus(r.Context(), dbP, &healthy)
		}
		if redisP != nil {
			checks["redis"] = pingStatus(r.Context(), redisP, &healthy)
		}

		if !healthy {
			err := pkgerrors.New(pkgerrors.CodeDependency, "dependency not ready").WithDetails(checks)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}

func pingStatus(ctx context.Context, p Pinger, healthy *bool) string {
	if err := p.Ping(ctx); err != nil {
		*healthy = false
		return "down"
	}
	return "up"
}
