package controllers

import (
	"net/http"

	"github.com/lucvieira/gamedeals-backend/api/responses"
	"github.com/lucvieira/gamedeals-backend/pkg/config"
	pkgerrors "github.com/lucvieira/gamedeals-backend/pkg/errors"
	"github.com/lucvieira/gamedeals-backend/pkg/logger"
	"github.com/lucvieira/gamedeals-backend/pkg/redis"
)

const envHeader = "X-GameDeals-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies optional dependencies. The upstream API is not pinged
// here: readiness should not depend on a third party the service already
// degrades around.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisPinger redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		if redisPinger != nil {
			if err := redisPinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
