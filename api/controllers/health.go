package controllers

import (
	"net/http"

	"github.com/xyzcommerce/supplier-discount-backend/api/responses"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/config"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/db"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/logger"
	pkgredis "github.com/xyzcommerce/supplier-discount-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SupplierDisc-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness only when both backing stores answer a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP pkgredis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SupplierDisc-Env", cfg.App.Env)

		checks := map[string]string{
			"database": "ok",
			"redis":    "ok",
		}
		healthy := true

		if dbP == nil {
			checks["database"] = "unconfigured"
			healthy = false
		} else if err := dbP.Ping(r.Context()); err != nil {
			checks["database"] = "unavailable"
			healthy = false
			if logg != nil {
				logg.Error(r.Context(), "health.database_ping_failed", err)
			}
		}

		if redisP == nil {
			checks["redis"] = "unconfigured"
			healthy = false
		} else if err := redisP.Ping(r.Context()); err != nil {
			checks["redis"] = "unavailable"
			healthy = false
			if logg != nil {
				logg.Error(r.Context(), "health.redis_ping_failed", err)
			}
		}

		status := "ready"
		code := http.StatusOK
		if !healthy {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		responses.WriteSuccessStatus(w, code, map[string]any{
			"status": status,
			"checks": checks,
		})
	}
}
