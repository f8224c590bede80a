package controllers

import (
	"net/http"

	"github.com/pricepulse-au/pricepulse-backend/api/responses"
	"github.com/pricepulse-au/pricepulse-backend/internal/catalog"
	"github.com/pricepulse-au/pricepulse-backend/pkg/config"
)

// HealthLive reports process liveness.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"status": "ok",
			"env":    cfg.App.Env,
		})
	}
}

// HealthReady reports readiness along with per-catalog record counts. The
// feed catalog is lazy, so a zero count before first use is normal.
func HealthReady(cfg *config.Config, providers ...catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalogs := make(map[string]int, len(providers))
		for _, provider := range providers {
			if provider == nil {
				continue
			}
			catalogs[provider.Name()] = len(provider.GetAll())
		}
		responses.WriteSuccess(w, map[string]any{
			"status":   "ok",
			"env":      cfg.App.Env,
			"catalogs": catalogs,
		})
	}
}
