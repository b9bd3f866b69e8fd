package handler

import (
	"net/http"

	"github.com/vfg2006/business-query-api/internal/config"
)

// DashboardHandler serve a página estática do dashboard. A página não faz
// parte do núcleo: é só um consumidor dos endpoints de KPI e consulta.
func DashboardHandler(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, cfg.Server.DashboardFile)
	})
}
