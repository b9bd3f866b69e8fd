package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/business-query-api/internal/scheduler"
	"github.com/vfg2006/business-query-api/internal/usecases/reporting"
	"github.com/vfg2006/business-query-api/pkg/log"
)

// GetKPISnapshot devolve receita total, contagem de pedidos e clientes
// ativos, recalculados a cada chamada
func GetKPISnapshot(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot, err := service.KPISnapshot(r.Context())
		if err != nil {
			logger.WithError(err).Error("kpi: erro ao calcular snapshot")
			writeErrorBody(w, r, err)
			return
		}

		writeJSON(w, r, snapshot)
	})
}

// GetKPITrends devolve a variação de receita entre os dois meses mais recentes
func GetKPITrends(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		trend, err := service.RevenueTrend(r.Context())
		if err != nil {
			if errors.Is(err, reporting.ErrInsufficientData) {
				writeJSON(w, r, map[string]string{"trend": "Insufficient data"})
				return
			}

			logger.WithError(err).Error("kpi: erro ao calcular tendência")
			writeErrorBody(w, r, err)
			return
		}

		writeJSON(w, r, trend)
	})
}

// GetProfitEstimate devolve a estimativa de lucro baseada na taxa de margem configurada
func GetProfitEstimate(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		estimate, err := service.ProfitEstimate(r.Context())
		if err != nil {
			logger.WithError(err).Error("kpi: erro ao estimar lucro")
			writeErrorBody(w, r, err)
			return
		}

		writeJSON(w, r, estimate)
	})
}

// GetSalesByMonth devolve a série mensal completa para o gráfico do dashboard
func GetSalesByMonth(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		series, err := service.MonthlyChart(r.Context())
		if err != nil {
			logger.WithError(err).Error("kpi: erro ao montar série mensal")
			writeErrorBody(w, r, err)
			return
		}

		writeJSON(w, r, series)
	})
}

// GetModelStatus devolve o resultado da última sondagem do motor de inferência
func GetModelStatus(service *scheduler.ModelHealthService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.Status())
	})
}
