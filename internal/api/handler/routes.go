package handler

import (
	"net/http"

	"github.com/vfg2006/business-query-api/internal/api/handler/router"
	"github.com/vfg2006/business-query-api/internal/config"
	"github.com/vfg2006/business-query-api/internal/scheduler"
	"github.com/vfg2006/business-query-api/internal/usecases/querying"
	"github.com/vfg2006/business-query-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Dashboard serve o documento estático da página inicial
func Dashboard(cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardHandler(cfg),
		},
	}
}

// Queries expõe o pipeline de consulta em linguagem natural. O caminho
// sem versão é mantido por compatibilidade com o dashboard original.
func Queries(service querying.QueryService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/query",
			Method:  http.MethodPost,
			Handler: RunQuery(service),
		},
		{
			Path:    "/query",
			Method:  http.MethodPost,
			Handler: RunQuery(service),
		},
	}
}

// KPIs expõe as métricas fixas, a tendência mensal, a série do gráfico e a
// estimativa de lucro. Caminhos sem versão mantidos por compatibilidade.
func KPIs(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/kpi",
			Method:  http.MethodGet,
			Handler: GetKPISnapshot(service),
		},
		{
			Path:    "/v1/kpi/trends",
			Method:  http.MethodGet,
			Handler: GetKPITrends(service),
		},
		{
			Path:    "/v1/kpi/profit",
			Method:  http.MethodGet,
			Handler: GetProfitEstimate(service),
		},
		{
			Path:    "/v1/chart/sales-by-month",
			Method:  http.MethodGet,
			Handler: GetSalesByMonth(service),
		},
		{
			Path:    "/kpi",
			Method:  http.MethodGet,
			Handler: GetKPISnapshot(service),
		},
		{
			Path:    "/kpi/trends",
			Method:  http.MethodGet,
			Handler: GetKPITrends(service),
		},
		{
			Path:    "/chart/sales-by-month",
			Method:  http.MethodGet,
			Handler: GetSalesByMonth(service),
		},
	}
}

// ModelStatus expõe o resultado da última sondagem do motor de inferência
func ModelStatus(service *scheduler.ModelHealthService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/model/status",
			Method:  http.MethodGet,
			Handler: GetModelStatus(service),
		},
	}
}
