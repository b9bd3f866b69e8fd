package reporting

import (
	"context"

	"github.com/vfg2006/business-query-api/internal/domain"
)

// Reporter expõe as métricas fixas de negócio, sempre recalculadas a
// partir do estado corrente do store (sem cache)
type Reporter interface {
	KPISnapshot(ctx context.Context) (*domain.KPISnapshot, error)
	RevenueTrend(ctx context.Context) (*domain.RevenueTrend, error)
	MonthlyChart(ctx context.Context) (*domain.ChartSeries, error)
	ProfitEstimate(ctx context.Context) (*domain.ProfitEstimate, error)
}
