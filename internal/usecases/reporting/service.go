package reporting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/business-query-api/infrastructure/repository"
	"github.com/vfg2006/business-query-api/internal/config"
	"github.com/vfg2006/business-query-api/internal/domain"
	"github.com/vfg2006/business-query-api/pkg/utils"
)

// ErrInsufficientData indica que o store não tem dois meses distintos de
// vendas para comparar
var ErrInsufficientData = errors.New("dados insuficientes para calcular a tendência")

type Service struct {
	cfg     *config.Config
	metrics repository.MetricsRepository
}

func NewService(cfg *config.Config, metrics repository.MetricsRepository) Reporter {
	return &Service{
		cfg:     cfg,
		metrics: metrics,
	}
}

// KPISnapshot calcula as três agregações fixas. Um store vazio produz
// zeros, não erro.
func (s *Service) KPISnapshot(ctx context.Context) (*domain.KPISnapshot, error) {
	revenue, err := s.metrics.TotalRevenue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular receita total")
	}

	orders, err := s.metrics.TotalOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar pedidos")
	}

	customers, err := s.metrics.ActiveCustomers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar clientes ativos")
	}

	return &domain.KPISnapshot{
		Revenue:   revenue,
		Orders:    orders,
		Customers: customers,
	}, nil
}

// RevenueTrend compara a receita dos dois meses mais recentes.
// Variação zero é rotulada "down": escolha de fronteira preservada do
// comportamento original.
func (s *Service) RevenueTrend(ctx context.Context) (*domain.RevenueTrend, error) {
	months, err := s.metrics.MonthlyRevenue(ctx, repository.MonthDesc, 2)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar receita mensal")
	}

	if len(months) < 2 {
		return nil, ErrInsufficientData
	}

	current, previous := months[0].Revenue, months[1].Revenue

	var change float64
	if previous != 0 {
		change = (current - previous) / previous * 100
	}
	change = utils.RoundWithTwoDecimalPlace(change)

	trend := domain.TrendDown
	if change > 0 {
		trend = domain.TrendUp
	}

	return &domain.RevenueTrend{
		CurrentMonth:  current,
		PreviousMonth: previous,
		ChangePercent: change,
		Trend:         trend,
	}, nil
}

// MonthlyChart devolve a série mensal completa em ordem ascendente, como
// sequências paralelas de rótulos e valores
func (s *Service) MonthlyChart(ctx context.Context) (*domain.ChartSeries, error) {
	months, err := s.metrics.MonthlyRevenue(ctx, repository.MonthAsc, 0)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar receita mensal")
	}

	series := &domain.ChartSeries{
		Labels: make([]string, 0, len(months)),
		Values: make([]float64, 0, len(months)),
	}

	for _, month := range months {
		series.Labels = append(series.Labels, month.Month)
		series.Values = append(series.Values, month.Revenue)
	}

	return series, nil
}

// ProfitEstimate aplica a taxa de margem configurada sobre a receita
// total. A taxa é um stub de negócio declarado, não derivado de custos.
func (s *Service) ProfitEstimate(ctx context.Context) (*domain.ProfitEstimate, error) {
	revenue, err := s.metrics.TotalRevenue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular receita total")
	}

	rate := s.cfg.Query.ProfitMarginRate

	return &domain.ProfitEstimate{
		Revenue:         revenue,
		EstimatedProfit: utils.RoundWithTwoDecimalPlace(revenue * rate),
		MarginRate:      rate,
	}, nil
}
