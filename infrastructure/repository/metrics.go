package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-query-api/infrastructure/database/store"
	"github.com/vfg2006/business-query-api/internal/domain"
)

const (
	salesTable  = "sales"
	ordersTable = "orders"
)

// MonthOrder define a ordenação da série mensal de receita
type MonthOrder string

const (
	MonthAsc  MonthOrder = "ASC"
	MonthDesc MonthOrder = "DESC"
)

// MetricsRepository executa as agregações fixas de KPI. Cada método abre e
// fecha a própria conexão, mantendo as agregações isoladas entre si.
type MetricsRepository interface {
	TotalRevenue(ctx context.Context) (float64, error)
	TotalOrders(ctx context.Context) (int, error)
	ActiveCustomers(ctx context.Context) (int, error)
	MonthlyRevenue(ctx context.Context, order MonthOrder, limit uint64) ([]domain.MonthlyRevenue, error)
}

type metricsRepository struct {
	store store.Opener
}

func NewMetricsRepository(st store.Opener) MetricsRepository {
	return &metricsRepository{
		store: st,
	}
}

// TotalRevenue soma a receita de todas as vendas; ausência de linhas resulta em 0
func (r *metricsRepository) TotalRevenue(ctx context.Context) (float64, error) {
	query, _, err := squirrel.
		Select("COALESCE(SUM(revenue), 0)").
		From(salesTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var revenue float64
	if err := r.queryScalar(ctx, query, &revenue); err != nil {
		return 0, err
	}

	return revenue, nil
}

// TotalOrders conta todas as linhas de pedidos
func (r *metricsRepository) TotalOrders(ctx context.Context) (int, error) {
	query, _, err := squirrel.
		Select("COUNT(*)").
		From(ordersTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var orders int
	if err := r.queryScalar(ctx, query, &orders); err != nil {
		return 0, err
	}

	return orders, nil
}

// ActiveCustomers conta as referências distintas de clientes nos pedidos
func (r *metricsRepository) ActiveCustomers(ctx context.Context) (int, error) {
	query, _, err := squirrel.
		Select("COUNT(DISTINCT customer_id)").
		From(ordersTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var customers int
	if err := r.queryScalar(ctx, query, &customers); err != nil {
		return 0, err
	}

	return customers, nil
}

// MonthlyRevenue soma a receita por mês calendário (YYYY-MM). Com limit 0
// a série completa é retornada.
func (r *metricsRepository) MonthlyRevenue(ctx context.Context, order MonthOrder, limit uint64) ([]domain.MonthlyRevenue, error) {
	builder := squirrel.
		Select(
			fmt.Sprintf("%s AS month", r.monthExpr()),
			"SUM(revenue) AS revenue",
		).
		From(salesTable).
		GroupBy("month").
		OrderBy(fmt.Sprintf("month %s", order))

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, _, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir conexão com o store: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	months := make([]domain.MonthlyRevenue, 0)
	for rows.Next() {
		var month domain.MonthlyRevenue
		if err := rows.Scan(&month.Month, &month.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita mensal: %w", err)
		}
		months = append(months, month)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return months, nil
}

// monthExpr devolve a expressão de truncamento para o dialeto do store
func (r *metricsRepository) monthExpr() string {
	if r.store.Dialect() == store.DialectPostgres {
		return "to_char(sales_date, 'YYYY-MM')"
	}
	return "strftime('%Y-%m', sales_date)"
}

func (r *metricsRepository) queryScalar(ctx context.Context, query string, dest any) error {
	db, err := r.store.Open(ctx)
	if err != nil {
		return fmt.Errorf("erro ao abrir conexão com o store: %w", err)
	}
	defer db.Close()

	if err := db.QueryRowContext(ctx, query).Scan(dest); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
