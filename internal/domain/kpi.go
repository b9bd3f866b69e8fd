package domain

import "time"

// Direções possíveis da tendência mês a mês
const (
	TrendUp   = "up"
	TrendDown = "down"
)

// KPISnapshot agrega as métricas fixas do negócio, recalculadas a cada requisição
type KPISnapshot struct {
	Revenue   float64 `json:"revenue"`
	Orders    int     `json:"orders"`
	Customers int     `json:"customers"`
}

// MonthlyRevenue é a receita agregada de um mês calendário (formato YYYY-MM)
type MonthlyRevenue struct {
	Month   string
	Revenue float64
}

// RevenueTrend compara a receita dos dois meses mais recentes
type RevenueTrend struct {
	CurrentMonth  float64 `json:"current_month"`
	PreviousMonth float64 `json:"previous_month"`
	ChangePercent float64 `json:"change_percent"`
	Trend         string  `json:"trend"`
}

// ChartSeries é a série mensal completa em sequências paralelas de mesmo tamanho
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// ProfitEstimate é a estimativa de lucro derivada da taxa de margem configurada.
// A taxa é um parâmetro de negócio: dados reais de custo nunca foram integrados.
type ProfitEstimate struct {
	Revenue         float64 `json:"revenue"`
	EstimatedProfit float64 `json:"estimated_profit"`
	MarginRate      float64 `json:"margin_rate"`
}

// ModelStatus reflete o resultado da última sondagem do motor de inferência
type ModelStatus struct {
	Ready         bool      `json:"ready"`
	LastCheckedAt time.Time `json:"last_checked_at"`
	LastError     string    `json:"last_error,omitempty"`
}
