package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-query-api/internal/domain"
	"github.com/vfg2006/business-query-api/internal/usecases/reporting"
	reportingmocks "github.com/vfg2006/business-query-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetKPISnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().
		KPISnapshot(gomock.Any()).
		Return(&domain.KPISnapshot{Revenue: 15230.75, Orders: 342, Customers: 87}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/kpi", nil)
	recorder := httptest.NewRecorder()

	GetKPISnapshot(mockReporter).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"revenue": 15230.75, "orders": 342, "customers": 87}`, recorder.Body.String())
}

func TestGetKPITrends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().
		RevenueTrend(gomock.Any()).
		Return(&domain.RevenueTrend{
			CurrentMonth:  200,
			PreviousMonth: 100,
			ChangePercent: 100,
			Trend:         domain.TrendUp,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/kpi/trends", nil)
	recorder := httptest.NewRecorder()

	GetKPITrends(mockReporter).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var trend domain.RevenueTrend
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &trend))
	assert.Equal(t, 100.0, trend.ChangePercent)
	assert.Equal(t, domain.TrendUp, trend.Trend)
}

func TestGetKPITrendsInsufficientData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Menos de dois meses não é falha: o corpo sinaliza a condição com 200
	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().
		RevenueTrend(gomock.Any()).
		Return(nil, reporting.ErrInsufficientData)

	req := httptest.NewRequest(http.MethodGet, "/v1/kpi/trends", nil)
	recorder := httptest.NewRecorder()

	GetKPITrends(mockReporter).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"trend": "Insufficient data"}`, recorder.Body.String())
}

func TestGetProfitEstimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().
		ProfitEstimate(gomock.Any()).
		Return(&domain.ProfitEstimate{Revenue: 1000, EstimatedProfit: 250, MarginRate: 0.25}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/kpi/profit", nil)
	recorder := httptest.NewRecorder()

	GetProfitEstimate(mockReporter).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"revenue": 1000, "estimated_profit": 250, "margin_rate": 0.25}`, recorder.Body.String())
}

func TestGetSalesByMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().
		MonthlyChart(gomock.Any()).
		Return(&domain.ChartSeries{
			Labels: []string{"2024-04", "2024-05"},
			Values: []float64{90.5, 120},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/chart/sales-by-month", nil)
	recorder := httptest.NewRecorder()

	GetSalesByMonth(mockReporter).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"labels": ["2024-04", "2024-05"], "values": [90.5, 120]}`, recorder.Body.String())
}
