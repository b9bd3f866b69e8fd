package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-query-api/internal/domain"
	queryingmocks "github.com/vfg2006/business-query-api/internal/usecases/querying/mocks"
	"go.uber.org/mock/gomock"
)

func TestRunQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := queryingmocks.NewMockQueryService(ctrl)
	mockService.EXPECT().
		Ask(gomock.Any(), "total revenue by city").
		Return(&domain.QueryResponse{
			SQL:    "SELECT city, SUM(revenue) FROM sales GROUP BY city",
			Result: []domain.Row{{"city": "Berlin", "revenue": 120.5}},
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/query", strings.NewReader(`{"question": "total revenue by city"}`))
	recorder := httptest.NewRecorder()

	RunQuery(mockService).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var response domain.QueryResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "SELECT city, SUM(revenue) FROM sales GROUP BY city", response.SQL)
	require.Len(t, response.Result, 1)
	assert.Equal(t, "Berlin", response.Result[0]["city"])
}

func TestRunQueryErrorRowIsStillHTTP200(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Falhas do pipeline viajam como dado no corpo, nunca como status de erro
	mockService := queryingmocks.NewMockQueryService(ctrl)
	mockService.EXPECT().
		Ask(gomock.Any(), "nonsense").
		Return(&domain.QueryResponse{
			SQL:    "SELEKT nonsense",
			Result: []domain.Row{{"error": `SQL Execution Failed: near "SELEKT": syntax error`}},
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/query", strings.NewReader(`{"question": "nonsense"}`))
	recorder := httptest.NewRecorder()

	RunQuery(mockService).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "SQL Execution Failed")
}

func TestRunQueryInvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := queryingmocks.NewMockQueryService(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/v1/query", strings.NewReader(`{não é json`))
	recorder := httptest.NewRecorder()

	RunQuery(mockService).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_001")
}

func TestRunQueryUnexpectedFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := queryingmocks.NewMockQueryService(ctrl)
	mockService.EXPECT().
		Ask(gomock.Any(), "qualquer coisa").
		Return(nil, errors.New("falha inesperada"))

	req := httptest.NewRequest(http.MethodPost, "/v1/query", strings.NewReader(`{"question": "qualquer coisa"}`))
	recorder := httptest.NewRecorder()

	RunQuery(mockService).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"error": "falha inesperada"}`, recorder.Body.String())
}
