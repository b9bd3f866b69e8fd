package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-query-api/infrastructure/database/store"
	"github.com/vfg2006/business-query-api/internal/domain"
)

func TestRunReturnsRowsAsMaps(t *testing.T) {
	opener, mock := newMockStore(t, store.DialectSQLite)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT city, SUM(revenue) AS revenue FROM sales GROUP BY city")).
		WillReturnRows(sqlmock.NewRows([]string{"city", "revenue"}).
			AddRow("Berlin", 120.5).
			AddRow("Lisboa", 80.0))
	mock.ExpectClose()

	runner := NewQueryRunner(opener)

	rows, err := runner.Run(context.Background(), "SELECT city, SUM(revenue) AS revenue FROM sales GROUP BY city")
	require.NoError(t, err)

	assert.Equal(t, []domain.Row{
		{"city": "Berlin", "revenue": 120.5},
		{"city": "Lisboa", "revenue": 80.0},
	}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunNormalizesByteSlicesToStrings(t *testing.T) {
	opener, mock := newMockStore(t, store.DialectSQLite)

	// Drivers devolvem colunas textuais como []byte; o runner converte
	// para string antes da serialização JSON
	mock.ExpectQuery(regexp.QuoteMeta("SELECT name FROM customers")).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow([]byte("Maria")))
	mock.ExpectClose()

	runner := NewQueryRunner(opener)

	rows, err := runner.Run(context.Background(), "SELECT name FROM customers")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Maria", rows[0]["name"])
}

func TestRunEmptyResultIsEmptySliceNotNil(t *testing.T) {
	opener, mock := newMockStore(t, store.DialectSQLite)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM orders WHERE total > 99999")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectClose()

	runner := NewQueryRunner(opener)

	rows, err := runner.Run(context.Background(), "SELECT id FROM orders WHERE total > 99999")
	require.NoError(t, err)

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRunPropagatesQueryError(t *testing.T) {
	opener, mock := newMockStore(t, store.DialectSQLite)

	mock.ExpectQuery("SELEKT nonsense").
		WillReturnError(errors.New(`near "SELEKT": syntax error`))
	mock.ExpectClose()

	runner := NewQueryRunner(opener)

	rows, err := runner.Run(context.Background(), "SELEKT nonsense")
	assert.Nil(t, rows)
	assert.ErrorContains(t, err, "syntax error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunOpenFailure(t *testing.T) {
	opener := &stubOpener{err: errors.New("banco indisponível")}

	runner := NewQueryRunner(opener)

	rows, err := runner.Run(context.Background(), "SELECT 1")
	assert.Nil(t, rows)
	assert.ErrorContains(t, err, "banco indisponível")
}
