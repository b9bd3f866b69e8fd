package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/business-query-api/infrastructure/database/store"
	"github.com/vfg2006/business-query-api/internal/domain"
)

// QueryRunner executa um statement SQL arbitrário contra o store.
// Nenhuma restrição de tipo de statement é aplicada aqui: a política de
// execução é decidida pelo caso de uso que chama.
type QueryRunner interface {
	Run(ctx context.Context, sqlText string) ([]domain.Row, error)
}

type queryRunner struct {
	store store.Opener
}

func NewQueryRunner(st store.Opener) QueryRunner {
	return &queryRunner{
		store: st,
	}
}

// Run abre uma conexão, executa o statement e devolve as linhas na ordem
// retornada pelo banco. A conexão é liberada em todos os caminhos de saída.
func (r *queryRunner) Run(ctx context.Context, sqlText string) ([]domain.Row, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir conexão com o store")
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao obter colunas do resultado")
	}

	results := make([]domain.Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear linha do resultado")
		}

		row := make(domain.Row, len(columns))
		for i, column := range columns {
			row[column] = normalizeValue(values[i])
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// normalizeValue converte []byte em string para que a serialização JSON
// não degrade valores textuais em base64
func normalizeValue(value any) any {
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return value
}
