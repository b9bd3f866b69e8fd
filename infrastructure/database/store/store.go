package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/vfg2006/business-query-api/internal/config"
)

// Dialect identifica o dialeto SQL do store para as queries de agregação
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// Opener abre uma conexão com o store por requisição. O chamador é
// responsável por fechá-la em todos os caminhos de saída.
type Opener interface {
	Open(ctx context.Context) (*sql.DB, error)
	Dialect() Dialect
}

// Store guarda o driver e o DSN; não mantém conexão aberta entre requisições
type Store struct {
	driver string
	dsn    string
}

func New(cfg config.Database) (*Store, error) {
	switch cfg.Driver {
	case string(DialectSQLite), string(DialectPostgres):
	default:
		return nil, fmt.Errorf("driver de banco não suportado: %s", cfg.Driver)
	}

	return &Store{
		driver: cfg.Driver,
		dsn:    cfg.DSN,
	}, nil
}

// Open abre e valida uma nova conexão com o store
func (s *Store) Open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(s.driver, s.dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func (s *Store) Dialect() Dialect {
	return Dialect(s.driver)
}
