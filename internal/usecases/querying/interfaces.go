package querying

import (
	"context"

	"github.com/vfg2006/business-query-api/internal/domain"
)

// Completer define a operação única exposta pelo motor de inferência
type Completer interface {
	// Complete produz o texto bruto do modelo para o prompt dado,
	// limitado a maxNewTokens tokens novos
	Complete(ctx context.Context, prompt string, maxNewTokens int) (string, error)
}

// QueryService é o pipeline pergunta → SQL → resultado
type QueryService interface {
	Ask(ctx context.Context, question string) (*domain.QueryResponse, error)
}
