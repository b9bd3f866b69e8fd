package llama

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/business-query-api/infrastructure/integrator/llama/llamaclient"
	"github.com/vfg2006/business-query-api/internal/config"
)

// LlamaIntegrator encapsula o servidor de inferência como um handle único
// de processo: criado uma vez no main e passado explicitamente aos casos de
// uso. As chamadas de completion são pesadas, então o integrador limita a
// concorrência com um pool de vagas e aplica timeout por chamada.
type LlamaIntegrator struct {
	cfg    *config.Config
	client llamaclient.Client
	slots  chan struct{}
}

func New(cfg *config.Config, client llamaclient.Client) *LlamaIntegrator {
	maxConcurrent := cfg.Llama.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &LlamaIntegrator{
		cfg:    cfg,
		client: client,
		slots:  make(chan struct{}, maxConcurrent),
	}
}

// Complete envia o prompt ao modelo e devolve o texto bruto gerado.
// Bloqueia aguardando uma vaga do pool; sem retry: uma falha de inferência
// afeta somente a requisição corrente.
func (s *LlamaIntegrator) Complete(ctx context.Context, prompt string, maxNewTokens int) (string, error) {
	select {
	case s.slots <- struct{}{}:
		defer func() { <-s.slots }()
	case <-ctx.Done():
		return "", errors.Wrap(ctx.Err(), "aguardando vaga de inferência")
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.InferenceTimeout())
	defer cancel()

	completion, err := s.client.Completion(ctx, llamaclient.CompletionParams{
		Prompt:      prompt,
		NPredict:    maxNewTokens,
		Temperature: s.cfg.Llama.Temperature,
		Stream:      false,
	})
	if err != nil {
		return "", err
	}

	return completion.Content, nil
}

// Ping valida a prontidão do servidor de inferência. É chamado no startup
// (falha é fatal para o processo) e pela sondagem periódica.
func (s *LlamaIntegrator) Ping(ctx context.Context) error {
	return s.client.Health(ctx)
}
