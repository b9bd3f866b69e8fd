package llamaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/business-query-api/internal/config"
)

// CompletionParams é o payload aceito pelo endpoint /completion do
// servidor llama.cpp (e compatíveis)
type CompletionParams struct {
	Prompt      string   `json:"prompt"`
	NPredict    int      `json:"n_predict,omitempty"`
	Temperature float64  `json:"temperature,omitempty"`
	Stream      bool     `json:"stream"`
	Stop        []string `json:"stop,omitempty"`
}

// CompletionResponse carrega o texto bruto produzido pelo modelo
type CompletionResponse struct {
	Content string `json:"content"`
}

type Client interface {
	Completion(ctx context.Context, params CompletionParams) (CompletionResponse, error)
	Health(ctx context.Context) error
}

type LlamaClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) (Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.Llama.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("URL base do servidor de inferência é obrigatória")
	}

	return &LlamaClient{
		httpClient: &http.Client{
			// O timeout efetivo por chamada vem do contexto; este é apenas
			// um teto de segurança para conexões penduradas
			Timeout: cfg.InferenceTimeout() + 5*time.Second,
		},
		baseURL: baseURL,
	}, nil
}

// Completion envia o prompt e devolve o texto completo gerado pelo modelo
func (c *LlamaClient) Completion(ctx context.Context, params CompletionParams) (CompletionResponse, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("erro ao serializar payload de completion: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/completion", bytes.NewReader(body))
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("erro ao montar requisição de completion: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("erro ao chamar o servidor de inferência: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("erro ao ler resposta do servidor de inferência: %w", err)
	}

	if resp.StatusCode >= 400 {
		return CompletionResponse{}, fmt.Errorf("servidor de inferência retornou status=%d body=%s", resp.StatusCode, string(rawBody))
	}

	var completion CompletionResponse
	if err := json.Unmarshal(rawBody, &completion); err != nil {
		return CompletionResponse{}, fmt.Errorf("erro ao decodificar resposta de completion: %w", err)
	}

	return completion, nil
}

// Health verifica se o servidor de inferência está pronto para atender
func (c *LlamaClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("erro ao montar requisição de health: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao chamar o servidor de inferência: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("servidor de inferência não está pronto: status=%d", resp.StatusCode)
	}

	return nil
}
