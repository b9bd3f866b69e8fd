package querying

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/vfg2006/business-query-api/infrastructure/repository"
	"github.com/vfg2006/business-query-api/internal/config"
	"github.com/vfg2006/business-query-api/internal/domain"
	"github.com/vfg2006/business-query-api/pkg/log"
	"github.com/vfg2006/business-query-api/pkg/utils"
)

// writeStmtPattern detecta palavras-chave de escrita quando o modo
// somente-leitura está habilitado
var writeStmtPattern = regexp.MustCompile(`(?i)\b(INSERT|UPDATE|DELETE|DROP|ALTER|TRUNCATE|CREATE|GRANT|REVOKE)\b`)

// Service implementa o pipeline de consulta em linguagem natural:
// prompt → inferência → extração → execução. Erros viram dados na
// fronteira de cada etapa; nada propaga como falha para o handler.
type Service struct {
	cfg       *config.Config
	completer Completer
	runner    repository.QueryRunner
	prompts   *PromptBuilder
}

func NewService(
	cfg *config.Config,
	completer Completer,
	runner repository.QueryRunner,
) QueryService {
	return &Service{
		cfg:       cfg,
		completer: completer,
		runner:    runner,
		prompts:   NewPromptBuilder(),
	}
}

// Ask responde uma pergunta de negócio. A resposta sempre carrega o SQL
// gerado (para auditoria) e as linhas, ou uma única linha de erro.
func (s *Service) Ask(ctx context.Context, question string) (*domain.QueryResponse, error) {
	queryID, err := gonanoid.New(8)
	if err != nil {
		queryID = "unknown"
	}

	logger := log.ForContext(ctx).WithField("query_id", queryID)

	prompt := s.prompts.BuildPrompt(question)

	completion, err := s.completer.Complete(ctx, prompt, s.cfg.Llama.MaxNewTokens)
	if err != nil {
		// Falha de inferência é isolada por requisição; o motor não é reiniciado
		logger.WithError(err).Error("consulta: falha na geração de SQL")
		return &domain.QueryResponse{
			SQL:    "",
			Result: errorRow(fmt.Sprintf("SQL Generation Failed: %s", err)),
		}, nil
	}

	sqlText := ExtractSQL(completion)

	logger.WithFields(log.Fields{
		"question": question,
		"sql":      sqlText,
	}).Info("consulta: SQL gerado")

	if !s.cfg.Query.AllowWriteStatements && !isReadOnlyStatement(sqlText) {
		logger.WithField("sql", sqlText).Warn("consulta: statement de escrita bloqueado por configuração")
		return &domain.QueryResponse{
			SQL:    sqlText,
			Result: errorRow("SQL Execution Failed: only SELECT statements are allowed"),
		}, nil
	}

	rows, err := s.runner.Run(ctx, sqlText)
	if err != nil {
		// Qualquer falha de parse ou execução vira uma linha de erro estruturada
		logger.WithError(err).Warn("consulta: falha na execução do SQL")
		return &domain.QueryResponse{
			SQL:    sqlText,
			Result: errorRow(fmt.Sprintf("SQL Execution Failed: %s", err)),
		}, nil
	}

	logger.WithField("rows_returned", len(rows)).Info("consulta: executada com sucesso")
	logger.Debugf("consulta: resultado\n%s", utils.PrettyJson(rows))

	return &domain.QueryResponse{
		SQL:    sqlText,
		Result: rows,
	}, nil
}

// errorRow monta o resultado de linha única usado em todas as falhas do pipeline
func errorRow(message string) []domain.Row {
	return []domain.Row{{"error": message}}
}

// isReadOnlyStatement aceita apenas SELECT (ou WITH ... SELECT) sem
// palavras-chave de escrita
func isReadOnlyStatement(sqlText string) bool {
	trimmed := strings.ToUpper(strings.TrimSpace(sqlText))
	if !strings.HasPrefix(trimmed, "SELECT") && !strings.HasPrefix(trimmed, "WITH") {
		return false
	}

	return !writeStmtPattern.MatchString(sqlText)
}
