package handler

import (
	"net/http"

	"github.com/vfg2006/business-query-api/internal/domain"
	"github.com/vfg2006/business-query-api/internal/usecases/querying"
	"github.com/vfg2006/business-query-api/pkg/apiErrors"
	"github.com/vfg2006/business-query-api/pkg/log"
)

// RunQuery recebe a pergunta em linguagem natural e devolve o SQL gerado
// junto com o resultado da execução
func RunQuery(service querying.QueryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.QueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		logger.WithField("question", req.Question).Info("query: recebida pergunta em linguagem natural")

		// A pergunta não é validada: string vazia ou texto adversarial
		// seguem o mesmo caminho e falham (ou não) na execução
		response, err := service.Ask(r.Context(), req.Question)
		if err != nil {
			logger.WithError(err).Error("query: falha inesperada no pipeline")
			writeErrorBody(w, r, err)
			return
		}

		writeJSON(w, r, response)
	})
}
