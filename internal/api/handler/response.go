package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/business-query-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa a resposta com status 200. Todos os endpoints
// devolvem um objeto bem formado mesmo sob falha: erros de negócio viajam
// no corpo como {"error": mensagem}, nunca como fault.
func writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}

// writeErrorBody converte uma falha de negócio no envelope {"error": ...}
func writeErrorBody(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, r, map[string]string{"error": err.Error()})
}
