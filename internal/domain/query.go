package domain

// Row representa uma linha de resultado como mapa coluna → valor
type Row map[string]any

// QueryRequest é a pergunta em linguagem natural enviada pelo cliente
type QueryRequest struct {
	Question string `json:"question"`
}

// QueryResponse carrega o SQL gerado (para auditoria) e as linhas retornadas.
// Em caso de falha de execução, Result contém uma única linha com a chave "error".
type QueryResponse struct {
	SQL    string `json:"sql"`
	Result []Row  `json:"result"`
}
