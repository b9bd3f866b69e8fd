package querying

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSQL(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		expected   string
	}{
		{
			name:       "extrai o SQL após o cue token, sem espaços ao redor",
			completion: "...SQL:\n SELECT 1;",
			expected:   "SELECT 1;",
		},
		{
			name:       "sem cue token devolve o texto completo inalterado",
			completion: " SELECT name FROM customers; ",
			expected:   " SELECT name FROM customers; ",
		},
		{
			name:       "múltiplas ocorrências do cue usam sempre a última",
			completion: "SQL: SELECT 1; explicação SQL: SELECT 2;",
			expected:   "SELECT 2;",
		},
		{
			name:       "completion com o prompt ecoado",
			completion: "Convert this business question...\nQuestion: total revenue\nSQL:\nSELECT SUM(revenue) FROM sales;",
			expected:   "SELECT SUM(revenue) FROM sales;",
		},
		{
			name:       "completion vazio permanece vazio",
			completion: "",
			expected:   "",
		},
		{
			name:       "lixo após o cue é devolvido como está para falhar na execução",
			completion: "SQL: not really sql",
			expected:   "not really sql",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSQL(tt.completion))
		})
	}
}
