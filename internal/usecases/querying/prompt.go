package querying

import "fmt"

// CueToken é o marcador literal no prompt a partir do qual se espera a
// resposta do modelo (o SQL gerado)
const CueToken = "SQL:"

// schemaDescriptor descreve as quatro tabelas do store em ordem estável.
// É embutido palavra por palavra em todos os prompts.
const schemaDescriptor = `customers(id, name, email, city, signup_date)
products(id, name, category, price, stock)
orders(id, customer_id, product_id, quantity, order_date, total)
sales(id, order_id, revenue, profit_margin, sales_date)`

// PromptBuilder monta o prompt de completion para geração de SQL
type PromptBuilder struct {
	schema string
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		schema: schemaDescriptor,
	}
}

// BuildPrompt combina o schema fixo com a pergunta do usuário. É
// determinístico: a mesma pergunta produz sempre o mesmo prompt. O
// conteúdo da pergunta não é validado nem sanitizado.
func (pb *PromptBuilder) BuildPrompt(question string) string {
	return fmt.Sprintf(`Convert this business question into a valid SQL query using the following schema:
%s

Question: %s
%s`, pb.schema, question, CueToken)
}
