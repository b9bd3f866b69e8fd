package querying

import "strings"

// ExtractSQL isola o statement SQL do texto bruto devolvido pelo modelo:
// tudo após a última ocorrência do cue token, sem espaços ao redor. O
// prompt termina no próprio cue, então a última ocorrência é a resposta.
//
// Quando o cue não aparece, devolve o texto completo inalterado — a
// execução a jusante é quem vai reportar o lixo como erro de sintaxe.
func ExtractSQL(completion string) string {
	idx := strings.LastIndex(completion, CueToken)
	if idx < 0 {
		return completion
	}

	return strings.TrimSpace(completion[idx+len(CueToken):])
}
