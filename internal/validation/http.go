package validation

import (
	"encoding/json"
	"net/http"
)

// EscreverViolacoes responde 400 com a lista de violações de campo,
// antes de qualquer lógica de negócio rodar.
func EscreverViolacoes(w http.ResponseWriter, violacoes []Violacao) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]any{
		"erro":      "VALIDACAO",
		"mensagem":  "payload inválido",
		"violacoes": violacoes,
	})
}
