package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind classifica os erros de domínio em um conjunto fechado.
type Kind string

const (
	KindNaoEncontrado Kind = "NAO_ENCONTRADO"
	KindConflito      Kind = "CONFLITO"
	KindProibido      Kind = "PROIBIDO"
	KindInvalido      Kind = "REQUISICAO_INVALIDA"
)

// Error carrega o erro de domínio com payload estruturado:
// recurso e identificador ofensores, categoria e timestamp.
type Error struct {
	Kind      Kind      `json:"erro"`
	Mensagem  string    `json:"mensagem"`
	Recurso   string    `json:"recurso,omitempty"`
	ID        any       `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *Error) Error() string {
	if e.Recurso != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Mensagem, e.Recurso)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Mensagem)
}

func novo(kind Kind, recurso string, id any, mensagem string) *Error {
	return &Error{
		Kind:      kind,
		Mensagem:  mensagem,
		Recurso:   recurso,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}
}

// NaoEncontrado indica que o recurso (ou um pai obrigatório) não existe.
func NaoEncontrado(recurso string, id any) *Error {
	return novo(KindNaoEncontrado, recurso, id, fmt.Sprintf("%s não encontrado", recurso))
}

// Conflito indica violação de unicidade.
func Conflito(recurso string, id any, mensagem string) *Error {
	return novo(KindConflito, recurso, id, mensagem)
}

// Proibido indica acesso negado (perfil, janela de vigência, inativo).
func Proibido(mensagem string) *Error {
	return novo(KindProibido, "", nil, mensagem)
}

// Invalido indica valor inválido ou exclusão bloqueada por relações ativas.
func Invalido(recurso string, id any, mensagem string) *Error {
	return novo(KindInvalido, recurso, id, mensagem)
}

// Escrever mapeia o kind para o status HTTP fixo e serializa o payload.
// Erros fora da taxonomia viram 500 sem vazar detalhe interno.
func Escrever(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var de *Error
	if !errors.As(err, &de) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"erro": "INTERNO", "mensagem": "erro interno"})
		return
	}

	var status int
	switch de.Kind {
	case KindNaoEncontrado:
		status = http.StatusNotFound
	case KindConflito:
		status = http.StatusConflict
	case KindProibido:
		status = http.StatusForbidden
	case KindInvalido:
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(de)
}
