package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscreverMapeiaKindParaStatus(t *testing.T) {
	casos := []struct {
		nome   string
		err    error
		status int
	}{
		{"não encontrado", NaoEncontrado("prefeitura", 9), http.StatusNotFound},
		{"conflito", Conflito("empresa", "123", "CNPJ duplicado"), http.StatusConflict},
		{"proibido", Proibido("acesso restrito"), http.StatusForbidden},
		{"inválido", Invalido("contrato", 1, "vigência inválida"), http.StatusBadRequest},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Escrever(rec, c.err)
			assert.Equal(t, c.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var corpo map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &corpo))
			assert.NotEmpty(t, corpo["erro"])
			assert.NotEmpty(t, corpo["mensagem"])
		})
	}
}

func TestEscreverErroDesconhecido(t *testing.T) {
	rec := httptest.NewRecorder()
	Escrever(rec, errors.New("falha de rede"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var corpo map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &corpo))
	assert.Equal(t, "INTERNO", corpo["erro"])
	assert.NotContains(t, corpo["mensagem"], "rede")
}

func TestEscreverErroEmbrulhado(t *testing.T) {
	rec := httptest.NewRecorder()
	Escrever(rec, fmt.Errorf("ao criar: %w", NaoEncontrado("orgao", 3)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
