package contrato

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriarContratoViaHTTP(t *testing.T) {
	db := bancoDeTeste(t)
	emp := empresaDeTeste(t, db, "11.222.333/0001-44")

	r := mux.NewRouter()
	r.HandleFunc("/contratos", NewHandler(db).Criar).Methods("POST")

	postar := func(corpo string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("POST", "/contratos", strings.NewReader(corpo)))
		return rec
	}

	modelo := `{
		"empresaId": %d,
		"empresaContratante": "Prefeitura de Niterói",
		"empresaContratada": "Posto Estrela",
		"titulo": "Fornecimento de combustíveis 2026",
		"cnpjEmpresa": "11.222.333/0001-44",
		"vigenciaInicio": "2026-01-01T00:00:00Z",
		"vigenciaFim": "2026-12-31T23:59:59Z",
		"anexos": %s
	}`

	t.Run("anexo não textual é recusado", func(t *testing.T) {
		rec := postar(fmt.Sprintf(modelo, emp.ID, `[123]`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "anexos[0]")
	})

	t.Run("anexos textuais são persistidos", func(t *testing.T) {
		rec := postar(fmt.Sprintf(modelo, emp.ID, `["edital.pdf","ata.pdf"]`))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp respostaContrato
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{"edital.pdf", "ata.pdf"}, resp.Contrato.Anexos)
	})
}
