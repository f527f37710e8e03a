package motorista

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GestaoGas/api-abastecimento/internal/orgao"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type cenario struct {
	router *mux.Router
	org    orgao.Orgao
}

func montarCenario(t *testing.T) cenario {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// banco em memória existe por conexão, então o pool fica em uma só
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&orgao.Orgao{}, &Motorista{}))

	org := orgao.Orgao{PrefeituraID: 1, Nome: "Secretaria de Obras", Sigla: "SEOB", Ativo: true}
	require.NoError(t, db.Create(&org).Error)

	h := NewHandler(db)
	r := mux.NewRouter()
	r.HandleFunc("/motoristas", h.Criar).Methods("POST")
	r.HandleFunc("/motoristas", h.Listar).Methods("GET")
	r.HandleFunc("/motoristas/{id}", h.BuscarPorID).Methods("GET")
	r.HandleFunc("/motoristas/{id}", h.Atualizar).Methods("PATCH")
	r.HandleFunc("/motoristas/{id}", h.Remover).Methods("DELETE")

	return cenario{router: r, org: org}
}

func (c cenario) requisitar(t *testing.T, metodo, caminho, corpo string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if corpo == "" {
		req = httptest.NewRequest(metodo, caminho, nil)
	} else {
		req = httptest.NewRequest(metodo, caminho, strings.NewReader(corpo))
	}
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	return rec
}

func TestCriarMotorista(t *testing.T) {
	c := montarCenario(t)

	t.Run("orgao inexistente", func(t *testing.T) {
		rec := c.requisitar(t, "POST", "/motoristas",
			`{"orgaoId":999,"nome":"João Pereira","cpf":"123.456.789-00","cnh":"12345678900"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("criado com envelope", func(t *testing.T) {
		rec := c.requisitar(t, "POST", "/motoristas",
			fmt.Sprintf(`{"orgaoId":%d,"nome":"João Pereira","cpf":"123.456.789-00","cnh":"12345678900"}`, c.org.ID))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Mensagem  string    `json:"mensagem"`
			Motorista Motorista `json:"motorista"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "motorista criado com sucesso", resp.Mensagem)
		assert.Equal(t, "123.456.789-00", resp.Motorista.CPF)
		assert.True(t, resp.Motorista.Ativo)
	})

	t.Run("cpf duplicado", func(t *testing.T) {
		rec := c.requisitar(t, "POST", "/motoristas",
			fmt.Sprintf(`{"orgaoId":%d,"nome":"Outro Nome","cpf":"123.456.789-00","cnh":"99999999999"}`, c.org.ID))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestBuscarMotoristaPorID(t *testing.T) {
	c := montarCenario(t)

	t.Run("inexistente", func(t *testing.T) {
		rec := c.requisitar(t, "GET", "/motoristas/404", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("encontrado com envelope", func(t *testing.T) {
		rec := c.requisitar(t, "POST", "/motoristas",
			fmt.Sprintf(`{"orgaoId":%d,"nome":"Maria Souza","cpf":"987.654.321-00","cnh":"98765432100"}`, c.org.ID))
		require.Equal(t, http.StatusCreated, rec.Code)

		var criado struct {
			Motorista Motorista `json:"motorista"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criado))

		rec = c.requisitar(t, "GET", fmt.Sprintf("/motoristas/%d", criado.Motorista.ID), "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Mensagem  string    `json:"mensagem"`
			Motorista Motorista `json:"motorista"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "motorista encontrado", resp.Mensagem)
		assert.Equal(t, "Maria Souza", resp.Motorista.Nome)
	})
}

func TestAtualizarMotoristaParcial(t *testing.T) {
	c := montarCenario(t)

	rec := c.requisitar(t, "POST", "/motoristas",
		fmt.Sprintf(`{"orgaoId":%d,"nome":"Carlos Lima","cpf":"111.222.333-44","cnh":"11122233344"}`, c.org.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	var criado struct {
		Motorista Motorista `json:"motorista"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criado))

	t.Run("inexistente", func(t *testing.T) {
		rec := c.requisitar(t, "PATCH", "/motoristas/404", `{"cnh":"00000000000"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("só a cnh muda", func(t *testing.T) {
		rec := c.requisitar(t, "PATCH", fmt.Sprintf("/motoristas/%d", criado.Motorista.ID), `{"cnh":"55566677788"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Mensagem  string    `json:"mensagem"`
			Motorista Motorista `json:"motorista"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "motorista atualizado com sucesso", resp.Mensagem)
		assert.Equal(t, "55566677788", resp.Motorista.CNH)
		assert.Equal(t, "Carlos Lima", resp.Motorista.Nome)
		assert.Equal(t, "111.222.333-44", resp.Motorista.CPF)
	})

	t.Run("orgao novo inexistente", func(t *testing.T) {
		rec := c.requisitar(t, "PATCH", fmt.Sprintf("/motoristas/%d", criado.Motorista.ID), `{"orgaoId":999}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRemoverMotorista(t *testing.T) {
	c := montarCenario(t)

	rec := c.requisitar(t, "DELETE", "/motoristas/404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.requisitar(t, "POST", "/motoristas",
		fmt.Sprintf(`{"orgaoId":%d,"nome":"Ana Dias","cpf":"222.333.444-55","cnh":"22233344455"}`, c.org.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	var criado struct {
		Motorista Motorista `json:"motorista"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criado))

	rec = c.requisitar(t, "DELETE", fmt.Sprintf("/motoristas/%d", criado.Motorista.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = c.requisitar(t, "GET", fmt.Sprintf("/motoristas/%d", criado.Motorista.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
